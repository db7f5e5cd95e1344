package config

import (
	"os"
	"path/filepath"
	"testing"
	"worklog/pkg/temporal"
	"worklog/pkg/terrors"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTemp(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	require.Nil(t, InitViper(dir))
	return dir
}

func TestInitViper(t *testing.T) {
	assert := assert.New(t)
	dir := initTemp(t)

	assert.Equal(dir, ConfigPath())
	_, err := os.Stat(filepath.Join(dir, "worklog.yaml"))
	assert.Nil(err)
	assert.Empty(Validate())
	assert.Equal(DefaultMaxSkip, MaxSkip())
	assert.False(ShortDates())

	opts := LoggingOptions(true)
	assert.Equal(dir, opts.Dir)
	assert.Equal(-1, opts.FileLevel)
	assert.True(opts.Debug)
}

func TestSelectConfigFile(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	t.Setenv(EnvCFG, dir)
	if assert.Nil(SelectConfigFile("")) {
		assert.Equal(dir, ConfigPath())
	}
	other := filepath.Join(dir, "other")
	if assert.Nil(SelectConfigFile(other)) {
		assert.Equal(other, ConfigPath())
	}
}

func TestPrefs(t *testing.T) {
	assert := assert.New(t)
	dir := initTemp(t)

	prefs, err := Prefs()
	if assert.Nil(err) {
		assert.Equal(temporal.Prefs{}, prefs)
	}

	want := temporal.Prefs{Date: temporal.LittleEndian, Time: temporal.Hour24}
	require.Nil(t, SavePrefs(want))

	// a fresh load reads them back from the file
	viper.Reset()
	require.Nil(t, InitViper(dir))
	prefs, err = Prefs()
	if assert.Nil(err) {
		assert.Equal(want, prefs)
	}
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)
	initTemp(t)

	viper.Set("logging.console-level", 9)
	viper.Set("format.date", "sideways")
	viper.Set("format.time", "12")
	viper.Set("format.short-dates", "yes")
	viper.Set("recurrence.max-skip", 0)
	errs := Validate()
	assert.Len(errs, 5)
	for _, err := range errs {
		assert.ErrorIs(err, terrors.ErrConf)
	}

	_, err := Prefs()
	assert.ErrorIs(err, terrors.ErrConf)
}
