package logging

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// no-op until Initialize so library code may log unconditionally
	Logger     *zap.SugaredLogger = zap.NewNop().Sugar()
	fileHandle *os.File
)

type Options struct {
	Dir          string
	ConsoleLevel int
	FileLevel    int
	Debug        bool
}

func Initialize(opts Options) error {
	if fileHandle != nil {
		_ = Close()
	}
	consoleLevel := zapcore.Level(opts.ConsoleLevel)
	if opts.Debug {
		consoleLevel = zapcore.DebugLevel
	}
	consoleEnc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	consoleCore := zapcore.NewCore(consoleEnc, zapcore.Lock(os.Stderr), consoleLevel)

	fileEncCfg := zap.NewProductionEncoderConfig()
	fileEncCfg.TimeKey = "ts"
	fileEncCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileEncCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	fileEnc := zapcore.NewConsoleEncoder(fileEncCfg)

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(opts.Dir, "log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	fileHandle = f
	fileCore := zapcore.NewCore(fileEnc, zapcore.AddSync(io.Writer(f)), zapcore.Level(opts.FileLevel))

	core := zapcore.NewTee(consoleCore, fileCore)
	Logger = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).Sugar()
	return nil
}

func Close() error {
	_ = Logger.Sync()
	Logger = zap.NewNop().Sugar()
	if fileHandle != nil {
		err := fileHandle.Close()
		fileHandle = nil
		return err
	}
	return nil
}
