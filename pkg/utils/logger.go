package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger writes to a rotated <dir>/<name>.log file and stdout at the same
// time. Debug switches to the console encoder and debug level.
func InitLogger(dir, name string, debug bool) (*zap.Logger, error) {
	// Buat folder log jika belum ada
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	encoder, level := newEncoder(debug)

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dir, name+".log"),
		MaxSize:    10, // MB
		MaxBackups: 7,
		MaxAge:     28, // days
		Compress:   true,
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, fileWriter, level),
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	)

	return zap.New(core, zap.AddCaller()), nil
}

func newEncoder(debug bool) (zapcore.Encoder, zapcore.Level) {
	cfg := zap.NewProductionEncoderConfig()
	if debug {
		cfg = zap.NewDevelopmentEncoderConfig()
	}
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.CallerKey = "caller"
	cfg.EncodeCaller = zapcore.ShortCallerEncoder

	if debug {
		return zapcore.NewConsoleEncoder(cfg), zap.DebugLevel
	}
	return zapcore.NewJSONEncoder(cfg), zap.InfoLevel
}
