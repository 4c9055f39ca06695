package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logFileName = "whack-a-mole.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging builds the process logger
// With debug off nothing is written anywhere: the terminal belongs to the board
// With debug on, zap and the std log both go to dir/whack-a-mole.log, rotated past maxLogSize
// The returned func flushes and closes the log
func setupLogging(dir string, debug bool) (*zap.Logger, func(), error) {
	if !debug {
		log.SetOutput(io.Discard)
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, strings.TrimSuffix(logFileName, ".log")+
			"-"+time.Now().Format("20060102-150405")+".log")
		if err := os.Rename(logPath, rotated); err != nil {
			return nil, nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(file), zapcore.DebugLevel)
	logger := zap.New(core, zap.AddCaller())

	restore := zap.RedirectStdLog(logger)
	return logger, func() {
		_ = logger.Sync()
		restore()
		file.Close()
	}, nil
}
