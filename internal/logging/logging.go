// Package logging 构建全局日志器：控制台始终输出，运行日志可另写文件。
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New 创建日志器。devMode 打开 debug 级别。
func New(devMode bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if devMode {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	return zerolog.New(console).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewWithFile 创建同时写文件的日志器，返回文件的关闭函数。
// 日志目录不存在时自动创建；文件打不开时退回纯控制台输出。
func NewWithFile(devMode bool, logPath string) (zerolog.Logger, func() error) {
	logger := New(devMode)

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		logger.Warn().Err(err).Str("path", logPath).Msg("无法创建日志目录，仅输出到控制台")
		return logger, func() error { return nil }
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger.Warn().Err(err).Str("path", logPath).Msg("无法打开日志文件，仅输出到控制台")
		return logger, func() error { return nil }
	}

	level := zerolog.InfoLevel
	if devMode {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	multi := zerolog.MultiLevelWriter(console, f)

	logger = zerolog.New(multi).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, func() error {
		if err := f.Close(); err != nil {
			return fmt.Errorf("close log file: %w", err)
		}
		return nil
	}
}

// Nop 静默日志器（测试用）
func Nop() zerolog.Logger {
	return zerolog.New(io.Discard)
}
