// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"os"
	"path"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ava-labs/convertervm/config"
)

const (
	loggerName = "converter-cli"

	logMaxSize  = 8 // megabytes
	logMaxFiles = 7
)

// newLogger writes human readable logs to stderr and, when a log directory
// is configured, JSON logs to a rotating file.
func newLogger(cfg *config.Config) logging.Logger {
	cores := []logging.WrappedCore{
		logging.NewWrappedCore(cfg.LogLevel, os.Stderr, logging.Colors.ConsoleEncoder()),
	}
	if len(cfg.LogDirectory) > 0 {
		rw := &lumberjack.Logger{
			Filename:   path.Join(cfg.LogDirectory, loggerName+".log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxFiles,
			Compress:   true,
		}
		cores = append(cores, logging.NewWrappedCore(cfg.LogLevel, rw, logging.JSON.FileEncoder()))
	}
	return logging.NewLogger("", cores...)
}
