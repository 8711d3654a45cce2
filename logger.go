// Copyright (C) 2021-2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	logger "github.com/d2r2/go-logger"
	"github.com/sirupsen/logrus"
)

var lg = logger.NewPackageLogger("sensor", logger.InfoLevel)

// packageLoggers are the d2r2 package loggers that follow --log.level.
var packageLoggers = []string{"bsbmp", "i2c", "sht3x", "sensor", "psychro"}

// setLogLevel applies level to logrus and to the package loggers of the
// sensor drivers and the psychrometric library.
func setLogLevel(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(parsed)
	for _, name := range packageLoggers {
		logger.ChangePackageLogLevel(name, packageLogLevel(parsed))
	}
	return nil
}

func packageLogLevel(level logrus.Level) logger.LogLevel {
	switch level {
	case logrus.PanicLevel:
		return logger.PanicLevel
	case logrus.FatalLevel:
		return logger.FatalLevel
	case logrus.ErrorLevel:
		return logger.ErrorLevel
	case logrus.WarnLevel:
		return logger.WarnLevel
	case logrus.InfoLevel:
		return logger.InfoLevel
	default:
		return logger.DebugLevel
	}
}
