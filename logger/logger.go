// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log         *zap.Logger
	AppLog      *zap.SugaredLogger
	InitLog     *zap.SugaredLogger
	CfgLog      *zap.SugaredLogger
	CtxLog      *zap.SugaredLogger
	MacLog      *zap.SugaredLogger
	RxLog       *zap.SugaredLogger
	TxLog       *zap.SugaredLogger
	RarLog      *zap.SugaredLogger
	QueueLog    *zap.SugaredLogger
	PcapLog     *zap.SugaredLogger
	MetricsLog  *zap.SugaredLogger
	UtilLog     *zap.SugaredLogger
	atomicLevel zap.AtomicLevel
)

func init() {
	atomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	config := zap.Config{
		Level:            atomicLevel,
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	// Encoder configuration
	encCfg := &config.EncoderConfig
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.LevelKey = "level"
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.CallerKey = "caller"
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encCfg.MessageKey = "message"
	encCfg.StacktraceKey = ""

	var err error
	log, err = config.Build()
	if err != nil {
		panic(err)
	}

	// Assign sugared loggers for each category
	AppLog = log.Sugar().With("component", "NRMAC", "category", "App")
	InitLog = log.Sugar().With("component", "NRMAC", "category", "Init")
	CfgLog = log.Sugar().With("component", "NRMAC", "category", "CFG")
	CtxLog = log.Sugar().With("component", "NRMAC", "category", "Context")
	MacLog = log.Sugar().With("component", "NRMAC", "category", "MAC")
	RxLog = log.Sugar().With("component", "NRMAC", "category", "RX")
	TxLog = log.Sugar().With("component", "NRMAC", "category", "TX")
	RarLog = log.Sugar().With("component", "NRMAC", "category", "RAR")
	QueueLog = log.Sugar().With("component", "NRMAC", "category", "TaskQueue")
	PcapLog = log.Sugar().With("component", "NRMAC", "category", "PCAP")
	MetricsLog = log.Sugar().With("component", "NRMAC", "category", "Metrics")
	UtilLog = log.Sugar().With("component", "NRMAC", "category", "Util")
}

// GetLogger returns the base zap.Logger
func GetLogger() *zap.Logger {
	return log
}

// SetLogLevel sets the log level (panic|fatal|error|warn|info|debug)
func SetLogLevel(level zapcore.Level) {
	InitLog.Infoln("set log level:", level)
	atomicLevel.SetLevel(level)
}

// IsDebugEnabled reports whether debug logs are emitted, so hot paths can skip
// building expensive log arguments.
func IsDebugEnabled() bool {
	return atomicLevel.Enabled(zapcore.DebugLevel)
}
