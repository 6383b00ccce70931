// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	aperLogger "github.com/omec-project/aper/logger"
	utilLogger "github.com/omec-project/util/logger"
	"github.com/urfave/cli"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/omec-project/nrmac/factory"
	"github.com/omec-project/nrmac/logger"
	"github.com/omec-project/nrmac/mac"
	"github.com/omec-project/nrmac/metrics"
	"github.com/omec-project/nrmac/pcap"
	"github.com/omec-project/nrmac/sched"
	"github.com/omec-project/nrmac/util"
)

// NRMAC main struct
type NRMAC struct{}

// Config holds configuration file path
type Config struct {
	cfg string
}

var config Config

var nrmacCli = []cli.Flag{
	cli.StringFlag{
		Name:     "cfg",
		Usage:    "nrmac config file",
		Required: true,
	},
}

func (*NRMAC) GetCliCmd() (flags []cli.Flag) {
	return nrmacCli
}

// Initialize loads config and sets log levels
func (nrmac *NRMAC) Initialize(c *cli.Context) error {
	config = Config{cfg: c.String("cfg")}
	absPath, err := filepath.Abs(config.cfg)
	if err != nil {
		logger.CfgLog.Errorln(err)
		return err
	}
	if err := factory.InitConfigFactory(absPath); err != nil {
		return err
	}
	if err := factory.CheckConfigVersion(); err != nil {
		return err
	}
	nrmac.setLogLevel()
	return nil
}

// setLogLevel configures log levels for all modules
func (nrmac *NRMAC) setLogLevel() {
	cfgLogger := factory.NrmacConfig.Logger
	if cfgLogger == nil {
		logger.InitLog.Warnln("NRMAC config without log level setting")
		return
	}
	setModuleLogLevel(cfgLogger.NRMAC, logger.InitLog, logger.SetLogLevel, "NRMAC")
	setModuleLogLevel(cfgLogger.Aper, aperLogger.AperLog, aperLogger.SetLogLevel, "Aper")
	setModuleLogLevel(cfgLogger.Util, utilLogger.UtilLog, utilLogger.SetLogLevel, "Util (drsm, fsm, etc.)")
}

// setModuleLogLevel is a helper to reduce repetition in log level setup
func setModuleLogLevel(moduleCfg *utilLogger.LogSetting, logObj *zap.SugaredLogger, setLevel func(zapcore.Level), moduleName string) {
	if moduleCfg == nil || moduleCfg.DebugLevel == "" {
		logObj.Warnf("%s Log level not set. Default set to [info] level", moduleName)
		setLevel(zap.InfoLevel)
		return
	}
	level, err := zapcore.ParseLevel(moduleCfg.DebugLevel)
	if err != nil {
		logObj.Warnf("%s Log level [%s] is invalid, set to [info] level", moduleName, moduleCfg.DebugLevel)
		setLevel(zap.InfoLevel)
		return
	}
	logObj.Infof("%s Log level is set to [%s] level", moduleName, level)
	setLevel(level)
}

// Start runs the MAC until SIGINT or SIGTERM
func (nrmac *NRMAC) Start() {
	logger.InitLog.Infoln("server started")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := nrmac.Run(ctx); err != nil {
		logger.InitLog.Errorf("NRMAC terminated: %+v", err)
		os.Exit(1)
	}
}

// Run builds the MAC from the loaded configuration and serves it until ctx is done
func (nrmac *NRMAC) Run(ctx context.Context) (err error) {
	nrmacCtx, ok := util.InitNrmacContext()
	if !ok {
		return fmt.Errorf("initializing context failed")
	}

	var pcapWriter mac.PcapWriter
	if nrmacCtx.PcapEnable {
		w, err := pcap.Open(nrmacCtx.PcapFilename, nrmacCtx.Cells[0].Duplex, 0)
		if err != nil {
			return err
		}
		pcapWriter = w
	}

	var shortBsr mac.ShortBsrPolicy = mac.ZeroClearsAllLcgs
	if !nrmacCtx.ZeroShortBsrClearsAll {
		shortBsr = mac.ReportedLcgOnly
	}
	args := mac.Args{
		MaxUes:        nrmacCtx.MaxUes,
		TaskQueueSize: nrmacCtx.TaskQueueSize,
		ShortBsr:      shortBsr,
	}

	rlc := newLoopbackRlc()
	rrc := newStandaloneRrc(rlc)
	m := mac.New(sched.NewIdle())
	if err := m.Init(args, rlc, rrc, pcapWriter); err != nil {
		if pcapWriter != nil {
			err = multierr.Append(err, pcapWriter.Close())
		}
		return err
	}
	rlc.setSink(m)
	defer func() {
		err = multierr.Append(err, m.Stop())
	}()

	if err := m.CellCfg(nrmacCtx.Cells); err != nil {
		return fmt.Errorf("cell configuration failed: %w", err)
	}
	logger.InitLog.Infof("MAC running on %d cell(s)", len(nrmacCtx.Cells))

	g, gctx := errgroup.WithContext(ctx)
	if nrmacCtx.MetricsEnable {
		reg, err := metrics.NewRegistry(m)
		if err != nil {
			return err
		}
		g.Go(func() error {
			return metrics.Serve(gctx, nrmacCtx.MetricsAddress, reg)
		})
		reporter := metrics.NewReporter(nrmacCtx.MetricsPeriod, m, nil)
		defer reporter.Stop()
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.InitLog.Infoln("stopping NRMAC")
		return nil
	})

	return g.Wait()
}
