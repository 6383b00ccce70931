// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/omec-project/nrmac/logger"
	"github.com/omec-project/nrmac/service"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var NRMAC = &service.NRMAC{}

var appLog *zap.SugaredLogger

func init() {
	appLog = logger.AppLog
}

func main() {
	app := cli.NewApp()
	app.Name = "nrmac"
	appLog.Infoln(app.Name)
	app.Usage = "-cfg nrmac configuration file"
	app.Action = action
	app.Flags = NRMAC.GetCliCmd()
	if err := app.Run(os.Args); err != nil {
		appLog.Errorf("NRMAC run Error: %v", err)
	}
}

func action(c *cli.Context) error {
	if err := NRMAC.Initialize(c); err != nil {
		logger.CfgLog.Errorf("%+v", err)
		return fmt.Errorf("failed to initialize")
	}

	NRMAC.Start()

	return nil
}
