// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package factory

import (
	"fmt"
	"os"

	"github.com/omec-project/nrmac/logger"
	"gopkg.in/yaml.v2"
)

var NrmacConfig Config

func InitConfigFactory(f string) error {
	content, err := os.ReadFile(f)
	if err != nil {
		return err
	}

	NrmacConfig = Config{}
	if err = yaml.Unmarshal(content, &NrmacConfig); err != nil {
		return err
	}

	return nil
}

func CheckConfigVersion() error {
	currentVersion := NrmacConfig.getVersion()

	if currentVersion != NRMAC_EXPECTED_CONFIG_VERSION {
		return fmt.Errorf("config version is [%s], but expected is [%s]",
			currentVersion, NRMAC_EXPECTED_CONFIG_VERSION)
	}

	logger.CfgLog.Infof("config version [%s]", currentVersion)

	return nil
}
