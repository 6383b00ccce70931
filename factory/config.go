// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package factory

import (
	"time"

	"github.com/omec-project/util/logger"
)

const (
	NRMAC_EXPECTED_CONFIG_VERSION = "1.0.0"
)

type Config struct {
	Info          *Info          `yaml:"info"`
	Configuration *Configuration `yaml:"configuration"`
	Logger        *Logger        `yaml:"logger"`
}

type Info struct {
	Version     string `yaml:"version,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type Configuration struct {
	Cells                 []Cell  `yaml:"cells"`
	MaxUes                int     `yaml:"maxUes,omitempty"`
	ZeroShortBsrClearsAll *bool   `yaml:"zeroShortBsrClearsAll,omitempty"`
	TaskQueueSize         int     `yaml:"taskQueueSize,omitempty"`
	Pcap                  Pcap    `yaml:"pcap"`
	Metrics               Metrics `yaml:"metrics"`
}

type Cell struct {
	Cc     uint32 `yaml:"cc"`
	Pci    uint32 `yaml:"pci"`
	Duplex string `yaml:"duplex"` // fdd or tdd
	Sibs   []Sib  `yaml:"sibs,omitempty"`
}

type Sib struct {
	Index       uint32 `yaml:"index"`
	Periodicity uint32 `yaml:"periodicity"` // radio frames
}

type Pcap struct {
	Enable   bool   `yaml:"enable"`
	Filename string `yaml:"filename,omitempty"`
}

type Metrics struct {
	Enable      bool          `yaml:"enable"`
	BindAddress string        `yaml:"bindAddress,omitempty"` // e.g. 0.0.0.0:9089
	Period      time.Duration `yaml:"period,omitempty"`
}

type Logger struct {
	NRMAC *logger.LogSetting `yaml:"NRMAC,omitempty"`
	Aper  *logger.LogSetting `yaml:"Aper,omitempty"`
	Util  *logger.LogSetting `yaml:"Util,omitempty"`
}

func (c *Config) getVersion() string {
	if c.Info != nil && c.Info.Version != "" {
		return c.Info.Version
	}
	return ""
}
