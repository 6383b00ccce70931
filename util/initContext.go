// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"net"
	"strings"
	"time"

	"github.com/omec-project/nrmac/factory"
	"github.com/omec-project/nrmac/logger"
	"github.com/omec-project/nrmac/sched"
)

const (
	defaultMaxUes         = 64
	defaultTaskQueueSize  = 1024
	defaultSibPeriodicity = 160
	defaultPcapFilename   = "/tmp/mac_nr.pcap"
	defaultMetricsAddress = "0.0.0.0:9089"
	defaultMetricsPeriod  = time.Second
	maxPci                = 1007
)

// NrmacContext is the validated runtime view of the configuration
type NrmacContext struct {
	Cells                 []sched.CellCfg
	MaxUes                int
	TaskQueueSize         int
	ZeroShortBsrClearsAll bool

	PcapEnable   bool
	PcapFilename string

	MetricsEnable  bool
	MetricsAddress string
	MetricsPeriod  time.Duration
}

func InitNrmacContext() (*NrmacContext, bool) {
	nrmacCfg := factory.NrmacConfig.Configuration
	if nrmacCfg == nil {
		logger.CtxLog.Errorln("no NRMAC configuration found")
		return nil, false
	}

	n := &NrmacContext{
		MaxUes:                nrmacCfg.MaxUes,
		TaskQueueSize:         nrmacCfg.TaskQueueSize,
		ZeroShortBsrClearsAll: true,
	}

	// Cells
	if len(nrmacCfg.Cells) == 0 {
		logger.CtxLog.Errorln("no cell specified")
		return nil, false
	}
	for i, cell := range nrmacCfg.Cells {
		cellCfg, ok := formatCell(uint32(i), cell)
		if !ok {
			return nil, false
		}
		n.Cells = append(n.Cells, cellCfg)
	}

	// UE capacity and task queue
	if n.MaxUes < 0 || n.TaskQueueSize < 0 {
		logger.CtxLog.Errorf("maxUes [%d] and taskQueueSize [%d] must not be negative", n.MaxUes, n.TaskQueueSize)
		return nil, false
	}
	if n.MaxUes == 0 {
		n.MaxUes = defaultMaxUes
	}
	if n.TaskQueueSize == 0 {
		n.TaskQueueSize = defaultTaskQueueSize
	}
	if nrmacCfg.ZeroShortBsrClearsAll != nil {
		n.ZeroShortBsrClearsAll = *nrmacCfg.ZeroShortBsrClearsAll
	}

	// PCAP
	n.PcapEnable = nrmacCfg.Pcap.Enable
	n.PcapFilename = nrmacCfg.Pcap.Filename
	if n.PcapEnable && n.PcapFilename == "" {
		logger.CtxLog.Infof("no pcap filename specified, using %s", defaultPcapFilename)
		n.PcapFilename = defaultPcapFilename
	}

	// Metrics
	n.MetricsEnable = nrmacCfg.Metrics.Enable
	n.MetricsAddress = nrmacCfg.Metrics.BindAddress
	n.MetricsPeriod = nrmacCfg.Metrics.Period
	if n.MetricsEnable {
		if n.MetricsAddress == "" {
			n.MetricsAddress = defaultMetricsAddress
		}
		if _, _, err := net.SplitHostPort(n.MetricsAddress); err != nil {
			logger.CtxLog.Errorf("parse metrics bind address failed: %+v", err)
			return nil, false
		}
		if n.MetricsPeriod <= 0 {
			n.MetricsPeriod = defaultMetricsPeriod
		}
	}

	return n, true
}

func formatCell(idx uint32, cell factory.Cell) (sched.CellCfg, bool) {
	cellCfg := sched.CellCfg{Cc: cell.Cc, Pci: cell.Pci}
	if cell.Cc != idx {
		logger.CtxLog.Errorf("cell %d has cc %d, cells must be listed in carrier order", idx, cell.Cc)
		return cellCfg, false
	}
	if cell.Pci > maxPci {
		logger.CtxLog.Errorf("cell %d: PCI %d out of range [0, %d]", idx, cell.Pci, maxPci)
		return cellCfg, false
	}

	switch strings.ToLower(cell.Duplex) {
	case "", "fdd":
		cellCfg.Duplex = sched.DuplexFdd
	case "tdd":
		cellCfg.Duplex = sched.DuplexTdd
	default:
		logger.CtxLog.Errorf("cell %d: unknown duplex mode [%s]", idx, cell.Duplex)
		return cellCfg, false
	}

	if len(cell.Sibs) == 0 {
		cellCfg.Sibs = []sched.SibCfg{{Index: 0, Periodicity: defaultSibPeriodicity}}
		return cellCfg, true
	}
	for _, sib := range cell.Sibs {
		if sib.Periodicity == 0 {
			logger.CtxLog.Errorf("cell %d: SIB %d has no periodicity", idx, sib.Index)
			return cellCfg, false
		}
		cellCfg.Sibs = append(cellCfg.Sibs, sched.SibCfg{Index: sib.Index, Periodicity: sib.Periodicity})
	}
	return cellCfg, true
}
