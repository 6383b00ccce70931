// SPDX-FileCopyrightText: 2025 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"context"
	"time"

	"github.com/omec-project/nrmac/logger"
	"github.com/omec-project/nrmac/mac"
)

// Reporter logs a MAC metrics summary on a periodic ticker
type Reporter struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// NewReporter starts a reporter that calls report with a fresh snapshot every period
func NewReporter(period time.Duration, src Source, report func(mac.Metrics)) *Reporter {
	if report == nil {
		report = LogMetrics
	}
	ctx, cancel := context.WithCancel(context.Background())
	r := &Reporter{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(r.done)
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				report(src.GetMetrics())
			}
		}
	}()

	return r
}

// Stop cancels the ticker and waits for the reporting goroutine
func (r *Reporter) Stop() {
	if r.cancel != nil {
		r.cancel()
		<-r.done
	}
}

// LogMetrics writes one line per carrier and, at debug level, one per UE
func LogMetrics(m mac.Metrics) {
	for _, cc := range m.Cc {
		logger.MetricsLog.Infof("cc=%d pci=%d rach=%d ues=%d", cc.Cc, cc.Pci, cc.RachCounter, len(m.Ues))
	}
	if !logger.IsDebugEnabled() {
		return
	}
	for i := range m.Ues {
		ue := &m.Ues[i]
		logger.MetricsLog.Debugf("rnti=0x%x cc=%d dl_mcs=%.1f ul_mcs=%.1f cqi=%.1f tx=%d/%d rx=%d/%d dl_buf=%d ul_buf=%d",
			ue.Rnti, ue.Cc, ue.DlMcs, ue.UlMcs, ue.DlCqi, ue.TxErrors, ue.TxPkts, ue.RxErrors, ue.RxPkts,
			ue.DlBuffer, ue.UlBuffer)
	}
}
