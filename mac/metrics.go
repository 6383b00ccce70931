// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package mac

import (
	"slices"

	"github.com/omec-project/nrmac/context"
)

// Metrics is a snapshot of the MAC counters merged with the scheduler's
type Metrics struct {
	Ues []context.UeMetrics
	Cc  []CcMetrics
}

// GetMetrics may briefly contend with slot processing on the UE table, call it
// at a low rate.
func (m *MAC) GetMetrics() Metrics {
	var metrics Metrics
	m.ues.ForEach(func(ue *context.UeNr) {
		metrics.Ues = append(metrics.Ues, ue.MetricsRead())
	})
	slices.SortFunc(metrics.Ues, func(a, b context.UeMetrics) int {
		return int(a.Rnti) - int(b.Rnti)
	})

	if state := m.cells.Load(); state != nil {
		for _, c := range state.carriers {
			metrics.Cc = append(metrics.Cc, CcMetrics{
				Cc:          c.cfg.Cc,
				Pci:         c.cfg.Pci,
				RachCounter: c.rachs.Load(),
			})
		}
	}

	for _, sm := range m.sched.GetMetrics().Ues {
		idx, ok := slices.BinarySearchFunc(metrics.Ues, sm.Rnti, func(u context.UeMetrics, rnti uint16) int {
			return int(u.Rnti) - int(rnti)
		})
		if !ok {
			continue
		}
		metrics.Ues[idx].DlBuffer = sm.DlBuffer
		metrics.Ues[idx].UlBuffer = sm.UlBuffer
	}
	return metrics
}
