// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/omec-project/nrmac/context"
	"github.com/omec-project/nrmac/mac"
)

const namespace = "nrmac"

// Source is anything that can produce a MAC metrics snapshot
type Source interface {
	GetMetrics() mac.Metrics
}

type ueMetric struct {
	desc      *prometheus.Desc
	valueType prometheus.ValueType
	value     func(m *context.UeMetrics) float64
}

// Collector exports MAC snapshots to Prometheus. A snapshot is taken on every scrape.
type Collector struct {
	src       Source
	ueMetrics []ueMetric
	rachDesc  *prometheus.Desc
	uesDesc   *prometheus.Desc
}

func NewCollector(src Source) *Collector {
	ueLabels := []string{"rnti", "cc"}
	counter := func(name, help string, value func(m *context.UeMetrics) float64) ueMetric {
		return ueMetric{
			desc:      prometheus.NewDesc(prometheus.BuildFQName(namespace, "ue", name), help, ueLabels, nil),
			valueType: prometheus.CounterValue,
			value:     value,
		}
	}
	gauge := func(name, help string, value func(m *context.UeMetrics) float64) ueMetric {
		return ueMetric{
			desc:      prometheus.NewDesc(prometheus.BuildFQName(namespace, "ue", name), help, ueLabels, nil),
			valueType: prometheus.GaugeValue,
			value:     value,
		}
	}

	return &Collector{
		src: src,
		ueMetrics: []ueMetric{
			counter("tx_packets_total", "DL transport blocks acknowledged or not",
				func(m *context.UeMetrics) float64 { return float64(m.TxPkts) }),
			counter("tx_errors_total", "DL transport blocks NACKed",
				func(m *context.UeMetrics) float64 { return float64(m.TxErrors) }),
			counter("tx_bytes_total", "DL bytes acknowledged",
				func(m *context.UeMetrics) float64 { return float64(m.TxBytes) }),
			counter("rx_packets_total", "UL transport blocks received",
				func(m *context.UeMetrics) float64 { return float64(m.RxPkts) }),
			counter("rx_errors_total", "UL transport blocks with CRC errors",
				func(m *context.UeMetrics) float64 { return float64(m.RxErrors) }),
			counter("rx_bytes_total", "UL bytes received with valid CRC",
				func(m *context.UeMetrics) float64 { return float64(m.RxBytes) }),
			counter("slots_total", "DL slots the UE was active in",
				func(m *context.UeMetrics) float64 { return float64(m.NofSlots) }),
			gauge("dl_buffer_bytes", "DL bytes pending in RLC",
				func(m *context.UeMetrics) float64 { return float64(m.DlBuffer) }),
			gauge("ul_buffer_bytes", "UL bytes reported by BSR",
				func(m *context.UeMetrics) float64 { return float64(m.UlBuffer) }),
			gauge("dl_cqi", "average wideband CQI",
				func(m *context.UeMetrics) float64 { return float64(m.DlCqi) }),
			gauge("dl_mcs", "average DL MCS",
				func(m *context.UeMetrics) float64 { return float64(m.DlMcs) }),
			gauge("ul_mcs", "average UL MCS",
				func(m *context.UeMetrics) float64 { return float64(m.UlMcs) }),
			gauge("pusch_sinr_db", "average PUSCH SINR",
				func(m *context.UeMetrics) float64 { return float64(m.PuschSinr) }),
			gauge("pucch_sinr_db", "average PUCCH SINR",
				func(m *context.UeMetrics) float64 { return float64(m.PucchSinr) }),
			gauge("phr", "average power headroom report index",
				func(m *context.UeMetrics) float64 { return float64(m.Phr) }),
		},
		rachDesc: prometheus.NewDesc(prometheus.BuildFQName(namespace, "cell", "rach_total"),
			"PRACH detections", []string{"cc", "pci"}, nil),
		uesDesc: prometheus.NewDesc(prometheus.BuildFQName(namespace, "", "ues"),
			"UE contexts in the MAC", nil, nil),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.ueMetrics {
		ch <- m.desc
	}
	ch <- c.rachDesc
	ch <- c.uesDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snapshot := c.src.GetMetrics()

	ch <- prometheus.MustNewConstMetric(c.uesDesc, prometheus.GaugeValue, float64(len(snapshot.Ues)))
	for _, cc := range snapshot.Cc {
		ch <- prometheus.MustNewConstMetric(c.rachDesc, prometheus.CounterValue, float64(cc.RachCounter),
			strconv.FormatUint(uint64(cc.Cc), 10), strconv.FormatUint(uint64(cc.Pci), 10))
	}
	for i := range snapshot.Ues {
		ue := &snapshot.Ues[i]
		rnti := fmt.Sprintf("0x%x", ue.Rnti)
		cc := strconv.FormatUint(uint64(ue.Cc), 10)
		for _, m := range c.ueMetrics {
			ch <- prometheus.MustNewConstMetric(m.desc, m.valueType, m.value(ue), rnti, cc)
		}
	}
}
