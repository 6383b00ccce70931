// SPDX-FileCopyrightText: 2025 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package context

import (
	"bytes"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/omec-project/nrmac/logger"
	"github.com/omec-project/nrmac/message"
	"github.com/omec-project/nrmac/sched"
)

const (
	maxHarqProcesses = 16
	// RLC PDUs smaller than this are not worth a subheader
	minRlcPduLen = 5
)

// UeNr is the MAC context of one UE
type UeNr struct {
	rnti   uint16
	cc     uint32
	rlc    Rlc
	active atomic.Bool

	// PDU generation state
	pduMu         sync.Mutex
	cfg           sched.UeCfg
	conresID      [message.ConResIDLen]byte
	conresPending bool
	rlcBuf        []byte
	dlPdu         message.DlSchPdu

	metricsMu   sync.Mutex
	metrics     UeMetrics
	harqTxBytes [maxHarqProcesses]uint32
}

func NewUeNr(rnti uint16, cc uint32, cfg sched.UeCfg, rlc Rlc) *UeNr {
	ue := &UeNr{
		rnti: rnti,
		cc:   cc,
		rlc:  rlc,
		cfg:  cfg,
	}
	ue.metrics.Rnti = rnti
	ue.metrics.Cc = cc
	ue.active.Store(true)
	return ue
}

func (ue *UeNr) Rnti() uint16 {
	return ue.rnti
}

func (ue *UeNr) Cc() uint32 {
	return ue.cc
}

func (ue *UeNr) IsActive() bool {
	return ue.active.Load()
}

func (ue *UeNr) SetActive(active bool) {
	ue.active.Store(active)
}

func (ue *UeNr) Config() sched.UeCfg {
	ue.pduMu.Lock()
	defer ue.pduMu.Unlock()
	return ue.cfg
}

func (ue *UeNr) SetConfig(cfg sched.UeCfg) {
	ue.pduMu.Lock()
	defer ue.pduMu.Unlock()
	ue.cfg = cfg
}

// SetConResID stores the UE contention resolution identity taken from a CCCH
// SDU. It is sent in the next DL PDU generated for the UE.
func (ue *UeNr) SetConResID(ccchSdu []byte) {
	if len(ccchSdu) < message.ConResIDLen {
		logger.CtxLog.Warnf("CCCH SDU of %d bytes too short for contention resolution, rnti=0x%x", len(ccchSdu), ue.rnti)
		return
	}
	ue.pduMu.Lock()
	defer ue.pduMu.Unlock()
	copy(ue.conresID[:], ccchSdu[:message.ConResIDLen])
	ue.conresPending = true
}

// GeneratePdu fills buf with a DL-SCH PDU of grantSize bytes, pulling RLC PDUs
// for every DL bearer in LCID order.
func (ue *UeNr) GeneratePdu(buf *bytes.Buffer, grantSize int, pid uint32) error {
	if grantSize <= 0 {
		return fmt.Errorf("invalid grant size %d for rnti=0x%x", grantSize, ue.rnti)
	}

	ue.pduMu.Lock()
	defer ue.pduMu.Unlock()

	if cap(ue.rlcBuf) < grantSize {
		ue.rlcBuf = make([]byte, grantSize)
	}
	pdu := &ue.dlPdu
	pdu.InitTx(buf, grantSize)

	// the CE stays pending until a PDU carrying it is complete
	conresAdded := false
	if ue.conresPending {
		if err := pdu.AddConResID(ue.conresID); err != nil {
			logger.CtxLog.Warnf("contention resolution CE postponed for rnti=0x%x: %+v", ue.rnti, err)
		} else {
			conresAdded = true
		}
	}

	for lcid := uint32(0); lcid <= sched.MaxLcid; lcid++ {
		dir := ue.cfg.UeBearers[lcid].Direction
		if dir != sched.DirectionDl && dir != sched.DirectionBoth {
			continue
		}
		for {
			maxLen := message.MaxSduLen(pdu.RemainingLen())
			if maxLen < minRlcPduLen {
				break
			}
			n := ue.rlc.ReadPDU(ue.rnti, lcid, ue.rlcBuf[:maxLen])
			if n <= 0 {
				break
			}
			if n > maxLen {
				return fmt.Errorf("RLC returned %d bytes for a %d byte request, rnti=0x%x lcid=%d", n, maxLen, ue.rnti, lcid)
			}
			if err := pdu.AddSdu(lcid, ue.rlcBuf[:n]); err != nil {
				return err
			}
		}
	}
	pdu.Pack()
	if conresAdded {
		ue.conresPending = false
	}

	ue.metricsMu.Lock()
	ue.harqTxBytes[pid%maxHarqProcesses] = uint32(buf.Len())
	ue.metricsMu.Unlock()
	return nil
}

// MetricsRead returns a copy of the UE counters
func (ue *UeNr) MetricsRead() UeMetrics {
	ue.metricsMu.Lock()
	defer ue.metricsMu.Unlock()
	return ue.metrics
}

// MetricsTx accounts a HARQ-ACK for the TB last sent on pid
func (ue *UeNr) MetricsTx(pid uint32, ack bool) {
	ue.metricsMu.Lock()
	defer ue.metricsMu.Unlock()
	ue.metrics.TxPkts++
	if !ack {
		ue.metrics.TxErrors++
		return
	}
	ue.metrics.TxBytes += uint64(ue.harqTxBytes[pid%maxHarqProcesses])
}

func (ue *UeNr) MetricsRx(crc bool, nofBytes int) {
	ue.metricsMu.Lock()
	defer ue.metricsMu.Unlock()
	ue.metrics.RxPkts++
	if !crc {
		ue.metrics.RxErrors++
		return
	}
	ue.metrics.RxBytes += uint64(nofBytes)
}

func (ue *UeNr) MetricsDlMcs(mcs uint32) {
	ue.metricsMu.Lock()
	defer ue.metricsMu.Unlock()
	ue.metrics.DlMcs = cma(ue.metrics.DlMcs, &ue.metrics.dlMcsSamples, float32(mcs))
}

func (ue *UeNr) MetricsUlMcs(mcs uint32) {
	ue.metricsMu.Lock()
	defer ue.metricsMu.Unlock()
	ue.metrics.UlMcs = cma(ue.metrics.UlMcs, &ue.metrics.ulMcsSamples, float32(mcs))
}

func (ue *UeNr) MetricsDlCqi(cqi uint32) {
	ue.metricsMu.Lock()
	defer ue.metricsMu.Unlock()
	ue.metrics.DlCqi = cma(ue.metrics.DlCqi, &ue.metrics.dlCqiSamples, float32(cqi))
}

func (ue *UeNr) MetricsPuschSinr(sinr float32) {
	ue.metricsMu.Lock()
	defer ue.metricsMu.Unlock()
	ue.metrics.PuschSinr = cma(ue.metrics.PuschSinr, &ue.metrics.puschSinrSamples, sinr)
}

func (ue *UeNr) MetricsPucchSinr(sinr float32) {
	ue.metricsMu.Lock()
	defer ue.metricsMu.Unlock()
	ue.metrics.PucchSinr = cma(ue.metrics.PucchSinr, &ue.metrics.pucchSinrSamples, sinr)
}

func (ue *UeNr) MetricsPhr(ph float32) {
	ue.metricsMu.Lock()
	defer ue.metricsMu.Unlock()
	ue.metrics.Phr = cma(ue.metrics.Phr, &ue.metrics.phrSamples, ph)
}

// MetricsCnt counts one DL slot the UE was active in
func (ue *UeNr) MetricsCnt() {
	ue.metricsMu.Lock()
	defer ue.metricsMu.Unlock()
	ue.metrics.NofSlots++
}
