// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package mac

import (
	"fmt"

	"github.com/omec-project/nrmac/logger"
	"github.com/omec-project/nrmac/sched"
	"github.com/omec-project/nrmac/util"
)

// GetUlSched returns the UL grants of a slot
func (m *MAC) GetUlSched(slot SlotCfg) (ul *sched.UlSched, err error) {
	defer util.RecoverWithError(logger.RxLog, &err)

	if !m.started.Load() {
		return nil, ErrNotStarted
	}
	res, err := m.sched.GetUlSched(sched.SlotPoint(slot.Idx), slot.Cc)
	if err != nil {
		return nil, fmt.Errorf("UL scheduler slot=%d cc=%d: %w", slot.Idx, slot.Cc, err)
	}
	if res == nil {
		return nil, nil
	}
	for i := range res.Pusch {
		grant := &res.Pusch[i].Sch
		if ue, ok := m.ues.Load(grant.Rnti); ok {
			ue.MetricsUlMcs(grant.Tb.Mcs)
		}
	}
	return res, nil
}

// PucchInfo delivers the UCI decoded on a PUCCH
func (m *MAC) PucchInfo(slot SlotCfg, info PucchInfo) (err error) {
	defer util.RecoverWithError(logger.RxLog, &err)

	if !m.started.Load() {
		return ErrNotStarted
	}
	rnti := info.Uci.Cfg.Rnti
	if err := m.handleUciData(rnti, slot.Cc, info.Uci); err != nil {
		logger.RxLog.Errorf("error handling UCI data from PUCCH reception: %+v", err)
		return err
	}
	if ue, ok := m.ues.Load(rnti); ok {
		ue.MetricsPucchSinr(info.SnrDb)
	}
	return nil
}

// PuschInfo delivers a decoded PUSCH. A PDU with a valid CRC is interpreted on
// the task queue; the call does not wait for it.
func (m *MAC) PuschInfo(slot SlotCfg, info PuschInfo) (err error) {
	defer util.RecoverWithError(logger.RxLog, &err)

	if !m.started.Load() {
		return ErrNotStarted
	}
	rnti := info.Rnti
	if err := m.handleUciData(rnti, slot.Cc, info.Uci); err != nil {
		logger.RxLog.Errorf("error handling UCI data from PUSCH reception: %+v", err)
		return err
	}

	m.sched.UlCrcInfo(rnti, slot.Cc, info.Pid, info.Crc)

	var pushErr error
	if info.Crc && len(info.Pdu) > 0 {
		if m.pcap != nil {
			if err := m.pcap.WriteUlCrnti(info.Pdu, rnti, info.Pid, slot.Idx); err != nil {
				logger.PcapLog.Warnf("write UL PDU failed: %+v", err)
			}
		}
		pdu := info.Pdu
		if pushErr = m.queue.TryPush(func() { m.handlePdu(rnti, pdu) }); pushErr != nil {
			pushErr = fmt.Errorf("UL PDU from rnti=0x%x dropped: %w", rnti, pushErr)
		}
	}

	if ue, ok := m.ues.Load(rnti); ok {
		ue.MetricsRx(info.Crc, len(info.Pdu))
		ue.MetricsPuschSinr(info.SnrDb)
	}
	return pushErr
}

func (m *MAC) handleUciData(rnti uint16, cc uint32, uci UciData) error {
	cfg, value := &uci.Cfg, &uci.Value
	if value.Valid && len(value.Ack) != len(cfg.Ack) {
		return fmt.Errorf("rnti=0x%x: %d HARQ-ACK bits expected, %d decoded", rnti, len(cfg.Ack), len(value.Ack))
	}

	ue, found := m.ues.Load(rnti)
	for i, bit := range cfg.Ack {
		ack := value.Valid && value.Ack[i]
		m.sched.DlAckInfo(rnti, cc, bit.Pid, 0, ack)
		if found {
			ue.MetricsTx(bit.Pid, ack)
		}
	}

	if value.Valid && value.Sr {
		m.sched.UlSrInfo(rnti)
	}

	if found && value.Valid && cfg.CsiReports > 0 {
		ue.MetricsDlCqi(value.Cqi)
	}
	return nil
}
