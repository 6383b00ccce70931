// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package mac

import (
	"fmt"

	"github.com/omec-project/nrmac/logger"
	"github.com/omec-project/nrmac/message"
)

// ShortBsrPolicy applies a decoded short BSR of nofBytes for lcg
type ShortBsrPolicy func(sink BsrSink, rnti uint16, lcg uint32, nofBytes uint32)

// ZeroClearsAllLcgs treats an empty short BSR as "no data in any LCG" and
// otherwise reports the named LCG only
func ZeroClearsAllLcgs(sink BsrSink, rnti uint16, lcg uint32, nofBytes uint32) {
	if nofBytes == 0 {
		for g := uint32(0); g <= message.MaxLcg; g++ {
			sink.UlBsr(rnti, g, 0)
		}
		return
	}
	sink.UlBsr(rnti, lcg, nofBytes)
}

// ReportedLcgOnly reports every short BSR for the named LCG only
func ReportedLcgOnly(sink BsrSink, rnti uint16, lcg uint32, nofBytes uint32) {
	sink.UlBsr(rnti, lcg, nofBytes)
}

// handlePdu runs on the task queue. raw belongs to the MAC from here on.
func (m *MAC) handlePdu(rnti uint16, raw []byte) {
	if err := m.processPdu(rnti, raw); err != nil {
		logger.RxLog.Errorf("dropping UL PDU from rnti=0x%x: %+v", rnti, err)
	}
}

// processPdu resolves the C-RNTI CE first so that SDUs and CEs of the PDU are
// attributed to the resolved identity wherever the CE sits
func (m *MAC) processPdu(rnti uint16, raw []byte) error {
	pdu := &m.pduUl
	if err := pdu.Unpack(raw); err != nil {
		return err
	}
	if logger.IsDebugEnabled() {
		logger.RxLog.Debugf("Rx PDU: rnti=0x%x, %s", rnti, pdu)
	}

	crntiPos := -1
	for i := len(pdu.SubPdus) - 1; i >= 0; i-- {
		if pdu.SubPdus[i].Lcid != message.LcidCrnti {
			continue
		}
		if err := m.processCe(&rnti, &pdu.SubPdus[i]); err != nil {
			return err
		}
		crntiPos = i
		break
	}

	for i := range pdu.SubPdus {
		subPdu := &pdu.SubPdus[i]
		switch {
		case subPdu.IsSdu():
			m.rrc.SetActivityUser(rnti)
			if subPdu.IsCcch() {
				if ue, ok := m.ues.Load(rnti); ok {
					ue.SetConResID(subPdu.Payload)
				}
			}
			m.rlc.WritePDU(rnti, subPdu.SduLcid(), subPdu.Payload)
		case subPdu.Lcid == message.LcidCrnti:
			if i != crntiPos {
				logger.RxLog.Warnf("ignoring additional C-RNTI CE at subPDU %d, rnti=0x%x", i, rnti)
			}
		default:
			if err := m.processCe(&rnti, subPdu); err != nil {
				return fmt.Errorf("subPDU %d: %w", i, err)
			}
		}
	}
	return nil
}

func (m *MAC) processCe(rnti *uint16, subPdu *message.SubPdu) error {
	switch subPdu.Lcid {
	case message.LcidCrnti:
		crnti, err := subPdu.CRnti()
		if err != nil {
			return err
		}
		prev := *rnti
		*rnti = crnti
		m.rrc.UpdateUser(prev, crnti)
		// grant owed regardless of any BSR so the UE can complete random access
		m.sched.UlSrInfo(crnti)
	case message.LcidShortBsr, message.LcidShortTruncBsr:
		sbsr, err := subPdu.ShortBsr()
		if err != nil {
			return err
		}
		format := message.ShortBsr
		if subPdu.Lcid == message.LcidShortTruncBsr {
			format = message.ShortTruncBsr
		}
		m.shortBsr(m.sched, *rnti, sbsr.LcgID, message.BuffSizeFieldToBytes(sbsr.BufferSize, format))
	case message.LcidLongBsr, message.LcidLongTruncBsr:
		lbsr, err := subPdu.LongBsr()
		if err != nil {
			return err
		}
		format := message.LongBsr
		if subPdu.Lcid == message.LcidLongTruncBsr {
			format = message.LongTruncBsr
		}
		for _, lb := range lbsr.List {
			m.sched.UlBsr(*rnti, lb.LcgID, message.BuffSizeFieldToBytes(lb.BufferSize, format))
		}
	case message.LcidSePhr:
		phr, err := subPdu.SePhr()
		if err != nil {
			return err
		}
		if ue, ok := m.ues.Load(*rnti); ok {
			ue.MetricsPhr(float32(phr.Ph))
		}
	case message.LcidPadding:
	default:
		logger.RxLog.Warnf("unhandled subPDU with LCID=%d", subPdu.Lcid)
	}
	return nil
}
