// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package mac

import (
	"bytes"
	"fmt"

	"github.com/omec-project/nrmac/context"
	"github.com/omec-project/nrmac/logger"
	"github.com/omec-project/nrmac/sched"
	"github.com/omec-project/nrmac/util"
)

// GetDlSched runs the scheduler for a DL slot and fills the transport blocks
// of its PDSCHs. The result stays valid until the next call for the carrier.
func (m *MAC) GetDlSched(slot SlotCfg) (dl *sched.DlSched, err error) {
	defer util.RecoverWithError(logger.TxLog, &err)

	if !m.started.Load() {
		return nil, ErrNotStarted
	}
	c, err := m.carrier(slot.Cc)
	if err != nil {
		return nil, err
	}

	pdschSlot := sched.SlotPoint(slot.Idx)
	m.sched.SlotIndication(pdschSlot)
	res, err := m.sched.GetDlSched(pdschSlot, slot.Cc)
	if err != nil {
		return nil, fmt.Errorf("DL scheduler slot=%d cc=%d: %w", slot.Idx, slot.Cc, err)
	}
	if res == nil {
		return nil, nil
	}

	rarCount, siCount := 0, 0
	for i := range res.Phy.Pdsch {
		pdsch := &res.Phy.Pdsch[i]
		switch pdsch.Sch.RntiType {
		case sched.RntiTypeC:
			m.fillUePdsch(pdsch, slot)
		case sched.RntiTypeRa:
			if rarCount >= len(res.Rar) {
				logger.TxLog.Errorf("RA-RNTI PDSCH without RAR grants, slot=%d", slot.Idx)
				continue
			}
			rar := &res.Rar[rarCount]
			rarCount++
			m.fillRar(pdsch, c, rar.Grants)
			if pdsch.Data[0] != nil && m.pcap != nil {
				if err := m.pcap.WriteDlRar(pdsch.Data[0].Bytes(), pdsch.Sch.Rnti, slot.Idx); err != nil {
					logger.PcapLog.Warnf("write RAR failed: %+v", err)
				}
			}
		case sched.RntiTypeSi:
			if siCount >= len(res.SibIdxs) {
				logger.TxLog.Errorf("SI-RNTI PDSCH without SIB index, slot=%d", slot.Idx)
				continue
			}
			sibIdx := res.SibIdxs[siCount]
			siCount++
			fillSib(pdsch, c, sibIdx)
		}
	}

	m.ues.ForEach(func(ue *context.UeNr) {
		if ue.IsActive() && ue.Cc() == slot.Cc {
			ue.MetricsCnt()
		}
	})
	return &res.Phy, nil
}

func (m *MAC) fillUePdsch(pdsch *sched.Pdsch, slot SlotCfg) {
	rnti := pdsch.Sch.Rnti
	ue, ok := m.ues.LoadActive(rnti)
	if !ok {
		return
	}
	for _, data := range pdsch.Data {
		// a non-empty buffer is a retransmission
		if data == nil || data.Len() != 0 {
			continue
		}
		if err := ue.GeneratePdu(data, int(pdsch.Sch.Tb.Tbs/8), pdsch.Sch.Pid); err != nil {
			logger.TxLog.Errorf("generate PDU for rnti=0x%x failed: %+v", rnti, err)
			data.Reset()
			continue
		}
		if m.pcap != nil {
			if err := m.pcap.WriteDlCrnti(data.Bytes(), rnti, pdsch.Sch.Pid, slot.Idx); err != nil {
				logger.PcapLog.Warnf("write DL PDU failed: %+v", err)
			}
		}
		ue.MetricsDlMcs(pdsch.Sch.Tb.Mcs)
	}
}

// fillRar packs the RAR into the PDSCH's own buffer, or leaves no data if assembly fails
func (m *MAC) fillRar(pdsch *sched.Pdsch, c *carrier, grants []sched.Msg3Grant) {
	buf := pdsch.Data[0]
	if buf == nil {
		buf = new(bytes.Buffer)
	}
	if err := m.assembleRar(c, grants, int(pdsch.Sch.Tb.Tbs/8), buf); err != nil {
		logger.TxLog.Errorf("RAR for ra_rnti=0x%x dropped: %+v", pdsch.Sch.Rnti, err)
		pdsch.Data[0] = nil
		return
	}
	pdsch.Data[0] = buf
}

func fillSib(pdsch *sched.Pdsch, c *carrier, sibIdx uint32) {
	if int(sibIdx) >= len(c.sibs) {
		logger.TxLog.Errorf("SIB index %d not staged on cc=%d", sibIdx, c.cfg.Cc)
		return
	}
	if pdsch.Data[0] == nil {
		pdsch.Data[0] = new(bytes.Buffer)
	}
	pdsch.Data[0].Reset()
	pdsch.Data[0].Write(c.sibs[sibIdx].Payload.Bytes())
}
