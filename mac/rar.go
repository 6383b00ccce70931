// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package mac

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/omec-project/nrmac/logger"
	"github.com/omec-project/nrmac/message"
	"github.com/omec-project/nrmac/sched"
)

var (
	errNoRarGrants = errors.New("no RAR grants")
	errRarBusy     = errors.New("RAR assembly already in progress")
)

// assembleRar packs one RAR PDU for all grants into dst. dst is left untouched
// if any grant cannot be converted.
func (m *MAC) assembleRar(c *carrier, grants []sched.Msg3Grant, tbs int, dst *bytes.Buffer) error {
	if len(grants) == 0 {
		logger.RarLog.Warnf("no RAR grants for cc=%d", c.cfg.Cc)
		return errNoRarGrants
	}
	if !c.rarMu.TryLock() {
		logger.RarLog.Errorf("RAR assembly already in progress on cc=%d", c.cfg.Cc)
		return errRarBusy
	}
	defer c.rarMu.Unlock()

	pdu := &c.rarPdu
	pdu.InitTx(dst, tbs)
	for i := range grants {
		grant := &grants[i]
		if grant.Data.PreambleIdx > message.MaxRapid || grant.Data.TaCmd > message.MaxRarTa {
			logger.RarLog.Errorf("RAR grant %d out of range: rapid=%d ta=%d (temp_crnti=0x%x)",
				i, grant.Data.PreambleIdx, grant.Data.TaCmd, grant.Data.TempCrnti)
			return fmt.Errorf("%w: grant %d rapid=%d ta=%d", message.ErrGrantConversion,
				i, grant.Data.PreambleIdx, grant.Data.TaCmd)
		}
		ulGrant, err := message.PackRarUlGrant(grant.Msg3Dci)
		if err != nil {
			logger.RarLog.Errorf("couldn't pack Msg3 UL grant %d (temp_crnti=0x%x): %+v", i, grant.Data.TempCrnti, err)
			return fmt.Errorf("grant %d: %w", i, err)
		}
		logger.RarLog.Infof("setting RAR grant %d: %+v", i, grant.Msg3Dci)
		pdu.AddSubPdu(message.RarSubPdu{
			Rapid:     uint8(grant.Data.PreambleIdx),
			Ta:        uint16(grant.Data.TaCmd),
			TempCrnti: grant.Data.TempCrnti,
			UlGrant:   ulGrant,
		})
	}

	if err := pdu.Pack(); err != nil {
		logger.RarLog.Errorf("couldn't assemble RAR PDU: %+v", err)
		return err
	}
	logger.RarLog.Infof("DL %s", pdu)
	return nil
}
