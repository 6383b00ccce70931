// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// DlSchPdu multiplexes MAC CEs and SDUs into a DL-SCH transport block. CEs must
// be added before SDUs. Pack fills the rest of the transport block with padding.
type DlSchPdu struct {
	buf *bytes.Buffer
	tbs int
}

// InitTx resets buf and prepares a transport block of tbs bytes
func (pdu *DlSchPdu) InitTx(buf *bytes.Buffer, tbs int) {
	buf.Reset()
	buf.Grow(tbs)
	pdu.buf = buf
	pdu.tbs = tbs
}

// RemainingLen returns the free space in the transport block
func (pdu *DlSchPdu) RemainingLen() int {
	return pdu.tbs - pdu.buf.Len()
}

// SduSubheaderLen returns the subheader size needed for an SDU of sduLen bytes
func SduSubheaderLen(sduLen int) int {
	if sduLen > math.MaxUint8 {
		return 3
	}
	return 2
}

// MaxSduLen returns the largest SDU that fits in remaining bytes including its
// subheader, or 0 if none fits.
func MaxSduLen(remaining int) int {
	sduLen := remaining - 2
	if sduLen > math.MaxUint8 {
		sduLen = remaining - 3
		if sduLen <= math.MaxUint8 {
			sduLen = math.MaxUint8
		}
	}
	if sduLen > math.MaxUint16 {
		sduLen = math.MaxUint16
	}
	if sduLen < 0 {
		return 0
	}
	return sduLen
}

// AddSdu appends an R/F/LCID/L subheader followed by sdu
func (pdu *DlSchPdu) AddSdu(lcid uint32, sdu []byte) error {
	if lcid > uint32(LcidMaxLch) {
		return fmt.Errorf("invalid SDU LCID %d", lcid)
	}
	if len(sdu) > math.MaxUint16 {
		return fmt.Errorf("SDU length %d exceeds uint16 limit", len(sdu))
	}
	headerLen := SduSubheaderLen(len(sdu))
	if headerLen+len(sdu) > pdu.RemainingLen() {
		return fmt.Errorf("%w: SDU lcid=%d len=%d, remaining=%d", ErrNoSpace, lcid, len(sdu), pdu.RemainingLen())
	}

	if headerLen == 3 {
		var header [3]byte
		header[0] = 0x40 | byte(lcid)
		binary.BigEndian.PutUint16(header[1:], uint16(len(sdu)))
		pdu.buf.Write(header[:])
	} else {
		pdu.buf.Write([]byte{byte(lcid), byte(len(sdu))})
	}
	pdu.buf.Write(sdu)
	return nil
}

// AddConResID appends a UE contention resolution identity CE
func (pdu *DlSchPdu) AddConResID(id [ConResIDLen]byte) error {
	if 1+ConResIDLen > pdu.RemainingLen() {
		return fmt.Errorf("%w: contention resolution CE", ErrNoSpace)
	}
	pdu.buf.WriteByte(byte(LcidConResID))
	pdu.buf.Write(id[:])
	return nil
}

// AddTaCmd appends a timing advance command CE
func (pdu *DlSchPdu) AddTaCmd(tagID, ta uint8) error {
	if tagID > 3 || ta > 63 {
		return fmt.Errorf("invalid TA command tag=%d ta=%d", tagID, ta)
	}
	if 2 > pdu.RemainingLen() {
		return fmt.Errorf("%w: TA command CE", ErrNoSpace)
	}
	pdu.buf.Write([]byte{byte(LcidTaCmd), tagID<<6 | ta})
	return nil
}

// Pack terminates the PDU with a padding subPDU covering the remaining bytes
func (pdu *DlSchPdu) Pack() {
	remaining := pdu.RemainingLen()
	if remaining <= 0 {
		return
	}
	pdu.buf.WriteByte(byte(LcidPadding))
	for i := 1; i < remaining; i++ {
		pdu.buf.WriteByte(0)
	}
}
