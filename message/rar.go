// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/omec-project/aper"
)

// RarSubPdu is one E/T/RAPID subheader followed by a MAC RAR (TS 38.321 Section 6.2.3)
type RarSubPdu struct {
	Rapid     uint8
	Ta        uint16 // 12-bit timing advance command
	TempCrnti uint16
	UlGrant   aper.BitString
}

// RarPdu collects RAR subPDUs and packs them into a transport block
type RarPdu struct {
	buf     *bytes.Buffer
	tbs     int
	SubPdus []RarSubPdu
}

// InitTx prepares a RAR PDU of tbs bytes written into buf by Pack.
// A tbs of 0 sizes the transport block to the subPDUs.
func (pdu *RarPdu) InitTx(buf *bytes.Buffer, tbs int) {
	pdu.buf = buf
	pdu.tbs = tbs
	pdu.SubPdus = pdu.SubPdus[:0]
}

// AddSubPdu appends a subPDU, keeping insertion order
func (pdu *RarPdu) AddSubPdu(subPdu RarSubPdu) {
	pdu.SubPdus = append(pdu.SubPdus, subPdu)
}

// Pack encodes all subPDUs. The buffer is only modified when packing succeeds.
func (pdu *RarPdu) Pack() error {
	if pdu.buf == nil {
		return fmt.Errorf("RAR PDU not initialized")
	}
	length := len(pdu.SubPdus) * RarSubPduLen
	tbs := pdu.tbs
	if tbs == 0 {
		tbs = length
	}
	if length > tbs {
		return fmt.Errorf("%w: %d RAR subPDUs need %d bytes, TBS is %d", ErrNoSpace, len(pdu.SubPdus), length, tbs)
	}
	for i := range pdu.SubPdus {
		s := &pdu.SubPdus[i]
		if s.Rapid > MaxRapid || s.Ta > MaxRarTa {
			return fmt.Errorf("invalid RAR subPDU %d: rapid=%d ta=%d", i, s.Rapid, s.Ta)
		}
		if s.UlGrant.BitLength != RarUlGrantBits {
			return fmt.Errorf("invalid RAR subPDU %d: UL grant has %d bits", i, s.UlGrant.BitLength)
		}
	}

	pdu.buf.Reset()
	pdu.buf.Grow(tbs)
	var encoded [RarSubPduLen]byte
	for i := range pdu.SubPdus {
		s := &pdu.SubPdus[i]
		grant := ulGrantValue(s.UlGrant)

		// E/T/RAPID
		encoded[0] = 0x40 | s.Rapid
		if i+1 < len(pdu.SubPdus) {
			encoded[0] |= 0x80
		}
		// R/TA/UL grant/TC-RNTI
		encoded[1] = byte(s.Ta>>5) & 0x7f
		encoded[2] = byte(s.Ta&0x1f)<<3 | byte(grant>>24)&0x07
		encoded[3] = byte(grant >> 16)
		encoded[4] = byte(grant >> 8)
		encoded[5] = byte(grant)
		binary.BigEndian.PutUint16(encoded[6:8], s.TempCrnti)
		pdu.buf.Write(encoded[:])
	}
	for i := length; i < tbs; i++ {
		pdu.buf.WriteByte(0)
	}
	return nil
}

// UnpackRar decodes the RAPID subPDUs of a RAR PDU. Decoding stops after the
// subPDU whose E bit is clear; trailing bytes are padding.
func UnpackRar(rawData []byte) ([]RarSubPdu, error) {
	var subPdus []RarSubPdu
	for offset := 0; offset < len(rawData); offset += RarSubPduLen {
		header := rawData[offset]
		if header&0x40 == 0 {
			return nil, fmt.Errorf("%w: backoff indicator subheaders are not supported", ErrMalformedPdu)
		}
		if err := checkLen(rawData[offset:], RarSubPduLen); err != nil {
			return nil, fmt.Errorf("%w: truncated RAR subPDU at offset %d", err, offset)
		}
		p := rawData[offset : offset+RarSubPduLen]
		grant := uint32(p[2]&0x07)<<24 | uint32(p[3])<<16 | uint32(p[4])<<8 | uint32(p[5])
		ulGrant := aper.BitString{Bytes: make([]byte, 4), BitLength: RarUlGrantBits}
		binary.BigEndian.PutUint32(ulGrant.Bytes, grant<<(32-RarUlGrantBits))
		subPdus = append(subPdus, RarSubPdu{
			Rapid:     header & 0x3f,
			Ta:        uint16(p[1]&0x7f)<<5 | uint16(p[2]>>3),
			TempCrnti: binary.BigEndian.Uint16(p[6:8]),
			UlGrant:   ulGrant,
		})
		if header&0x80 == 0 {
			break
		}
	}
	return subPdus, nil
}

func (pdu *RarPdu) String() string {
	var sb strings.Builder
	sb.WriteString("RAR")
	for i := range pdu.SubPdus {
		s := &pdu.SubPdus[i]
		fmt.Fprintf(&sb, " (RAPID: %d, TA: %d, TC-RNTI: 0x%x)", s.Rapid, s.Ta, s.TempCrnti)
	}
	return sb.String()
}
