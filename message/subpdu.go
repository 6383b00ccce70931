// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"strings"
)

// SubPdu is one MAC subPDU of a received UL-SCH PDU. Payload is a view into the
// buffer passed to Unpack and must not outlive it.
type SubPdu struct {
	Lcid      Lcid
	HeaderLen int
	Payload   []byte
}

// LcgBsr is one (LCG, buffer size index) pair of a BSR
type LcgBsr struct {
	LcgID      uint32
	BufferSize uint32
}

// LongBsrList holds the entries of a long (or long truncated) BSR in LCG order
type LongBsrList struct {
	Bitmap uint8
	List   []LcgBsr
}

// Phr is a single entry power headroom report
type Phr struct {
	Ph    uint8
	Pcmax uint8
}

// UlSchPdu is a demultiplexed UL-SCH MAC PDU (TS 38.321 Section 6.1.2)
type UlSchPdu struct {
	SubPdus []SubPdu
}

// ulFixedSize returns the payload size of UL-SCH subPDUs without L field
func ulFixedSize(lcid Lcid) (int, bool) {
	switch lcid {
	case LcidCcch48:
		return 6, true
	case LcidCcch64:
		return 8, true
	case LcidBitRateQuery, LcidSePhr, LcidCrnti:
		return 2, true
	case LcidCfgGrantConf:
		return 0, true
	case LcidShortTruncBsr, LcidShortBsr:
		return 1, true
	default:
		return 0, false
	}
}

// Unpack splits rawData into subPDUs. On error the PDU holds no subPDUs.
func (pdu *UlSchPdu) Unpack(rawData []byte) error {
	pdu.SubPdus = pdu.SubPdus[:0]

	offset := 0
	for offset < len(rawData) {
		header := rawData[offset]
		lcid := Lcid(header & 0x3f)

		if lcid == LcidPadding {
			// padding runs until the end of the PDU
			pdu.SubPdus = append(pdu.SubPdus, SubPdu{
				Lcid:      lcid,
				HeaderLen: 1,
				Payload:   rawData[offset+1:],
			})
			return nil
		}
		if lcid >= lcidReservedMin && lcid <= lcidReservedMax {
			pdu.SubPdus = pdu.SubPdus[:0]
			return fmt.Errorf("%w: reserved LCID %d at offset %d", ErrMalformedPdu, lcid, offset)
		}

		headerLen := 1
		payloadLen, fixed := ulFixedSize(lcid)
		if !fixed {
			fFlag := header&0x40 != 0
			if fFlag {
				headerLen = 3
				if err := checkLen(rawData[offset:], headerLen); err != nil {
					pdu.SubPdus = pdu.SubPdus[:0]
					return fmt.Errorf("%w: LCID %d 16-bit L field at offset %d", err, lcid, offset)
				}
				payloadLen = int(binary.BigEndian.Uint16(rawData[offset+1 : offset+3]))
			} else {
				headerLen = 2
				if err := checkLen(rawData[offset:], headerLen); err != nil {
					pdu.SubPdus = pdu.SubPdus[:0]
					return fmt.Errorf("%w: LCID %d 8-bit L field at offset %d", err, lcid, offset)
				}
				payloadLen = int(rawData[offset+1])
			}
		}

		end := offset + headerLen + payloadLen
		if end > len(rawData) {
			pdu.SubPdus = pdu.SubPdus[:0]
			return fmt.Errorf("%w: LCID %d needs %d bytes, %d left", ErrMalformedPdu,
				lcid, headerLen+payloadLen, len(rawData)-offset)
		}

		pdu.SubPdus = append(pdu.SubPdus, SubPdu{
			Lcid:      lcid,
			HeaderLen: headerLen,
			Payload:   rawData[offset+headerLen : end : end],
		})
		offset = end
	}

	return nil
}

// Helper function for bounds checking
func checkLen(data []byte, minLen int) error {
	if len(data) < minLen {
		return ErrMalformedPdu
	}
	return nil
}

// IsSdu reports whether the subPDU carries a MAC SDU rather than a CE
func (s *SubPdu) IsSdu() bool {
	return s.Lcid <= LcidMaxLch || s.Lcid == LcidCcch64
}

// IsCcch reports whether the subPDU carries a CCCH SDU (Msg3)
func (s *SubPdu) IsCcch() bool {
	return s.Lcid == LcidCcch48 || s.Lcid == LcidCcch64
}

// SduLcid returns the logical channel the SDU belongs to
func (s *SubPdu) SduLcid() uint32 {
	if s.IsCcch() {
		return uint32(LcidCcch)
	}
	return uint32(s.Lcid)
}

// CRnti decodes a C-RNTI CE
func (s *SubPdu) CRnti() (uint16, error) {
	if s.Lcid != LcidCrnti || len(s.Payload) != 2 {
		return 0, fmt.Errorf("%w: not a C-RNTI CE (lcid=%d len=%d)", ErrMalformedPdu, s.Lcid, len(s.Payload))
	}
	return binary.BigEndian.Uint16(s.Payload), nil
}

// ShortBsr decodes a short or short truncated BSR CE
func (s *SubPdu) ShortBsr() (LcgBsr, error) {
	if (s.Lcid != LcidShortBsr && s.Lcid != LcidShortTruncBsr) || len(s.Payload) != 1 {
		return LcgBsr{}, fmt.Errorf("%w: not a short BSR CE (lcid=%d len=%d)", ErrMalformedPdu, s.Lcid, len(s.Payload))
	}
	return LcgBsr{
		LcgID:      uint32(s.Payload[0] >> 5),
		BufferSize: uint32(s.Payload[0] & 0x1f),
	}, nil
}

// LongBsr decodes a long or long truncated BSR CE. A long BSR carries exactly one
// buffer size octet per LCG flagged in the bitmap; a truncated one may carry fewer.
func (s *SubPdu) LongBsr() (LongBsrList, error) {
	var lbsr LongBsrList
	if s.Lcid != LcidLongBsr && s.Lcid != LcidLongTruncBsr {
		return lbsr, fmt.Errorf("%w: not a long BSR CE (lcid=%d)", ErrMalformedPdu, s.Lcid)
	}
	if len(s.Payload) < 1 {
		return lbsr, fmt.Errorf("%w: empty long BSR", ErrMalformedPdu)
	}

	lbsr.Bitmap = s.Payload[0]
	sizes := s.Payload[1:]
	nofLcgs := bits.OnesCount8(lbsr.Bitmap)
	switch {
	case s.Lcid == LcidLongBsr && len(sizes) != nofLcgs:
		return lbsr, fmt.Errorf("%w: long BSR bitmap flags %d LCGs, %d buffer sizes present",
			ErrMalformedPdu, nofLcgs, len(sizes))
	case len(sizes) > nofLcgs:
		return lbsr, fmt.Errorf("%w: long truncated BSR bitmap flags %d LCGs, %d buffer sizes present",
			ErrMalformedPdu, nofLcgs, len(sizes))
	}

	lbsr.List = make([]LcgBsr, 0, len(sizes))
	for lcg := uint32(0); lcg <= MaxLcg && len(sizes) > 0; lcg++ {
		if lbsr.Bitmap&(1<<lcg) == 0 {
			continue
		}
		lbsr.List = append(lbsr.List, LcgBsr{LcgID: lcg, BufferSize: uint32(sizes[0])})
		sizes = sizes[1:]
	}
	return lbsr, nil
}

// SePhr decodes a single entry PHR CE
func (s *SubPdu) SePhr() (Phr, error) {
	if s.Lcid != LcidSePhr || len(s.Payload) != 2 {
		return Phr{}, fmt.Errorf("%w: not a single entry PHR CE (lcid=%d len=%d)", ErrMalformedPdu, s.Lcid, len(s.Payload))
	}
	return Phr{Ph: s.Payload[0] & 0x3f, Pcmax: s.Payload[1] & 0x3f}, nil
}

func (pdu *UlSchPdu) String() string {
	var sb strings.Builder
	for i := range pdu.SubPdus {
		s := &pdu.SubPdus[i]
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case s.IsSdu():
			fmt.Fprintf(&sb, "SDU: lcid=%d len=%d", s.SduLcid(), len(s.Payload))
		case s.Lcid == LcidCrnti:
			crnti, _ := s.CRnti()
			fmt.Fprintf(&sb, "C-RNTI: rnti=0x%x", crnti)
		case s.Lcid == LcidShortBsr || s.Lcid == LcidShortTruncBsr:
			sbsr, _ := s.ShortBsr()
			fmt.Fprintf(&sb, "SBSR: lcg=%d bs=%d", sbsr.LcgID, sbsr.BufferSize)
		case s.Lcid == LcidLongBsr || s.Lcid == LcidLongTruncBsr:
			fmt.Fprintf(&sb, "LBSR: len=%d", len(s.Payload))
		case s.Lcid == LcidSePhr:
			phr, _ := s.SePhr()
			fmt.Fprintf(&sb, "SE_PHR: ph=%d pc=%d", phr.Ph, phr.Pcmax)
		case s.Lcid == LcidPadding:
			fmt.Fprintf(&sb, "PAD: len=%d", len(s.Payload))
		default:
			fmt.Fprintf(&sb, "CE: lcid=%d len=%d", s.Lcid, len(s.Payload))
		}
	}
	return sb.String()
}
