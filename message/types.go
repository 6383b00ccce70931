// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package message

import "errors"

// Lcid is the 6-bit logical channel ID carried in every MAC subheader
// (TS 38.321 Tables 6.2.1-1 and 6.2.1-2).
type Lcid uint8

// Shared and DL-SCH LCID values
const (
	LcidCcch         Lcid = 0
	LcidMinDrb       Lcid = 4
	LcidMaxLch       Lcid = 32
	LcidDrxCmd       Lcid = 60
	LcidTaCmd        Lcid = 61
	LcidConResID     Lcid = 62
	LcidPadding      Lcid = 63
	lcidReservedMin  Lcid = 33
	lcidReservedMax  Lcid = 51
	LcidInvalidValue Lcid = 64
)

// UL-SCH LCID values
const (
	LcidCcch48        Lcid = 0
	LcidCcch64        Lcid = 52
	LcidBitRateQuery  Lcid = 53
	LcidMultiPhr4Oct  Lcid = 54
	LcidCfgGrantConf  Lcid = 55
	LcidMultiPhr1Oct  Lcid = 56
	LcidSePhr         Lcid = 57
	LcidCrnti         Lcid = 58
	LcidShortTruncBsr Lcid = 59
	LcidLongTruncBsr  Lcid = 60
	LcidShortBsr      Lcid = 61
	LcidLongBsr       Lcid = 62
)

// BsrFormat selects the buffer size table used to decode a BSR field.
type BsrFormat uint8

const (
	ShortBsr BsrFormat = iota
	ShortTruncBsr
	LongBsr
	LongTruncBsr
)

func (f BsrFormat) String() string {
	switch f {
	case ShortBsr:
		return "SBSR"
	case ShortTruncBsr:
		return "SBSR-trunc"
	case LongBsr:
		return "LBSR"
	case LongTruncBsr:
		return "LBSR-trunc"
	default:
		return "unknown"
	}
}

const (
	// MaxLcg is the highest logical channel group ID
	MaxLcg = 7
	// ConResIDLen is the size of the UE contention resolution identity CE
	ConResIDLen = 6
	// RarSubPduLen is the size of one RAPID subheader plus MAC RAR
	RarSubPduLen = 8
	// RarUlGrantBits is the size of the RAR UL grant (TS 38.213 Table 8.2-1)
	RarUlGrantBits = 27
	// MaxRapid is the largest random access preamble ID
	MaxRapid = 63
	// MaxRarTa is the largest timing advance command carried in a RAR
	MaxRarTa = 0xfff
)

var (
	// ErrMalformedPdu is returned when a MAC PDU cannot be decoded
	ErrMalformedPdu = errors.New("malformed MAC PDU")
	// ErrGrantConversion is returned when a Msg3 grant does not fit the RAR UL grant fields
	ErrGrantConversion = errors.New("msg3 grant conversion failed")
	// ErrNoSpace is returned when a subPDU does not fit the remaining transport block
	ErrNoSpace = errors.New("not enough space in transport block")
)
