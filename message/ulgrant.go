// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"encoding/binary"
	"fmt"

	"github.com/omec-project/aper"
)

// Msg3Dci is the scheduler's view of the Msg3 PUSCH allocation
type Msg3Dci struct {
	FreqHopping          bool
	FreqDomainAssignment uint32
	TimeDomainAssignment uint32
	Mcs                  uint32
	Tpc                  uint32
	CsiRequest           bool
}

// RAR UL grant fields, TS 38.213 Table 8.2-1, in transmission order
const (
	ulGrantHoppingBits = 1
	ulGrantFreqBits    = 14
	ulGrantTimeBits    = 4
	ulGrantMcsBits     = 4
	ulGrantTpcBits     = 3
	ulGrantCsiBits     = 1
)

// PackRarUlGrant converts a Msg3 DCI into the packed 27-bit RAR UL grant
func PackRarUlGrant(dci Msg3Dci) (aper.BitString, error) {
	fields := []struct {
		name  string
		value uint32
		width uint
	}{
		{"frequency hopping", boolToUint(dci.FreqHopping), ulGrantHoppingBits},
		{"frequency resource", dci.FreqDomainAssignment, ulGrantFreqBits},
		{"time resource", dci.TimeDomainAssignment, ulGrantTimeBits},
		{"MCS", dci.Mcs, ulGrantMcsBits},
		{"TPC", dci.Tpc, ulGrantTpcBits},
		{"CSI request", boolToUint(dci.CsiRequest), ulGrantCsiBits},
	}

	var grant uint32
	for _, f := range fields {
		if f.value >= 1<<f.width {
			return aper.BitString{}, fmt.Errorf("%w: %s %d exceeds %d bits", ErrGrantConversion, f.name, f.value, f.width)
		}
		grant = grant<<f.width | f.value
	}

	bitString := aper.BitString{
		Bytes:     make([]byte, 4),
		BitLength: RarUlGrantBits,
	}
	binary.BigEndian.PutUint32(bitString.Bytes, grant<<(32-RarUlGrantBits))
	return bitString, nil
}

// UnpackRarUlGrant is the inverse of PackRarUlGrant
func UnpackRarUlGrant(grant aper.BitString) (Msg3Dci, error) {
	if grant.BitLength != RarUlGrantBits || len(grant.Bytes) < 4 {
		return Msg3Dci{}, fmt.Errorf("%w: UL grant has %d bits", ErrGrantConversion, grant.BitLength)
	}
	value := binary.BigEndian.Uint32(grant.Bytes) >> (32 - RarUlGrantBits)

	take := func(width uint) uint32 {
		shift := RarUlGrantBits - width
		v := (value >> shift) & (1<<width - 1)
		value = value << width & (1<<RarUlGrantBits - 1)
		return v
	}
	var dci Msg3Dci
	dci.FreqHopping = take(ulGrantHoppingBits) == 1
	dci.FreqDomainAssignment = take(ulGrantFreqBits)
	dci.TimeDomainAssignment = take(ulGrantTimeBits)
	dci.Mcs = take(ulGrantMcsBits)
	dci.Tpc = take(ulGrantTpcBits)
	dci.CsiRequest = take(ulGrantCsiBits) == 1
	return dci, nil
}

func ulGrantValue(grant aper.BitString) uint32 {
	if len(grant.Bytes) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(grant.Bytes) >> (32 - RarUlGrantBits)
}

func boolToUint(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
