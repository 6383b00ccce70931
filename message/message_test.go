// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffSizeFieldToBytes(t *testing.T) {
	assert.Equal(t, uint32(0), BuffSizeFieldToBytes(0, ShortBsr))
	assert.Equal(t, uint32(0), BuffSizeFieldToBytes(0, LongBsr))
	assert.Equal(t, uint32(10), BuffSizeFieldToBytes(1, ShortBsr))
	assert.Equal(t, uint32(38), BuffSizeFieldToBytes(5, ShortTruncBsr))
	assert.Equal(t, uint32(14), BuffSizeFieldToBytes(5, LongBsr))

	// saturating index reports one more than the biggest tabulated value
	assert.Equal(t, BuffSizeFieldToBytes(30, ShortBsr)+1, BuffSizeFieldToBytes(31, ShortBsr))
	assert.Equal(t, BuffSizeFieldToBytes(253, LongBsr)+1, BuffSizeFieldToBytes(254, LongBsr))
	assert.Equal(t, BuffSizeFieldToBytes(254, LongBsr), BuffSizeFieldToBytes(255, LongTruncBsr))

	assert.Equal(t, uint32(0), BuffSizeFieldToBytes(3, BsrFormat(42)))
}

func TestBuffSizeFieldToBytesMonotonic(t *testing.T) {
	for _, tc := range []struct {
		format   BsrFormat
		maxIndex uint32
	}{
		{ShortBsr, 31},
		{LongBsr, 254},
	} {
		prev := BuffSizeFieldToBytes(0, tc.format)
		for idx := uint32(1); idx <= tc.maxIndex; idx++ {
			cur := BuffSizeFieldToBytes(idx, tc.format)
			assert.Greater(t, cur, prev, "%s index %d", tc.format, idx)
			assert.Equal(t, cur, BuffSizeFieldToBytes(idx, tc.format))
			prev = cur
		}
	}
}

func TestUnpackCrntiAndShortBsr(t *testing.T) {
	// C-RNTI CE (0x0047), short BSR lcg=2 index=5
	raw := []byte{0x3a, 0x00, 0x47, 0x3d, 0x45}

	var pdu UlSchPdu
	require.NoError(t, pdu.Unpack(raw))
	require.Len(t, pdu.SubPdus, 2)

	crnti, err := pdu.SubPdus[0].CRnti()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x47), crnti)
	assert.False(t, pdu.SubPdus[0].IsSdu())

	sbsr, err := pdu.SubPdus[1].ShortBsr()
	require.NoError(t, err)
	assert.Equal(t, LcgBsr{LcgID: 2, BufferSize: 5}, sbsr)
}

func TestUnpackSdusArePayloadViews(t *testing.T) {
	long := bytes.Repeat([]byte{0xaa}, 300)
	raw := []byte{0x04, 0x03, 0x01, 0x02, 0x03} // lcid 4, 8-bit L
	raw = append(raw, 0x45, 0x01, 0x2c)         // lcid 5, 16-bit L = 300
	raw = append(raw, long...)
	raw = append(raw, 0x3f, 0x00, 0x00) // padding

	var pdu UlSchPdu
	require.NoError(t, pdu.Unpack(raw))
	require.Len(t, pdu.SubPdus, 3)

	assert.True(t, pdu.SubPdus[0].IsSdu())
	assert.Equal(t, uint32(4), pdu.SubPdus[0].SduLcid())
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, pdu.SubPdus[0].Payload)
	assert.Equal(t, 3, pdu.SubPdus[1].HeaderLen)
	assert.Len(t, pdu.SubPdus[1].Payload, 300)
	assert.Equal(t, LcidPadding, pdu.SubPdus[2].Lcid)

	// views share the caller's buffer
	raw[2] = 0x7f
	assert.Equal(t, byte(0x7f), pdu.SubPdus[0].Payload[0])
}

func TestUnpackCcch(t *testing.T) {
	raw := []byte{0x00, 1, 2, 3, 4, 5, 6, 0x3d, 0x00}

	var pdu UlSchPdu
	require.NoError(t, pdu.Unpack(raw))
	require.Len(t, pdu.SubPdus, 2)
	assert.True(t, pdu.SubPdus[0].IsCcch())
	assert.Equal(t, uint32(0), pdu.SubPdus[0].SduLcid())
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, pdu.SubPdus[0].Payload)
}

func TestUnpackMalformed(t *testing.T) {
	for name, raw := range map[string][]byte{
		"truncated L field":     {0x04},
		"truncated 16-bit L":    {0x44, 0x01},
		"truncated payload":     {0x04, 0x05, 0x01, 0x02},
		"truncated C-RNTI":      {0x3a, 0x00},
		"reserved lcid":         {0x21, 0x00},
		"good then truncated":   {0x3d, 0x45, 0x3a, 0x01},
		"truncated long BSR":    {0x3e, 0x03, 0x05},
		"truncated single PHR":  {0x39, 0x10},
		"truncated 64-bit CCCH": {0x34, 0x01, 0x02},
	} {
		t.Run(name, func(t *testing.T) {
			var pdu UlSchPdu
			err := pdu.Unpack(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedPdu))
			assert.Empty(t, pdu.SubPdus)
		})
	}
}

func TestLongBsr(t *testing.T) {
	// LCG0 and LCG2 flagged
	s := SubPdu{Lcid: LcidLongBsr, Payload: []byte{0x05, 10, 200}}
	lbsr, err := s.LongBsr()
	require.NoError(t, err)
	assert.Equal(t, []LcgBsr{{LcgID: 0, BufferSize: 10}, {LcgID: 2, BufferSize: 200}}, lbsr.List)

	s = SubPdu{Lcid: LcidLongBsr, Payload: []byte{0x05, 10}}
	_, err = s.LongBsr()
	assert.ErrorIs(t, err, ErrMalformedPdu)

	// truncated BSR may report fewer groups than flagged
	s = SubPdu{Lcid: LcidLongTruncBsr, Payload: []byte{0x86, 17}}
	lbsr, err = s.LongBsr()
	require.NoError(t, err)
	assert.Equal(t, []LcgBsr{{LcgID: 1, BufferSize: 17}}, lbsr.List)

	s = SubPdu{Lcid: LcidLongTruncBsr, Payload: []byte{0x01, 1, 2}}
	_, err = s.LongBsr()
	assert.ErrorIs(t, err, ErrMalformedPdu)
}

func TestSePhr(t *testing.T) {
	s := SubPdu{Lcid: LcidSePhr, Payload: []byte{0xc5, 0x21}}
	phr, err := s.SePhr()
	require.NoError(t, err)
	assert.Equal(t, Phr{Ph: 5, Pcmax: 0x21}, phr)
}

func TestDlSchPdu(t *testing.T) {
	var buf bytes.Buffer
	var pdu DlSchPdu
	pdu.InitTx(&buf, 20)

	require.NoError(t, pdu.AddConResID([ConResIDLen]byte{1, 2, 3, 4, 5, 6}))
	require.NoError(t, pdu.AddSdu(1, []byte{0xde, 0xad}))
	assert.Equal(t, 9, pdu.RemainingLen())
	assert.ErrorIs(t, pdu.AddSdu(4, make([]byte, 8)), ErrNoSpace)
	pdu.Pack()

	expected := []byte{
		0x3e, 1, 2, 3, 4, 5, 6,
		0x01, 0x02, 0xde, 0xad,
		0x3f, 0, 0, 0, 0, 0, 0, 0, 0,
	}
	assert.Equal(t, expected, buf.Bytes())
}

func TestDlSchPduLongSdu(t *testing.T) {
	var buf bytes.Buffer
	var pdu DlSchPdu
	pdu.InitTx(&buf, 400)

	sdu := bytes.Repeat([]byte{0x11}, 300)
	require.NoError(t, pdu.AddSdu(4, sdu))
	assert.Equal(t, []byte{0x44, 0x01, 0x2c}, buf.Bytes()[:3])
	assert.Equal(t, 97, pdu.RemainingLen())
}

func TestMaxSduLen(t *testing.T) {
	assert.Equal(t, 0, MaxSduLen(1))
	assert.Equal(t, 8, MaxSduLen(10))
	assert.Equal(t, 255, MaxSduLen(257))
	assert.Equal(t, 255, MaxSduLen(258))
	assert.Equal(t, 256, MaxSduLen(259))
	for remaining := 2; remaining < 600; remaining++ {
		n := MaxSduLen(remaining)
		assert.LessOrEqual(t, n+SduSubheaderLen(n), remaining, "remaining %d", remaining)
	}
}

func TestRarUlGrant(t *testing.T) {
	dci := Msg3Dci{
		FreqHopping:          true,
		FreqDomainAssignment: 0x1234,
		TimeDomainAssignment: 9,
		Mcs:                  7,
		Tpc:                  3,
		CsiRequest:           true,
	}
	grant, err := PackRarUlGrant(dci)
	require.NoError(t, err)
	assert.EqualValues(t, RarUlGrantBits, grant.BitLength)

	decoded, err := UnpackRarUlGrant(grant)
	require.NoError(t, err)
	assert.Equal(t, dci, decoded)

	_, err = PackRarUlGrant(Msg3Dci{Mcs: 16})
	assert.ErrorIs(t, err, ErrGrantConversion)
	_, err = PackRarUlGrant(Msg3Dci{FreqDomainAssignment: 1 << 14})
	assert.ErrorIs(t, err, ErrGrantConversion)
}

func TestRarPdu(t *testing.T) {
	var buf bytes.Buffer
	var pdu RarPdu
	pdu.InitTx(&buf, 32)

	var want []RarSubPdu
	for i, dci := range []Msg3Dci{{Mcs: 1}, {Mcs: 2, Tpc: 1}, {Mcs: 3, FreqHopping: true}} {
		grant, err := PackRarUlGrant(dci)
		require.NoError(t, err)
		s := RarSubPdu{Rapid: uint8(10 + i), Ta: uint16(100 * (i + 1)), TempCrnti: uint16(0x4601 + i), UlGrant: grant}
		pdu.AddSubPdu(s)
		want = append(want, s)
	}
	require.NoError(t, pdu.Pack())
	require.Equal(t, 32, buf.Len())

	raw := buf.Bytes()
	assert.Equal(t, byte(0xc0|10), raw[0])
	assert.Equal(t, byte(0xc0|11), raw[8])
	assert.Equal(t, byte(0x40|12), raw[16])
	assert.Equal(t, make([]byte, 8), raw[24:])

	got, err := UnpackRar(raw)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRarPduTooSmall(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("previous")
	var pdu RarPdu
	pdu.InitTx(&buf, 8)
	grant, err := PackRarUlGrant(Msg3Dci{})
	require.NoError(t, err)
	pdu.AddSubPdu(RarSubPdu{Rapid: 1, UlGrant: grant})
	pdu.AddSubPdu(RarSubPdu{Rapid: 2, UlGrant: grant})

	assert.ErrorIs(t, pdu.Pack(), ErrNoSpace)
	assert.Equal(t, "previous", buf.String())
}
