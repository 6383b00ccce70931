// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package mac

// PcapWriter captures MAC PDUs for offline analysis
type PcapWriter interface {
	WriteDlCrnti(pdu []byte, rnti uint16, pid uint32, slot uint32) error
	WriteUlCrnti(pdu []byte, rnti uint16, pid uint32, slot uint32) error
	WriteDlRar(pdu []byte, raRnti uint16, slot uint32) error
	Close() error
}

// BsrSink receives decoded buffer status reports
type BsrSink interface {
	UlBsr(rnti uint16, lcg uint32, bsr uint32)
}
