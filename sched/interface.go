// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package sched

// Scheduler decides which UEs get which resources in every slot. The MAC only
// relies on this contract; implementations must be safe for concurrent use.
type Scheduler interface {
	Config(args Args, cells []CellCfg) error
	UeCfg(rnti uint16, cfg UeCfg)
	UeRem(rnti uint16)

	SlotIndication(slot SlotPoint)
	// GetDlSched returns the DL result for a slot. It stays valid until the next
	// call for the same slot.
	GetDlSched(slot SlotPoint, cc uint32) (*DlRes, error)
	GetUlSched(slot SlotPoint, cc uint32) (*UlSched, error)

	UlBsr(rnti uint16, lcg uint32, bsr uint32)
	UlSrInfo(rnti uint16)
	DlAckInfo(rnti uint16, cc uint32, pid uint32, tbIdx uint32, ack bool)
	UlCrcInfo(rnti uint16, cc uint32, pid uint32, crc bool)
	DlRachInfo(rar RarInfo, cfg UeCfg) error
	DlBufferState(rnti uint16, lcid uint32, txQueue uint32, retxQueue uint32)

	GetMetrics() Metrics
	Stop()
}
