// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package mac

import (
	"errors"

	"github.com/omec-project/nrmac/sched"
)

var (
	ErrNotStarted     = errors.New("MAC not started")
	ErrAlreadyStarted = errors.New("MAC already started")
	ErrCellNotFound   = errors.New("cell not configured")
)

// SlotCfg identifies the slot and carrier of a PHY call
type SlotCfg struct {
	Idx uint32
	Cc  uint32
}

// RachInfo is a PRACH detection reported by the PHY
type RachInfo struct {
	Cc        uint32
	SlotIndex uint32
	Preamble  uint32
	TimeAdv   uint32
}

// HarqAckBit describes one HARQ-ACK bit expected in a UCI report
type HarqAckBit struct {
	Pid uint32
}

// UciCfg is what the PHY expected to decode from a PUCCH or PUSCH
type UciCfg struct {
	Rnti       uint16
	Ack        []HarqAckBit
	CsiReports int
}

// UciValue is what the PHY decoded. Ack is indexed like UciCfg.Ack.
type UciValue struct {
	Valid bool
	Ack   []bool
	Sr    bool
	Cqi   uint32
}

type UciData struct {
	Cfg   UciCfg
	Value UciValue
}

type PucchInfo struct {
	Uci   UciData
	SnrDb float32
}

// PuschInfo is a decoded PUSCH. Pdu is handed over to the MAC and must not be
// reused by the caller.
type PuschInfo struct {
	Rnti  uint16
	Pid   uint32
	Crc   bool
	Pdu   []byte
	Uci   UciData
	SnrDb float32
}

// Args are the MAC parameters given at Init
type Args struct {
	MaxUes        int
	TaskQueueSize int
	SchedArgs     sched.Args
	// ShortBsr is applied to every decoded short BSR, ZeroClearsAllLcgs if nil
	ShortBsr ShortBsrPolicy
}

// CcMetrics are the per-carrier counters of the MAC
type CcMetrics struct {
	Cc          uint32
	Pci         uint32
	RachCounter uint32
}
