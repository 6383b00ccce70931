// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package sched

import (
	"bytes"

	"github.com/omec-project/nrmac/message"
)

const (
	MaxTbPerPdsch = 2
	MaxLcid       = 32
	MaxLcGroup    = message.MaxLcg
)

// SlotPoint is a slot index as counted by the PHY
type SlotPoint uint32

type Duplex uint8

const (
	DuplexFdd Duplex = iota
	DuplexTdd
)

func (d Duplex) String() string {
	if d == DuplexTdd {
		return "TDD"
	}
	return "FDD"
}

// Args are scheduler-wide parameters
type Args struct {
	FixedDlMcs int
	FixedUlMcs int
}

// SibCfg describes one system information block broadcast on a cell
type SibCfg struct {
	Index       uint32
	Periodicity uint32
}

// CellCfg is the static configuration of one carrier
type CellCfg struct {
	Cc     uint32
	Pci    uint32
	Duplex Duplex
	Sibs   []SibCfg
}

// Direction of a logical channel
type Direction uint8

const (
	DirectionIdle Direction = iota
	DirectionUl
	DirectionDl
	DirectionBoth
)

type BearerCfg struct {
	Direction Direction
	Group     uint32
}

type UeCarrierCfg struct {
	Active bool
	Cc     uint32
}

// UeCfg is the per-UE MAC/PHY configuration shared with the scheduler
type UeCfg struct {
	Carriers   []UeCarrierCfg
	UeBearers  [MaxLcid + 1]BearerCfg
	Duplex     Duplex
	CsiEnabled bool
}

// RntiType tells how a PDSCH/PUSCH grant is addressed
type RntiType uint8

const (
	RntiTypeC RntiType = iota
	RntiTypeTc
	RntiTypeRa
	RntiTypeSi
	RntiTypeP
)

// TbInfo describes one transport block. Tbs is in bits.
type TbInfo struct {
	Tbs uint32
	Mcs uint32
	Ndi bool
	Rv  uint32
}

type Grant struct {
	Rnti     uint16
	RntiType RntiType
	Pid      uint32
	Tb       TbInfo
}

// Pdsch is one DL shared channel allocation. A Data entry with a non-empty
// buffer is a retransmission and is sent as is.
type Pdsch struct {
	Sch  Grant
	Data [MaxTbPerPdsch]*bytes.Buffer
}

// DlSched is the part of the DL result handed to the PHY
type DlSched struct {
	Pdsch []Pdsch
}

// RarInfo describes a detected PRACH the scheduler must answer
type RarInfo struct {
	Cc          uint32
	PreambleIdx uint32
	TempCrnti   uint16
	TaCmd       uint32
	PrachSlot   SlotPoint
}

// Msg3Grant is one RAR grant: the RACH it answers and the Msg3 allocation
type Msg3Grant struct {
	Data    RarInfo
	Msg3Dci message.Msg3Dci
}

type Rar struct {
	Grants []Msg3Grant
}

// DlRes is the scheduler result for one DL slot and carrier. Rar entries match
// RA-RNTI PDSCHs in order, SibIdxs match SI-RNTI PDSCHs in order.
type DlRes struct {
	Phy     DlSched
	Rar     []Rar
	SibIdxs []uint32
}

type Pusch struct {
	Sch Grant
}

type Pucch struct {
	Rnti uint16
}

// UlSched is the scheduler result for one UL slot and carrier
type UlSched struct {
	Pusch []Pusch
	Pucch []Pucch
}

// UeMetrics are the scheduler's per-UE counters
type UeMetrics struct {
	Rnti     uint16
	DlBuffer uint32
	UlBuffer uint32
}

type Metrics struct {
	Ues []UeMetrics
}
