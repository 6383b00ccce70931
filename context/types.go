// SPDX-FileCopyrightText: 2024 Intel Corporation
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0

package context

import (
	"bytes"
	"errors"

	"github.com/omec-project/nrmac/sched"
)

const (
	// FirstRnti is the first C-RNTI handed out, values below are reserved
	FirstRnti uint16 = 0x46
	// RntiPoolSize is the number of C-RNTIs the allocation counter rotates through
	RntiPoolSize = 60000
	// InvalidRnti is returned when no C-RNTI could be allocated
	InvalidRnti uint16 = 0
	// DefaultMaxUes is the UE table capacity when none is configured
	DefaultMaxUes = 64
)

var (
	ErrUeNotFound = errors.New("UE not found")

	errStopped  = errors.New("MAC is being shut down")
	errFull     = errors.New("UE table full")
	errRntiUsed = errors.New("RNTI in use")
)

// Rlc is the MAC's view of the RLC entities of all UEs
type Rlc interface {
	// WritePDU delivers a UL MAC SDU. sdu is only valid for the duration of the call.
	WritePDU(rnti uint16, lcid uint32, sdu []byte)
	// ReadPDU fills payload with the next RLC PDU and returns its size, 0 if there is nothing to send.
	ReadPDU(rnti uint16, lcid uint32, payload []byte) int
}

// Rrc is the MAC's view of the RRC
type Rrc interface {
	UpdateUser(prevRnti, newRnti uint16)
	AddUser(rnti uint16, cfg sched.UeCfg) error
	SetActivityUser(rnti uint16)
	ReadPduBcchDlsch(sibIndex uint32, payload *bytes.Buffer) error
}

// SibInfo is a system information block staged for broadcast on a cell
type SibInfo struct {
	Index       uint32
	Periodicity uint32
	Payload     *bytes.Buffer
}
