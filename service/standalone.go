// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"bytes"
	"sync"

	"github.com/omec-project/nrmac/logger"
	"github.com/omec-project/nrmac/sched"
)

// maximum number of SDUs held per logical channel before the oldest is dropped
const loopbackDepth = 64

type lcKey struct {
	rnti uint16
	lcid uint32
}

// BufferStateSink receives DL buffer occupancy updates
type BufferStateSink interface {
	RlcBufferState(rnti uint16, lcid uint32, txQueue, retxQueue uint32) error
}

// loopbackRlc sends every UL SDU back to the UE on the same logical channel
type loopbackRlc struct {
	mu     sync.Mutex
	queues map[lcKey][][]byte
	sink   BufferStateSink
}

func newLoopbackRlc() *loopbackRlc {
	return &loopbackRlc{queues: make(map[lcKey][][]byte)}
}

func (r *loopbackRlc) setSink(sink BufferStateSink) {
	r.mu.Lock()
	r.sink = sink
	r.mu.Unlock()
}

func (r *loopbackRlc) WritePDU(rnti uint16, lcid uint32, sdu []byte) {
	key := lcKey{rnti: rnti, lcid: lcid}
	r.mu.Lock()
	q := r.queues[key]
	if len(q) == loopbackDepth {
		logger.UtilLog.Warnf("loopback queue full, dropping oldest SDU: rnti=0x%x lcid=%d", rnti, lcid)
		q = q[1:]
	}
	q = append(q, bytes.Clone(sdu))
	r.queues[key] = q
	pending := queuedBytes(q)
	sink := r.sink
	r.mu.Unlock()

	logger.UtilLog.Debugf("loopback UL SDU: rnti=0x%x lcid=%d len=%d", rnti, lcid, len(sdu))
	if sink != nil {
		if err := sink.RlcBufferState(rnti, lcid, pending, 0); err != nil {
			logger.UtilLog.Warnf("buffer state update failed: %+v", err)
		}
	}
}

func (r *loopbackRlc) ReadPDU(rnti uint16, lcid uint32, payload []byte) int {
	key := lcKey{rnti: rnti, lcid: lcid}
	r.mu.Lock()
	defer r.mu.Unlock()

	q := r.queues[key]
	if len(q) == 0 || len(q[0]) > len(payload) {
		return 0
	}
	n := copy(payload, q[0])
	if len(q) == 1 {
		delete(r.queues, key)
	} else {
		r.queues[key] = q[1:]
	}
	return n
}

// remove drops everything queued for rnti
func (r *loopbackRlc) remove(rnti uint16) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.queues {
		if key.rnti == rnti {
			delete(r.queues, key)
		}
	}
}

func queuedBytes(q [][]byte) uint32 {
	var n uint32
	for _, sdu := range q {
		n += uint32(len(sdu))
	}
	return n
}

// standaloneRrc keeps the admitted users and serves placeholder SIB payloads
type standaloneRrc struct {
	mu    sync.Mutex
	users map[uint16]sched.UeCfg
	rlc   *loopbackRlc
}

func newStandaloneRrc(rlc *loopbackRlc) *standaloneRrc {
	return &standaloneRrc{
		users: make(map[uint16]sched.UeCfg),
		rlc:   rlc,
	}
}

func (r *standaloneRrc) UpdateUser(prevRnti, newRnti uint16) {
	r.mu.Lock()
	delete(r.users, prevRnti)
	r.mu.Unlock()
	if r.rlc != nil {
		r.rlc.remove(prevRnti)
	}
	logger.UtilLog.Infof("user 0x%x resumed as 0x%x", prevRnti, newRnti)
}

func (r *standaloneRrc) AddUser(rnti uint16, cfg sched.UeCfg) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[rnti] = cfg
	logger.UtilLog.Infof("user 0x%x added", rnti)
	return nil
}

func (r *standaloneRrc) SetActivityUser(rnti uint16) {
	logger.UtilLog.Debugf("user 0x%x active", rnti)
}

func (r *standaloneRrc) ReadPduBcchDlsch(sibIndex uint32, payload *bytes.Buffer) error {
	// placeholder payload, all zero except the index
	payload.Reset()
	payload.Write([]byte{byte(sibIndex), 0, 0, 0, 0, 0, 0, 0})
	return nil
}

func (r *standaloneRrc) numUsers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}
