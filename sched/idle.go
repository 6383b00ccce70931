// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package sched

import "sync"

// Idle is a Scheduler that accepts configuration and reports but never
// allocates resources. It lets the MAC run without a scheduling policy plugged in.
type Idle struct {
	mu    sync.Mutex
	ues   map[uint16]UeCfg
	ulBuf map[uint16]*[MaxLcGroup + 1]uint32
	dlBuf map[uint16]*[MaxLcid + 1]uint32
	dlRes DlRes
	ulRes UlSched
	cells []CellCfg
}

func NewIdle() *Idle {
	return &Idle{
		ues:   make(map[uint16]UeCfg),
		ulBuf: make(map[uint16]*[MaxLcGroup + 1]uint32),
		dlBuf: make(map[uint16]*[MaxLcid + 1]uint32),
	}
}

func (s *Idle) Config(args Args, cells []CellCfg) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cells = append(s.cells[:0], cells...)
	return nil
}

func (s *Idle) UeCfg(rnti uint16, cfg UeCfg) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ues[rnti]; !ok {
		s.ulBuf[rnti] = new([MaxLcGroup + 1]uint32)
		s.dlBuf[rnti] = new([MaxLcid + 1]uint32)
	}
	s.ues[rnti] = cfg
}

func (s *Idle) UeRem(rnti uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ues, rnti)
	delete(s.ulBuf, rnti)
	delete(s.dlBuf, rnti)
}

func (s *Idle) SlotIndication(slot SlotPoint) {}

func (s *Idle) GetDlSched(slot SlotPoint, cc uint32) (*DlRes, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dlRes = DlRes{}
	return &s.dlRes, nil
}

func (s *Idle) GetUlSched(slot SlotPoint, cc uint32) (*UlSched, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ulRes = UlSched{}
	return &s.ulRes, nil
}

func (s *Idle) UlBsr(rnti uint16, lcg uint32, bsr uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if buf, ok := s.ulBuf[rnti]; ok && lcg <= MaxLcGroup {
		buf[lcg] = bsr
	}
}

func (s *Idle) UlSrInfo(rnti uint16) {}

func (s *Idle) DlAckInfo(rnti uint16, cc uint32, pid uint32, tbIdx uint32, ack bool) {}

func (s *Idle) UlCrcInfo(rnti uint16, cc uint32, pid uint32, crc bool) {}

func (s *Idle) DlRachInfo(rar RarInfo, cfg UeCfg) error {
	s.UeCfg(rar.TempCrnti, cfg)
	return nil
}

func (s *Idle) DlBufferState(rnti uint16, lcid uint32, txQueue uint32, retxQueue uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if buf, ok := s.dlBuf[rnti]; ok && lcid <= MaxLcid {
		buf[lcid] = txQueue + retxQueue
	}
}

func (s *Idle) GetMetrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	var m Metrics
	for rnti := range s.ues {
		ue := UeMetrics{Rnti: rnti}
		for _, b := range s.dlBuf[rnti] {
			ue.DlBuffer += b
		}
		for _, b := range s.ulBuf[rnti] {
			ue.UlBuffer += b
		}
		m.Ues = append(m.Ues, ue)
	}
	return m
}

func (s *Idle) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.ues)
	clear(s.ulBuf)
	clear(s.dlBuf)
}
