// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package context

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/omec-project/nrmac/logger"
)

// UeTable is the bounded RNTI-indexed set of UE contexts. The real-time path
// only takes the read lock; inserts and removals take the write lock briefly.
type UeTable struct {
	mu      sync.RWMutex
	ues     map[uint16]*UeNr
	maxUes  int
	counter atomic.Uint32
	stopped atomic.Bool
}

func NewUeTable(maxUes int) *UeTable {
	if maxUes <= 0 {
		maxUes = DefaultMaxUes
	}
	if maxUes > RntiPoolSize {
		maxUes = RntiPoolSize
	}
	return &UeTable{
		ues:    make(map[uint16]*UeNr, maxUes),
		maxUes: maxUes,
	}
}

func (t *UeTable) nextCandidate() uint16 {
	return FirstRnti + uint16((t.counter.Add(1)-1)%RntiPoolSize)
}

// validateShared checks a candidate under the read lock
func (t *UeTable) validateShared(rnti uint16) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.validateLocked(rnti)
}

func (t *UeTable) validateLocked(rnti uint16) error {
	if t.stopped.Load() {
		return errStopped
	}
	if len(t.ues) >= t.maxUes {
		return errFull
	}
	if _, ok := t.ues[rnti]; ok {
		return errRntiUsed
	}
	return nil
}

// validateAndCommit re-checks the candidate under the write lock and inserts ue
func (t *UeTable) validateAndCommit(rnti uint16, ue *UeNr) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.validateLocked(rnti); err != nil {
		return err
	}
	t.ues[rnti] = ue
	return nil
}

// Allocate picks a free C-RNTI, builds the UE context for it outside of any
// lock and publishes it. It returns InvalidRnti if the table is stopped or full.
func (t *UeTable) Allocate(build func(rnti uint16) *UeNr) uint16 {
	for {
		rnti := t.nextCandidate()
		if err := t.validateShared(rnti); err != nil {
			if err == errRntiUsed {
				continue
			}
			logger.CtxLog.Warnf("UE allocation rejected: %+v", err)
			return InvalidRnti
		}

		ue := build(rnti)
		if ue == nil {
			logger.CtxLog.Errorf("UE context for rnti=0x%x could not be built", rnti)
			return InvalidRnti
		}

		err := t.validateAndCommit(rnti, ue)
		switch err {
		case nil:
			return rnti
		case errRntiUsed:
			logger.CtxLog.Debugf("rnti=0x%x taken during allocation, retrying", rnti)
			continue
		default:
			logger.CtxLog.Warnf("UE allocation rejected: %+v", err)
			return InvalidRnti
		}
	}
}

// Remove deletes the UE and returns it. Informing other layers is left to the
// caller, after the lock has been released.
func (t *UeTable) Remove(rnti uint16) (*UeNr, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ue, ok := t.ues[rnti]
	if !ok || !ue.IsActive() {
		return nil, fmt.Errorf("remove rnti=0x%x: %w", rnti, ErrUeNotFound)
	}
	ue.SetActive(false)
	delete(t.ues, rnti)
	return ue, nil
}

// Load returns the UE context of rnti, if any
func (t *UeTable) Load(rnti uint16) (*UeNr, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ue, ok := t.ues[rnti]
	return ue, ok
}

// LoadActive is Load restricted to active UEs
func (t *UeTable) LoadActive(rnti uint16) (*UeNr, bool) {
	ue, ok := t.Load(rnti)
	if !ok || !ue.IsActive() {
		return nil, false
	}
	return ue, true
}

// ForEach calls f on a snapshot of the table so f may block or call back into
// the table.
func (t *UeTable) ForEach(f func(ue *UeNr)) {
	t.mu.RLock()
	ues := make([]*UeNr, 0, len(t.ues))
	for _, ue := range t.ues {
		ues = append(ues, ue)
	}
	t.mu.RUnlock()

	for _, ue := range ues {
		f(ue)
	}
}

func (t *UeTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.ues)
}

// Stop rejects every later allocation
func (t *UeTable) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped.Store(true)
}

func (t *UeTable) Stopped() bool {
	return t.stopped.Load()
}
