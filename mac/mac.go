// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package mac

import (
	"bytes"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/omec-project/nrmac/context"
	"github.com/omec-project/nrmac/logger"
	"github.com/omec-project/nrmac/message"
	"github.com/omec-project/nrmac/sched"
	"github.com/omec-project/nrmac/taskqueue"
)

// carrier is the MAC state of one configured cell
type carrier struct {
	cfg   sched.CellCfg
	sibs  []context.SibInfo
	rachs atomic.Uint32

	// RAR assembly, at most one in flight
	rarMu  sync.Mutex
	rarPdu message.RarPdu
}

type cellState struct {
	carriers []*carrier
}

// MAC is the gNB MAC of one cell group
type MAC struct {
	sched sched.Scheduler
	rlc   context.Rlc
	rrc   context.Rrc
	pcap  PcapWriter

	args     Args
	shortBsr ShortBsrPolicy
	ues      *context.UeTable
	queue    *taskqueue.Queue
	cells    atomic.Pointer[cellState]
	started  atomic.Bool

	// only touched on the task queue
	pduUl message.UlSchPdu
}

func New(s sched.Scheduler) *MAC {
	return &MAC{
		sched: s,
		ues:   context.NewUeTable(context.DefaultMaxUes),
	}
}

// Init wires the collaborators and starts the MAC. pcap may be nil.
func (m *MAC) Init(args Args, rlc context.Rlc, rrc context.Rrc, pcap PcapWriter) error {
	if m.started.Load() {
		return ErrAlreadyStarted
	}
	if rlc == nil || rrc == nil {
		return fmt.Errorf("MAC init: RLC and RRC are required")
	}

	m.args = args
	m.rlc = rlc
	m.rrc = rrc
	m.pcap = pcap
	m.shortBsr = args.ShortBsr
	if m.shortBsr == nil {
		m.shortBsr = ZeroClearsAllLcgs
	}
	m.ues = context.NewUeTable(args.MaxUes)
	m.queue = taskqueue.New("mac", args.TaskQueueSize)
	m.queue.Start()

	m.started.Store(true)
	logger.MacLog.Infoln("MAC started")
	return nil
}

// Stop blocks new UEs, runs the queued control tasks and stops the scheduler.
// Calling it again is a no-op. It waits for the control queue, so it must not
// be called from a task given to Enqueue.
func (m *MAC) Stop() error {
	if !m.started.CompareAndSwap(true, false) {
		return nil
	}
	m.ues.Stop()
	m.queue.Stop()
	m.sched.Stop()

	var err error
	if m.pcap != nil {
		if err = m.pcap.Close(); err != nil {
			logger.MacLog.Errorf("close pcap failed: %+v", err)
		}
	}
	logger.MacLog.Infoln("MAC stopped")
	return err
}

func (m *MAC) Started() bool {
	return m.started.Load()
}

// Enqueue runs task on the serialized control queue, after every task queued before it.
// It blocks while the queue is full and must not be called from an enqueued task.
func (m *MAC) Enqueue(task func()) error {
	if !m.started.Load() {
		return ErrNotStarted
	}
	return m.queue.Push(task)
}

// CellCfg configures the scheduler and stages the SIBs of every cell
func (m *MAC) CellCfg(cells []sched.CellCfg) error {
	if !m.started.Load() {
		return ErrNotStarted
	}
	for i := range cells {
		if cells[i].Cc != uint32(i) {
			return fmt.Errorf("cell %d has cc=%d, carriers must be listed in cc order", i, cells[i].Cc)
		}
	}
	if err := m.sched.Config(m.args.SchedArgs, cells); err != nil {
		return fmt.Errorf("scheduler config: %w", err)
	}

	state := &cellState{carriers: make([]*carrier, len(cells))}
	for i, cell := range cells {
		c := &carrier{cfg: cell}
		for _, sibCfg := range cell.Sibs {
			sib := context.SibInfo{
				Index:       sibCfg.Index,
				Periodicity: sibCfg.Periodicity,
				Payload:     new(bytes.Buffer),
			}
			if err := m.rrc.ReadPduBcchDlsch(sib.Index, sib.Payload); err != nil {
				logger.MacLog.Errorf("couldn't read SIB %d from RRC: %+v", sib.Index, err)
			}
			logger.MacLog.Infof("including SIB %d into SI scheduling of cc=%d", sib.Index+1, cell.Cc)
			c.sibs = append(c.sibs, sib)
		}
		state.carriers[i] = c
	}
	m.cells.Store(state)
	return nil
}

func (m *MAC) carrier(cc uint32) (*carrier, error) {
	state := m.cells.Load()
	if state == nil || int(cc) >= len(state.carriers) {
		return nil, fmt.Errorf("cc=%d: %w", cc, ErrCellNotFound)
	}
	return state.carriers[cc], nil
}

// UeCfg updates the configuration of a UE in the scheduler and in its context
func (m *MAC) UeCfg(rnti uint16, cfg sched.UeCfg) error {
	if !m.started.Load() {
		return ErrNotStarted
	}
	m.sched.UeCfg(rnti, cfg)
	if ue, ok := m.ues.Load(rnti); ok {
		ue.SetConfig(cfg)
	}
	return nil
}

func (m *MAC) allocUe(cc uint32, cfg sched.UeCfg) uint16 {
	return m.ues.Allocate(func(rnti uint16) *context.UeNr {
		return context.NewUeNr(rnti, cc, cfg, m.rlc)
	})
}

// ReserveRnti creates a UE context and returns its C-RNTI, or InvalidRnti
func (m *MAC) ReserveRnti(cc uint32, cfg sched.UeCfg) uint16 {
	if !m.started.Load() {
		return context.InvalidRnti
	}
	rnti := m.allocUe(cc, cfg)
	if rnti == context.InvalidRnti {
		return rnti
	}
	m.sched.UeCfg(rnti, cfg)
	return rnti
}

// RemoveUe drops the UE from the table and then from the scheduler
func (m *MAC) RemoveUe(rnti uint16) error {
	if _, err := m.ues.Remove(rnti); err != nil {
		logger.MacLog.Errorf("user rnti=0x%x not found", rnti)
		return err
	}
	m.sched.UeRem(rnti)
	return nil
}

func (m *MAC) RlcBufferState(rnti uint16, lcid uint32, txQueue, retxQueue uint32) error {
	m.sched.DlBufferState(rnti, lcid, txQueue, retxQueue)
	return nil
}

func (m *MAC) UlBsr(rnti uint16, lcg uint32, bsr uint32) {
	m.sched.UlBsr(rnti, lcg, bsr)
}

// RachDetected queues the handling of a PRACH detection and returns at once
func (m *MAC) RachDetected(info RachInfo) {
	if !m.started.Load() {
		logger.MacLog.Infof("RACH ignored as MAC is not running: preamble=%d", info.Preamble)
		return
	}
	if err := m.queue.TryPush(func() { m.handleRach(info) }); err != nil {
		logger.MacLog.Errorf("RACH dropped: slot=%d preamble=%d: %+v", info.SlotIndex, info.Preamble, err)
	}
}

func (m *MAC) rachUeCfg(c *carrier) sched.UeCfg {
	cfg := sched.UeCfg{
		Carriers: []sched.UeCarrierCfg{{Active: true, Cc: c.cfg.Cc}},
		Duplex:   c.cfg.Duplex,
		// CSI stays off until random access is complete
		CsiEnabled: false,
	}
	cfg.UeBearers[0].Direction = sched.DirectionBoth
	return cfg
}

func (m *MAC) handleRach(info RachInfo) {
	c, err := m.carrier(info.Cc)
	if err != nil {
		logger.MacLog.Errorf("RACH on unknown carrier: %+v", err)
		return
	}

	uecfg := m.rachUeCfg(c)
	rnti := m.allocUe(info.Cc, uecfg)
	c.rachs.Add(1)
	if rnti == context.InvalidRnti {
		logger.MacLog.Warnf("RACH: slot=%d, cc=%d, preamble=%d ignored, no C-RNTI available",
			info.SlotIndex, info.Cc, info.Preamble)
		return
	}

	rar := sched.RarInfo{
		Cc:          info.Cc,
		PreambleIdx: info.Preamble,
		TempCrnti:   rnti,
		TaCmd:       info.TimeAdv,
		PrachSlot:   sched.SlotPoint(info.SlotIndex),
	}
	if err := m.sched.DlRachInfo(rar, uecfg); err != nil {
		logger.MacLog.Errorf("scheduler rejected RACH for temp_crnti=0x%x: %+v", rnti, err)
	}
	if err := m.rrc.AddUser(rnti, uecfg); err != nil {
		logger.MacLog.Errorf("RRC add user rnti=0x%x failed: %+v", rnti, err)
	}

	logger.MacLog.Infof("RACH: slot=%d, cc=%d, preamble=%d, offset=%d, temp_crnti=0x%x",
		info.SlotIndex, info.Cc, info.Preamble, info.TimeAdv, rnti)
}
