// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

// Package pcap writes MAC PDUs in the Wireshark mac-nr-over-UDP framing so
// captures can be opened with the "mac-nr" heuristic dissector enabled.
package pcap

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"go.uber.org/multierr"

	"github.com/omec-project/nrmac/logger"
	"github.com/omec-project/nrmac/sched"
	"github.com/omec-project/nrmac/taskqueue"
)

const (
	// DLT_USER2, to be decoded as UDP
	linkTypeMacNrUdp layers.LinkType = 149
	snapLen                          = 65535

	udpSrcPort = 0xdead
	udpDstPort = 0xbeef

	macNrStartString = "mac-nr"

	defaultQueueSize = 4096
)

// mac-nr context values
const (
	radioTypeFdd = 1
	radioTypeTdd = 2

	directionUl = 0
	directionDl = 1

	rntiTypeRa = 2
	rntiTypeC  = 3

	tagRnti      = 0x02
	tagUeID      = 0x03
	tagHarqID    = 0x06
	tagFrameSlot = 0x07
	tagPayload   = 0x01
)

type frameCtx struct {
	direction uint8
	rntiType  uint8
	rnti      uint16
	ueID      uint16
	harqID    uint8
	slot      uint32
}

// Writer appends MAC PDUs to a pcap stream. Write calls copy the PDU and hand
// it to a background goroutine, so they never wait for file I/O; records that
// do not fit in the queue are dropped. It is safe for concurrent use.
type Writer struct {
	queue *taskqueue.Queue

	// owned by the queue consumer
	bufw          *bufio.Writer
	w             *pcapgo.Writer
	serBuf        gopacket.SerializeBuffer
	writeErr      error
	radioType     uint8
	slotsPerFrame uint32

	mu     sync.Mutex
	file   io.Closer
	closed bool
	now    func() time.Time
}

// Open creates filename and writes the pcap file header
func Open(filename string, duplex sched.Duplex, slotsPerFrame uint32) (*Writer, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("create pcap file: %w", err)
	}
	w, err := NewWriter(f, duplex, slotsPerFrame)
	if err != nil {
		return nil, multierr.Append(err, f.Close())
	}
	w.file = f
	logger.PcapLog.Infof("writing MAC PDUs to %s", filename)
	return w, nil
}

// NewWriter writes the pcap file header to out and returns a Writer on it
func NewWriter(out io.Writer, duplex sched.Duplex, slotsPerFrame uint32) (*Writer, error) {
	return newWriter(out, duplex, slotsPerFrame, defaultQueueSize)
}

func newWriter(out io.Writer, duplex sched.Duplex, slotsPerFrame uint32, queueSize int) (*Writer, error) {
	if slotsPerFrame == 0 {
		slotsPerFrame = 10
	}
	w := &Writer{
		queue:         taskqueue.New("pcap", queueSize),
		bufw:          bufio.NewWriter(out),
		radioType:     radioTypeFdd,
		slotsPerFrame: slotsPerFrame,
		serBuf:        gopacket.NewSerializeBuffer(),
		now:           time.Now,
	}
	if duplex == sched.DuplexTdd {
		w.radioType = radioTypeTdd
	}
	w.w = pcapgo.NewWriter(w.bufw)
	if err := w.w.WriteFileHeader(snapLen, linkTypeMacNrUdp); err != nil {
		return nil, fmt.Errorf("write pcap header: %w", err)
	}
	w.queue.Start()
	return w, nil
}

func (w *Writer) WriteDlCrnti(pdu []byte, rnti uint16, pid uint32, slot uint32) error {
	return w.enqueue(frameCtx{direction: directionDl, rntiType: rntiTypeC, rnti: rnti, ueID: rnti, harqID: uint8(pid), slot: slot}, pdu)
}

func (w *Writer) WriteUlCrnti(pdu []byte, rnti uint16, pid uint32, slot uint32) error {
	return w.enqueue(frameCtx{direction: directionUl, rntiType: rntiTypeC, rnti: rnti, ueID: rnti, harqID: uint8(pid), slot: slot}, pdu)
}

func (w *Writer) WriteDlRar(pdu []byte, raRnti uint16, slot uint32) error {
	return w.enqueue(frameCtx{direction: directionDl, rntiType: rntiTypeRa, rnti: raRnti, slot: slot}, pdu)
}

// Dropped returns the number of records lost because the write queue was full
func (w *Writer) Dropped() uint64 {
	return w.queue.Dropped()
}

func (w *Writer) encodeContext(ctx frameCtx, pdu []byte) []byte {
	b := make([]byte, 0, len(macNrStartString)+20+len(pdu))
	b = append(b, macNrStartString...)
	b = append(b, w.radioType, ctx.direction, ctx.rntiType)
	b = append(b, tagRnti)
	b = binary.BigEndian.AppendUint16(b, ctx.rnti)
	if ctx.rntiType == rntiTypeC {
		b = append(b, tagUeID)
		b = binary.BigEndian.AppendUint16(b, ctx.ueID)
		b = append(b, tagHarqID, ctx.harqID)
	}
	b = append(b, tagFrameSlot)
	b = binary.BigEndian.AppendUint16(b, uint16(ctx.slot/w.slotsPerFrame%1024))
	b = binary.BigEndian.AppendUint16(b, uint16(ctx.slot%w.slotsPerFrame))
	b = append(b, tagPayload)
	return append(b, pdu...)
}

// enqueue encodes the frame on the caller, the PDU buffer may be reused once it returns
func (w *Writer) enqueue(ctx frameCtx, pdu []byte) error {
	payload := w.encodeContext(ctx, pdu)
	ts := w.now()
	if err := w.queue.TryPush(func() { w.write(ts, payload) }); err != nil {
		return fmt.Errorf("pcap record dropped: %w", err)
	}
	return nil
}

func (w *Writer) write(ts time.Time, payload []byte) {
	if w.writeErr != nil {
		return
	}
	udp := &layers.UDP{SrcPort: udpSrcPort, DstPort: udpDstPort}
	opts := gopacket.SerializeOptions{FixLengths: true}
	if err := gopacket.SerializeLayers(w.serBuf, opts, udp, gopacket.Payload(payload)); err != nil {
		logger.PcapLog.Errorf("serialize mac-nr frame: %+v", err)
		return
	}
	data := w.serBuf.Bytes()
	ci := gopacket.CaptureInfo{
		Timestamp:     ts,
		CaptureLength: len(data),
		Length:        len(data),
	}
	if err := w.w.WritePacket(ci, data); err != nil {
		logger.PcapLog.Errorf("write pcap record: %+v", err)
		w.writeErr = fmt.Errorf("write pcap record: %w", err)
	}
}

// Close writes the queued records, flushes and closes the file, if any
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true

	w.queue.Stop()
	err := w.writeErr
	if err == nil {
		err = w.bufw.Flush()
	}
	if w.file != nil {
		err = multierr.Append(err, w.file.Close())
	}
	if n := w.queue.Dropped(); n > 0 {
		logger.PcapLog.Warnf("%d records dropped", n)
	}
	logger.PcapLog.Infoln("pcap writer closed")
	return err
}
