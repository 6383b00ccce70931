// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package context

// UeMetrics is a snapshot of the MAC counters of one UE
type UeMetrics struct {
	Rnti      uint16
	Cc        uint32
	TxPkts    uint32
	TxErrors  uint32
	TxBytes   uint64
	RxPkts    uint32
	RxErrors  uint32
	RxBytes   uint64
	DlBuffer  uint32
	UlBuffer  uint32
	DlCqi     float32
	DlMcs     float32
	UlMcs     float32
	PuschSinr float32
	PucchSinr float32
	Phr       float32
	NofSlots  uint32

	dlCqiSamples     uint32
	dlMcsSamples     uint32
	ulMcsSamples     uint32
	puschSinrSamples uint32
	pucchSinrSamples uint32
	phrSamples       uint32
}

// cumulative moving average
func cma(avg float32, samples *uint32, value float32) float32 {
	*samples++
	return avg + (value-avg)/float32(*samples)
}
