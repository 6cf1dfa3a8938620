// ABOUTME: Heap owning the allocation set and the mark/finalize/sweep cycle
// ABOUTME: Threshold-triggered collection with tunable growth and zerolog output

package gc

import (
	"time"

	"github.com/rs/zerolog"
)

// Heap owns a set of managed allocations and decides when to collect them.
// An allocation is live iff it is reachable from some allocation with a
// positive root count. Heap is not safe for concurrent use.
type Heap struct {
	tuning    Tuning
	log       zerolog.Logger
	objs      []managed
	lastID    uint64
	threshold uint64

	liveBytes   uint64
	allocations uint64
	collections uint64
	freed       uint64
	finalizers  uint64
	closed      bool
}

// Stats is a point-in-time summary of a heap.
type Stats struct {
	Live           int    // live allocations
	LiveBytes      uint64 // payload bytes currently allocated
	Allocations    uint64 // total allocations ever made
	Collections    uint64 // collection passes run
	Freed          uint64 // allocations reclaimed
	FinalizersRun  uint64 // finalize glue invocations on dead allocations
	ThresholdBytes uint64 // current auto-collection trigger
}

// Pass reports the outcome of one collection pass.
type Pass struct {
	Live       int
	Freed      int
	FreedBytes uint64
	Duration   time.Duration
}

var defaultHeap = NewHeap()

// Default returns the process-wide default heap used by New.
func Default() *Heap {
	return defaultHeap
}

// NewHeap returns an empty heap with default tuning and no logging.
func NewHeap() *Heap {
	return NewHeapWith(DefaultTuning())
}

// NewHeapWith returns an empty heap with the given tuning.
func NewHeapWith(t Tuning) *Heap {
	return &Heap{
		tuning:    t,
		log:       zerolog.Nop(),
		threshold: t.ThresholdBytes,
	}
}

// SetLogger directs collection-pass logging to l. The default discards.
func (h *Heap) SetLogger(l zerolog.Logger) {
	h.log = l
}

// Stats returns a snapshot of the heap's counters.
func (h *Heap) Stats() Stats {
	return Stats{
		Live:           len(h.objs),
		LiveBytes:      h.liveBytes,
		Allocations:    h.allocations,
		Collections:    h.collections,
		Freed:          h.freed,
		FinalizersRun:  h.finalizers,
		ThresholdBytes: h.threshold,
	}
}

// Object describes one live allocation for inspection tooling.
type Object struct {
	ID    uint64
	Type  string
	Size  uint64
	Roots uint32
	Refs  []uint64
}

// Objects describes every live allocation, in allocation order.
func (h *Heap) Objects() []Object {
	out := make([]Object, 0, len(h.objs))
	for _, m := range h.objs {
		hd := m.hdr()
		out = append(out, Object{
			ID:    hd.id,
			Type:  hd.typ,
			Size:  hd.size,
			Roots: hd.roots,
			Refs:  m.refs(),
		})
	}
	return out
}

// Collect runs one full collection pass: mark from every rooted allocation,
// finalize the unmarked dead set, re-mark to honor anything a finalizer
// resurrected, then sweep what is still unmarked.
func (h *Heap) Collect() Pass {
	start := time.Now()
	h.collections++

	h.markFromRoots()

	var dead []managed
	for _, m := range h.objs {
		if !m.hdr().marked {
			dead = append(dead, m)
		}
	}

	if len(dead) > 0 {
		for _, m := range dead {
			if m.finalizeOnce() {
				h.finalizers++
			}
		}
		// Finalizers may have rooted previously dead allocations; only
		// what is unreachable after a fresh mark may be swept.
		h.markFromRoots()
	}

	var freedBytes uint64
	kept := h.objs[:0]
	freed := 0
	for _, m := range h.objs {
		if m.hdr().marked {
			kept = append(kept, m)
			continue
		}
		freed++
		freedBytes += m.hdr().size
	}
	for i := len(kept); i < len(h.objs); i++ {
		h.objs[i] = nil
	}
	h.objs = kept

	h.freed += uint64(freed)
	h.liveBytes -= freedBytes
	h.adjustThreshold()

	pass := Pass{
		Live:       len(h.objs),
		Freed:      freed,
		FreedBytes: freedBytes,
		Duration:   time.Since(start),
	}
	h.log.Debug().
		Int("live", pass.Live).
		Int("freed", pass.Freed).
		Uint64("freed_bytes", pass.FreedBytes).
		Uint64("threshold_bytes", h.threshold).
		Dur("took", pass.Duration).
		Msg("collection pass")
	return pass
}

// Close runs a final collection pass unless the heap is tuned to leak on
// shutdown. Allocations still rooted at Close are leaked either way;
// finalizers are not guaranteed to run at shutdown.
func (h *Heap) Close() {
	if h.closed {
		return
	}
	h.closed = true
	if !h.tuning.LeakOnShutdown {
		h.Collect()
	}
}

func (h *Heap) markFromRoots() {
	for _, m := range h.objs {
		m.hdr().marked = false
	}
	for _, m := range h.objs {
		if m.hdr().roots > 0 {
			m.mark()
		}
	}
}

// adjustThreshold grows the trigger so the next pass is not immediate when
// most of the current threshold is still occupied by live data.
func (h *Heap) adjustThreshold() {
	if float64(h.liveBytes) > h.tuning.UsedSpaceRatio*float64(h.threshold) {
		h.threshold = uint64(float64(h.liveBytes) / h.tuning.UsedSpaceRatio)
	}
}

func (h *Heap) beforeAlloc(size uint64) {
	if h.liveBytes+size > h.threshold {
		h.Collect()
	}
}

func (h *Heap) nextID() uint64 {
	h.lastID++
	return h.lastID
}

func (h *Heap) adopt(m managed) {
	h.objs = append(h.objs, m)
	h.allocations++
	h.liveBytes += m.hdr().size
}
