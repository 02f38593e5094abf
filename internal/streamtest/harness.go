// SPDX-License-Identifier: EPL-2.0

package streamtest

import "github.com/ik5/fxchain/stream"

// Harness is a test helper that clocks a single stage (or chain) while
// presenting queued input frames and collecting accepted outputs. The valid
// and ready patterns default to "always", and can be overridden to exercise
// stalls and bubbles.
type Harness struct {
	Stage stream.Stage

	// OutReady decides the downstream can-accept line per tick. Nil means
	// always ready.
	OutReady func(tick int) bool

	// InValid decides whether a queued frame is presented on a tick. Nil
	// means present whenever a frame remains.
	InValid func(tick int) bool

	// Collected holds every output frame accepted so far, in order.
	Collected []stream.Frame

	tick    int
	pending []stream.Frame
}

// NewHarness wraps a stage with default (always-on) handshake patterns.
func NewHarness(s stream.Stage) *Harness {
	return &Harness{Stage: s}
}

// Queue appends frames to the input backlog.
func (h *Harness) Queue(frames ...stream.Frame) {
	h.pending = append(h.pending, frames...)
}

// Tick returns the number of ticks elapsed.
func (h *Harness) Tick() int { return h.tick }

// Step advances one tick, honouring the pre-edge handshake signals.
func (h *Harness) Step() {
	var in stream.Frame
	valid := false
	if len(h.pending) > 0 && (h.InValid == nil || h.InValid(h.tick)) {
		in = h.pending[0]
		valid = true
	}
	ready := h.OutReady == nil || h.OutReady(h.tick)

	accept := h.Stage.InputReady()
	out, present := h.Stage.Output()

	h.Stage.Tick(in, valid, ready)

	if valid && accept {
		h.pending = h.pending[1:]
	}
	if present && ready {
		h.Collected = append(h.Collected, out)
	}
	h.tick++
}

// Run steps until want outputs are collected or maxTicks elapse; it reports
// whether the target was reached.
func (h *Harness) Run(want, maxTicks int) bool {
	for t := 0; t < maxTicks; t++ {
		if len(h.Collected) >= want {
			return true
		}
		h.Step()
	}
	return len(h.Collected) >= want
}

// Interleave builds an L,R,L,R,... frame sequence from per-channel samples.
// Both slices must have equal length.
func Interleave(left, right []int32) []stream.Frame {
	frames := make([]stream.Frame, 0, len(left)*2)
	for i := range left {
		frames = append(frames,
			stream.Frame{Sample: left[i], Right: false},
			stream.Frame{Sample: right[i], Right: true},
		)
	}
	return frames
}
