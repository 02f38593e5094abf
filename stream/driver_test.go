// SPDX-License-Identifier: EPL-2.0

package stream

// Test-local single-stage driver. A copy of the internal/streamtest harness
// lives here to avoid an import cycle with that package.

// driver clocks one Stage, presenting queued input frames whenever the
// inValid pattern allows and collecting every output frame accepted under
// the outReady pattern.
type driver struct {
	stage    Stage
	outReady func(tick int) bool // nil: always ready
	inValid  func(tick int) bool // nil: valid while input remains

	tick      int
	pending   []Frame
	collected []Frame
}

func newDriver(s Stage) *driver {
	return &driver{stage: s}
}

func (d *driver) queue(frames ...Frame) {
	d.pending = append(d.pending, frames...)
}

// step advances one tick, honouring the pre-edge handshake signals.
func (d *driver) step() {
	var in Frame
	valid := false
	if len(d.pending) > 0 && (d.inValid == nil || d.inValid(d.tick)) {
		in = d.pending[0]
		valid = true
	}
	ready := d.outReady == nil || d.outReady(d.tick)

	accept := d.stage.InputReady()
	out, present := d.stage.Output()

	d.stage.Tick(in, valid, ready)

	if valid && accept {
		d.pending = d.pending[1:]
	}
	if present && ready {
		d.collected = append(d.collected, out)
	}
	d.tick++
}

// run steps until want outputs are collected or maxTicks elapse; it reports
// whether the target was reached.
func (d *driver) run(want, maxTicks int) bool {
	for it := 0; it < maxTicks; it++ {
		if len(d.collected) >= want {
			return true
		}
		d.step()
	}
	return len(d.collected) >= want
}

// interleave builds an L,R,L,R,... frame sequence from per-channel samples.
// Both slices must have equal length.
func interleave(left, right []int32) []Frame {
	frames := make([]Frame, 0, len(left)*2)
	for i := range left {
		frames = append(frames,
			Frame{Sample: left[i], Right: false},
			Frame{Sample: right[i], Right: true},
		)
	}
	return frames
}
