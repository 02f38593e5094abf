// SPDX-License-Identifier: EPL-2.0

package stream

// Frame is one sample crossing a stage boundary together with its channel
// marker. Sample holds a sign-extended two's-complement value of the stage's
// configured data width. Right is false for the left channel, true for the
// right channel of the interleaved L,R,L,R,... stream.
type Frame struct {
	Sample int32
	Right  bool
}

// Stage is the shared channel contract every stream transformer implements,
// instantiated once on the input side and once on the output side.
//
// A stage advances one clock edge per Tick call. Signals read before the call
// (InputReady, Output) are the stage's combinational outputs for that tick;
// the arguments to Tick are what the surrounding world drives during the same
// tick. A transfer happens on the input side iff inValid and InputReady both
// held, and on the output side iff Output reported a pending frame and
// outReady held. Output data never changes between ticks while pending and
// not accepted.
type Stage interface {
	// InputReady reports whether the stage can accept an input frame on the
	// current tick.
	InputReady() bool

	// Output returns the pending output frame, if any. The frame stays
	// stable until a tick consumes it.
	Output() (Frame, bool)

	// Tick advances one clock edge. in is the frame the upstream producer
	// drives, inValid its data-present signal, outReady the downstream
	// consumer's can-accept signal.
	Tick(in Frame, inValid, outReady bool)

	// Reset models the reset line held for one tick: all state returns to
	// its initial value and any pending output is discarded.
	Reset()
}

// maxSample returns the most positive value representable in width bits.
func maxSample(width int) int32 {
	return int32(1)<<(width-1) - 1
}

// minSample returns the most negative value representable in width bits.
func minSample(width int) int32 {
	return -(int32(1) << (width - 1))
}
