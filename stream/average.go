// SPDX-License-Identifier: EPL-2.0

package stream

import "fmt"

// AverageConfig describes an Average stage. Order is the window length per
// channel and must be a positive even integer; a power of two keeps the
// division exact and cheap.
type AverageConfig struct {
	DataWidth int
	Order     int
}

func (c AverageConfig) validate() error {
	if c.DataWidth < 1 || c.DataWidth > 32 {
		return fmt.Errorf("average: width %d: %w", c.DataWidth, ErrInvalidDataWidth)
	}
	if c.Order <= 0 || c.Order%2 != 0 {
		return fmt.Errorf("average: order %d: %w", c.Order, ErrInvalidOrder)
	}
	return nil
}

// Average computes a running mean over the last Order samples of each
// channel, adding one tick of latency. Both channels share a single delay
// line of depth 2*Order: with a strictly interleaved stream the sample
// evicted when a left sample enters is itself the left sample Order steps
// prior, and likewise for right, so one incremental subtraction per channel
// keeps each sum exact without a second buffer.
//
// The sums keep accumulating whether or not filtering is enabled; the enable
// line only selects, per output frame, between the windowed mean and the raw
// one-tick-delayed sample. The line is latched when an output transfer
// completes, never mid-frame, so toggling it can neither tear a sample nor
// require a warm-up. The first Order outputs after reset average against the
// zeroed history, a documented startup transient.
type Average struct {
	cfg AverageConfig

	window []int32
	head   int // oldest slot, also the next write position
	sumL   int64
	sumR   int64

	enableLine  bool
	enableLatch bool

	out     Frame
	outFull bool
}

// NewAverage validates cfg and returns an Average with a zeroed window and
// filtering disabled until SetEnabled is raised.
func NewAverage(cfg AverageConfig) (*Average, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Average{
		cfg:    cfg,
		window: make([]int32, 2*cfg.Order),
	}, nil
}

// SetEnabled drives the asynchronous filter-enable line. The stage latches
// it at output-transfer boundaries only.
func (a *Average) SetEnabled(on bool) { a.enableLine = on }

// SumLeft returns the current left-channel running sum.
func (a *Average) SumLeft() int64 { return a.sumL }

// SumRight returns the current right-channel running sum.
func (a *Average) SumRight() int64 { return a.sumR }

func (a *Average) InputReady() bool {
	return !a.outFull
}

func (a *Average) Output() (Frame, bool) {
	return a.out, a.outFull
}

func (a *Average) Tick(in Frame, inValid, outReady bool) {
	inXfer := inValid && a.InputReady()

	if a.outFull && outReady {
		a.outFull = false
		// Output boundary: the only point where the enable line is sampled.
		a.enableLatch = a.enableLine
	}

	if inXfer {
		evicted := a.window[a.head]
		if in.Right {
			a.sumR += int64(in.Sample) - int64(evicted)
		} else {
			a.sumL += int64(in.Sample) - int64(evicted)
		}
		a.window[a.head] = in.Sample
		a.head++
		if a.head == len(a.window) {
			a.head = 0
		}

		a.out = Frame{Sample: a.selected(in), Right: in.Right}
		a.outFull = true
	}
}

func (a *Average) Reset() {
	clear(a.window)
	a.head = 0
	a.sumL = 0
	a.sumR = 0
	a.enableLatch = false
	a.outFull = false
	a.out = Frame{}
}

// selected picks the published sample for the frame just accepted: the
// windowed mean when the latched enable is high, the raw sample otherwise.
// Division truncates toward zero.
func (a *Average) selected(in Frame) int32 {
	if !a.enableLatch {
		return in.Sample
	}
	if in.Right {
		return int32(a.sumR / int64(a.cfg.Order))
	}
	return int32(a.sumL / int64(a.cfg.Order))
}
