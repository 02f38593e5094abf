// SPDX-License-Identifier: EPL-2.0

package stream

import "fmt"

// MuteConfig describes a Mute stage.
type MuteConfig struct {
	DataWidth int
}

func (c MuteConfig) validate() error {
	if c.DataWidth < 1 || c.DataWidth > 32 {
		return fmt.Errorf("mute: width %d: %w", c.DataWidth, ErrInvalidDataWidth)
	}
	return nil
}

// Mute zeroes samples per channel under two independent switch lines, adding
// one tick of latency. The asynchronous lines are registered once per tick
// and a frame is judged against the registration from the previous tick,
// never against the live lines.
type Mute struct {
	cfg MuteConfig

	lineL, lineR   bool
	latchL, latchR bool

	out     Frame
	outFull bool
}

// NewMute validates cfg and returns a Mute with both channels open.
func NewMute(cfg MuteConfig) (*Mute, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Mute{cfg: cfg}, nil
}

// SetMute drives the two asynchronous mute switch lines.
func (m *Mute) SetMute(left, right bool) {
	m.lineL = left
	m.lineR = right
}

func (m *Mute) InputReady() bool {
	return !m.outFull
}

func (m *Mute) Output() (Frame, bool) {
	return m.out, m.outFull
}

func (m *Mute) Tick(in Frame, inValid, outReady bool) {
	inXfer := inValid && m.InputReady()

	if m.outFull && outReady {
		m.outFull = false
	}

	if inXfer {
		sample := in.Sample
		if (in.Right && m.latchR) || (!in.Right && m.latchL) {
			sample = 0
		}
		m.out = Frame{Sample: sample, Right: in.Right}
		m.outFull = true
	}

	// Register the switch lines after use; the frame above saw last tick's
	// values.
	m.latchL = m.lineL
	m.latchR = m.lineR
}

func (m *Mute) Reset() {
	m.latchL = false
	m.latchR = false
	m.outFull = false
	m.out = Frame{}
}
