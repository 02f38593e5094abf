// SPDX-License-Identifier: EPL-2.0

package stream

import "fmt"

// GainConfig describes a Gain stage. DataWidth is the sample width in bits.
// The volume knob travels between VolumeMin and VolumeMax and starts at
// VolumeDefault; the distance from VolumeDefault to a given position selects
// the power-of-two gain applied to every sample.
type GainConfig struct {
	DataWidth     int
	VolumeMin     int
	VolumeDefault int
	VolumeMax     int
}

func (c GainConfig) validate() error {
	if c.DataWidth < 1 || c.DataWidth > 32 {
		return fmt.Errorf("gain: width %d: %w", c.DataWidth, ErrInvalidDataWidth)
	}
	if c.VolumeMin > c.VolumeDefault || c.VolumeDefault > c.VolumeMax {
		return fmt.Errorf("gain: min=%d default=%d max=%d: %w",
			c.VolumeMin, c.VolumeDefault, c.VolumeMax, ErrInvalidVolumeSpan)
	}
	if c.VolumeMax-c.VolumeMin > 63 {
		return fmt.Errorf("gain: span %d: %w", c.VolumeMax-c.VolumeMin, ErrVolumeSpanTooWide)
	}
	return nil
}

// gainCapture is the first pipeline register: the accepted sample together
// with the volume level in force when it was accepted, plus the precomputed
// overflow check for the prospective left shift.
type gainCapture struct {
	sample int32
	right  bool
	level  int
	check  uint32
}

// Gain applies a saturating power-of-two amplification or attenuation to an
// interleaved stereo stream. Internally it is a two-register pipeline
// (capture, then apply), so an accepted frame becomes available on the output
// side two ticks later. Volume moves one step per PulseVolume tick, clamped
// to the configured range, and is exposed as a thermometer code.
type Gain struct {
	cfg     GainConfig
	volHigh int
	volNeut int

	level int

	pulseUp   bool
	pulseDown bool

	capt     gainCapture
	captFull bool

	out     Frame
	outFull bool
}

// NewGain validates cfg and returns a Gain in its initial state: volume at
// VolumeDefault, pipeline empty.
func NewGain(cfg GainConfig) (*Gain, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Gain{
		cfg:     cfg,
		volHigh: cfg.VolumeMax - cfg.VolumeMin,
		volNeut: cfg.VolumeDefault - cfg.VolumeMin,
		level:   cfg.VolumeDefault - cfg.VolumeMin,
	}, nil
}

// Level returns the current volume position in [0, VolumeMax-VolumeMin].
func (g *Gain) Level() int { return g.level }

// Thermometer returns the volume position as a thermometer code: bit i is
// set iff i <= Level(). Bit 0 is therefore always set.
func (g *Gain) Thermometer() uint64 {
	return uint64(1)<<(uint(g.level)+1) - 1
}

// PulseVolume asserts the volume step lines for the next tick. When both are
// asserted on the same tick, up wins and the level increments.
func (g *Gain) PulseVolume(up, down bool) {
	g.pulseUp = up
	g.pulseDown = down
}

func (g *Gain) InputReady() bool {
	return !g.captFull && !g.outFull
}

func (g *Gain) Output() (Frame, bool) {
	return g.out, g.outFull
}

func (g *Gain) Tick(in Frame, inValid, outReady bool) {
	inXfer := inValid && g.InputReady()

	if g.outFull && outReady {
		g.outFull = false
	}

	// Apply register: shift the captured sample, saturating on a flagged
	// overflow, and publish the result.
	if g.captFull && !g.outFull {
		g.out = Frame{Sample: g.applied(g.capt), Right: g.capt.right}
		g.outFull = true
		g.captFull = false
	}

	// Capture register: latch the sample with the level in force this tick.
	if inXfer {
		shift := g.level - g.volNeut
		g.capt = gainCapture{
			sample: in.Sample,
			right:  in.Right,
			level:  g.level,
			check:  g.overflowCheck(in.Sample, shift),
		}
		g.captFull = true
	}

	// Volume pulses are sampled every tick, transfer or not.
	up, down := g.pulseUp, g.pulseDown
	g.pulseUp, g.pulseDown = false, false
	switch {
	case up:
		if g.level < g.volHigh {
			g.level++
		}
	case down:
		if g.level > 0 {
			g.level--
		}
	}
}

func (g *Gain) Reset() {
	g.level = g.volNeut
	g.pulseUp = false
	g.pulseDown = false
	g.captFull = false
	g.outFull = false
	g.out = Frame{}
}

// overflowCheck inspects the top shift bits below the sign bit of x. Each
// inspected bit that differs from the sign bit sets a bit in the result; a
// nonzero result means a left shift by shift would discard significant bits.
func (g *Gain) overflowCheck(x int32, shift int) uint32 {
	if shift <= 0 || x == 0 {
		return 0
	}
	w := g.cfg.DataWidth
	if shift >= w {
		// No nonzero sample survives a shift past the full width.
		return 1
	}
	sign := uint32(x>>31) & 1
	var check uint32
	for i := 0; i < shift; i++ {
		bit := uint32(x>>(w-2-i)) & 1
		check |= (bit ^ sign) << i
	}
	return check
}

func (g *Gain) applied(c gainCapture) int32 {
	shift := c.level - g.volNeut
	if shift > 0 {
		if c.check != 0 {
			if c.sample < 0 {
				return minSample(g.cfg.DataWidth)
			}
			return maxSample(g.cfg.DataWidth)
		}
		return c.sample << uint(shift)
	}
	return c.sample >> uint(-shift)
}
