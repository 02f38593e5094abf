// SPDX-License-Identifier: EPL-2.0

package stream

// Chain wires stages back to back, each stage's output port feeding the next
// stage's input port. The chain is itself a Stage: its input side is the
// first stage's, its output side is the last stage's, and one chain tick is
// one shared clock edge.
//
// Stages never see mid-tick state of their neighbours: all handshake signals
// are read before any stage advances, the same way independent registers all
// sample before a clock edge.
type Chain struct {
	stages []Stage

	// scratch, sized to len(stages), reused every tick
	frames []Frame
	valids []bool
	readys []bool
}

// NewChain builds a chain over the given stages in order. A chain with no
// stages is inert: it never accepts and never produces.
func NewChain(stages ...Stage) *Chain {
	c := &Chain{}
	for _, s := range stages {
		c.Add(s)
	}
	return c
}

// Add appends a stage to the downstream end of the chain.
func (c *Chain) Add(s Stage) {
	c.stages = append(c.stages, s)
	c.frames = append(c.frames, Frame{})
	c.valids = append(c.valids, false)
	c.readys = append(c.readys, false)
}

func (c *Chain) InputReady() bool {
	if len(c.stages) == 0 {
		return false
	}
	return c.stages[0].InputReady()
}

func (c *Chain) Output() (Frame, bool) {
	if len(c.stages) == 0 {
		return Frame{}, false
	}
	return c.stages[len(c.stages)-1].Output()
}

func (c *Chain) Tick(in Frame, inValid, outReady bool) {
	n := len(c.stages)
	if n == 0 {
		return
	}

	// Sample every link's pre-edge signals first.
	c.frames[0], c.valids[0] = in, inValid
	for i := 1; i < n; i++ {
		c.frames[i], c.valids[i] = c.stages[i-1].Output()
		c.readys[i-1] = c.stages[i].InputReady()
	}
	c.readys[n-1] = outReady

	// Then clock every stage.
	for i, s := range c.stages {
		s.Tick(c.frames[i], c.valids[i], c.readys[i])
	}
}

func (c *Chain) Reset() {
	for _, s := range c.stages {
		s.Reset()
	}
}
