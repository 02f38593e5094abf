// SPDX-License-Identifier: EPL-2.0

package fxchain

import (
	"fmt"
	"io"

	"github.com/ik5/fxchain/pcm"
	"github.com/ik5/fxchain/stream"
)

// Process drives interleaved L,R,L,R,... 16-bit samples through a stage or
// chain, one handshake transfer at a time, and returns exactly one output
// sample per input sample. After the last input is accepted the pipeline is
// ticked until every in-flight frame has drained.
//
// The stage must be configured for 16-bit samples. samples[0] is taken as a
// left-channel sample.
func Process(s stream.Stage, samples []int16) ([]int16, error) {
	out := make([]int16, 0, len(samples))
	next := 0

	// Generous bound: every frame needs a handful of ticks even through a
	// deep chain, so running this long means the stage stopped accepting.
	maxTicks := len(samples)*8 + 64

	for tick := 0; len(out) < len(samples); tick++ {
		if tick >= maxTicks {
			return out, fmt.Errorf("after %d ticks: %w", tick, ErrPipelineStalled)
		}

		var in stream.Frame
		valid := false
		if next < len(samples) {
			in = stream.Frame{Sample: int32(samples[next]), Right: next%2 == 1}
			valid = true
		}

		accept := s.InputReady()
		pending, present := s.Output()

		s.Tick(in, valid, true)

		if valid && accept {
			next++
		}
		if present {
			out = append(out, int16(pending.Sample))
		}
	}

	return out, nil
}

// ProcessSource decodes an entire source through a stage or chain and
// collects the result as interleaved stereo 16-bit PCM.
//
// This function builds the input side of the pipeline:
//  1. Presents the source as stereo (mono input is duplicated into both
//     channels)
//  2. Reads all samples from the source
//  3. Drives them through the stage with Process
//
// Parameters:
//   - src: The audio source to process (implements pcm.Source)
//   - s: The stage or chain the samples run through
//   - bufferSize: Size of the buffer for reading samples (e.g., 4096)
//
// Returns the processed samples, the source sample rate, and any error
// encountered while reading or processing.
func ProcessSource(src pcm.Source, s stream.Stage, bufferSize int) ([]int16, int, error) {
	stereo := src
	if src.Channels() != 2 {
		stereo = pcm.NewStereoUpmix(src)
	}

	var pcm16 []int16
	buf := make([]int16, bufferSize)

	for {
		n, err := stereo.ReadPCM(buf)
		if n > 0 {
			pcm16 = append(pcm16, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, stereo.SampleRate(), fmt.Errorf("%w", err)
		}
	}

	// Drop a trailing half frame so the left/right phase stays intact.
	if len(pcm16)%2 != 0 {
		pcm16 = pcm16[:len(pcm16)-1]
	}

	out, err := Process(s, pcm16)
	return out, stereo.SampleRate(), err
}
