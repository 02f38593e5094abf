// SPDX-License-Identifier: EPL-2.0

// Package stream provides cycle-accurate fixed-point stream transformers.
//
// This package contains the core building blocks of the pipeline:
//   - Frame and the Stage channel contract
//   - Gain for saturating power-of-two volume control
//   - Average for sliding-window moving-average filtering
//   - Mute for per-channel muting
//   - Chain for composing stages back to back
//
// # Channel Contract
//
// Every stage moves one Frame per accepted transfer over an identical
// two-signal handshake: the producer asserts data-present, the consumer
// asserts can-accept, and a transfer happens on exactly the ticks where both
// hold. A stage holding an unconsumed output frame deasserts can-accept
// toward its producer, so backpressure propagates upstream one frame at a
// time, and asserted output data never changes until it is accepted.
//
// # Driving a Stage
//
// The surrounding world clocks a stage explicitly, reading its pre-edge
// signals and then advancing it:
//
//	ready := stage.InputReady()
//	out, present := stage.Output()
//	stage.Tick(in, inValid, outReady)
//
// Chain does exactly this for every internal link, so a whole pipeline is
// driven the same way as a single stage.
//
// # Fixed-Point Samples
//
// Samples are sign-extended two's-complement values of a configured width,
// carried in int32. All arithmetic is total: amplification saturates to the
// width's extremes instead of overflowing, attenuation is an arithmetic
// right shift, and the moving average divides with truncation toward zero.
//
// # Latency
//
// Gain adds two ticks of latency (an internal capture register followed by
// an apply register); Average and Mute add one tick each. Latency is fixed
// and independent of the control inputs.
//
// # Error Handling
//
// The streaming path raises no errors. The only failure class is
// configuration validation in the constructors, reported through the
// package's sentinel errors:
//
//	_, err := stream.NewAverage(stream.AverageConfig{DataWidth: 16, Order: 3})
//	// errors.Is(err, stream.ErrInvalidOrder) == true
package stream
