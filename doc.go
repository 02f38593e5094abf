// SPDX-License-Identifier: EPL-2.0

// Package fxchain provides a fixed-point stereo audio processing pipeline.
//
// The pipeline is built from three cycle-accurate stream transformers, each
// a self-contained stage with an identical two-signal handshake contract:
//   - Gain: saturating power-of-two volume control via stream.Gain
//   - Average: sliding-window moving-average filtering via stream.Average
//   - Mute: per-channel muting via stream.Mute
//
// Stages share no state and compose in any order through stream.Chain.
//
// # Quick Start
//
// The simplest way to process audio is ProcessSource:
//
//	// Decode an audio file
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	src, _ := decoder.Decode(file)
//
//	// Build a pipeline
//	g, _ := stream.NewGain(stream.GainConfig{DataWidth: 16, VolumeMin: 0, VolumeDefault: 7, VolumeMax: 15})
//	a, _ := stream.NewAverage(stream.AverageConfig{DataWidth: 16, Order: 4})
//	m, _ := stream.NewMute(stream.MuteConfig{DataWidth: 16})
//	chain := stream.NewChain(g, a, m)
//
//	// Run the whole file through it
//	samples, rate, _ := fxchain.ProcessSource(src, chain, 4096)
//
//	// samples is interleaved stereo int16, one output per input
//
// # Cycle-Accurate Processing
//
// For tick-level control — pulsing the volume knob mid-stream, toggling the
// filter, exercising backpressure — drive the stages directly with the
// stream package. Process and ProcessSource are convenience drivers that
// assert can-accept every tick and feed input as fast as the pipeline
// takes it.
//
// # Format Decoders
//
// Each format has its own decoder returning a pcm.Source:
//
//	wav.Decoder{}    // WAV (PCM 16-bit), via formats/wav
//	mp3.Decoder{}    // MP3, via formats/mp3
//	vorbis.Decoder{} // Ogg Vorbis, via formats/vorbis
//	aiff.Decoder{}   // AIFF (PCM 16-bit), via formats/aiff
//
// # Writing WAV Files
//
// The processed stream can be written back out:
//
//	file, _ := os.Create("output.wav")
//	wav.WriteWAV16(file, rate, 2, samples)
//
// See the individual subpackages for more detailed documentation.
package fxchain
