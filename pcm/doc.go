// SPDX-License-Identifier: EPL-2.0

// Package pcm provides int16 PCM sources feeding the fixed-point pipeline.
//
// This package contains the plumbing between decoded audio files and the
// stream package:
//   - Source interface for interleaved int16 input
//   - StereoUpmix for presenting any source as the stereo layout the
//     pipeline stages consume
//   - Resampler for bringing file input to the pipeline's working rate
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of the input side:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadPCM(dst []int16) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders and processors implement this interface, allowing
// them to be chained together before the samples enter the pipeline.
//
// # Sample Format
//
// Samples are signed 16-bit PCM, the native word of the pipeline stages.
// Decoders for formats with other bit depths or float output convert at
// the boundary, once, so everything downstream stays in the integer domain.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := pcm.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Other errors
// indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadPCM(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package pcm
