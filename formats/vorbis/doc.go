// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files. Vorbis decodes to normalized float samples; this package quantizes
// them to signed 16-bit PCM once, at the boundary, so everything downstream
// stays in the pipeline's integer domain.
//
// # Decoding Vorbis Files
//
// Use the Decoder to read Ogg Vorbis files:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]int16, 4096)
//	n, err := source.ReadPCM(buf)
//
// # Output Format
//
//   - Sample format: signed 16-bit PCM, interleaved
//   - Channels: as encoded (typically 2)
//   - Sample rate: as encoded
//
// # Limitations
//
// Note:
//   - Vorbis writing is not supported (decoding only)
package vorbis
