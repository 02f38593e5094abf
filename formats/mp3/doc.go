// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// go-mp3 already emits 16-bit PCM, so the samples pass straight into the
// pipeline's integer domain with no scaling.
//
// # Decoding MP3 Files
//
// Use the Decoder to read MP3 files:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
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
// MP3 decoder output:
//   - Sample format: signed 16-bit PCM, interleaved
//   - Channels: 2 (stereo)
//   - Sample rate: Depends on the MP3 file (typically 44.1kHz or 48kHz)
//
// To bring the stream to another rate before the pipeline, use the pcm
// package:
//
//	mp3Source, _ := decoder.Decode(file)
//	resampled := pcm.NewResampler(mp3Source, 48000)
//
// # Limitations
//
// Note:
//   - MP3 writing is not supported (decoding only)
//   - Output is always stereo
package mp3
