// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate   int
	samples      []int16 // PCM samples (16-bit)
	offset       int
	returnErrors bool
}

func (m *mockMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	bytesAvailable := (len(m.samples) - m.offset) * 2
	bytesToRead := min(len(buf), bytesAvailable)

	// Ensure we read complete samples (even number of bytes)
	bytesToRead = (bytesToRead / 2) * 2
	samplesToRead := bytesToRead / 2

	for i := 0; i < samplesToRead; i++ {
		sample := m.samples[m.offset+i]
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(sample))
	}

	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return bytesToRead, io.EOF
	}

	return bytesToRead, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte("This is not MP3 data")))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &mockMP3Reader{sampleRate: 44100},
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 8192),
	}

	if s.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", s.SampleRate())
	}
	if s.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", s.Channels())
	}
	if s.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", s.BufSize())
	}
}

func TestSource_ReadPCM(t *testing.T) {
	t.Parallel()

	want := []int16{0, 1000, -1000, 32767, -32768, 42}
	s := &source{
		dec:        &mockMP3Reader{sampleRate: 44100, samples: want},
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 64),
	}

	dst := make([]int16, len(want))
	n, err := s.ReadPCM(dst)
	if n != len(want) {
		t.Fatalf("ReadPCM() n = %d, want %d", n, len(want))
	}
	if err != io.EOF {
		t.Errorf("ReadPCM() error = %v, want io.EOF", err)
	}

	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	s := &source{
		dec: &mockMP3Reader{returnErrors: true},
		buf: make([]byte, 64),
	}

	_, err := s.ReadPCM(make([]int16, 8))
	if err != io.ErrUnexpectedEOF {
		t.Errorf("ReadPCM() error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
}
