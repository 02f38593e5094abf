// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0.0, 0},
		{"max positive", 1.0, 32767},
		{"max negative", -1.0, -32767},
		{"half positive", 0.5, 16383}, // 32767 * 0.5 truncates
		{"half negative", -0.5, -16383},
		{"clamp over max", 1.5, 32767},
		{"clamp under min", -1.5, -32767},
		{"small positive", 0.001, 32},
		{"small negative", -0.001, -32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestInt16ToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input int16
		want  float32
	}{
		{"zero", 0, 0.0},
		{"max negative", -32768, -1.0},
		{"half", 16384, 0.5},
		{"minus quarter", -8192, -0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Int16ToFloat32(tt.input); got != tt.want {
				t.Errorf("Int16ToFloat32(%d) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundTripStaysClose(t *testing.T) {
	t.Parallel()

	for _, v := range []int16{-32768, -12345, -1, 0, 1, 999, 16384, 32767} {
		got := Float32ToInt16(Int16ToFloat32(v))
		if d := int(got) - int(v); d < -1 || d > 1 {
			t.Errorf("round trip of %d = %d, drifted more than one LSB", v, got)
		}
	}
}
