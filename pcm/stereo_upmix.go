package pcm

import "fmt"

// StereoUpmix presents any source as interleaved stereo, the frame layout
// the pipeline stages consume. Mono input is duplicated into both channels;
// stereo passes through; sources with more channels keep their first two.
type StereoUpmix struct {
	src Source
	tmp []int16
}

func NewStereoUpmix(src Source) *StereoUpmix {
	return &StereoUpmix{
		src: src,
		tmp: make([]int16, 4096),
	}
}

func (u *StereoUpmix) SampleRate() int { return u.src.SampleRate() }
func (u *StereoUpmix) Channels() int   { return 2 }
func (u *StereoUpmix) BufSize() int    { return u.src.BufSize() }
func (u *StereoUpmix) Close() error {
	err := u.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (u *StereoUpmix) ReadPCM(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}
	if u.src.Channels() == 2 {
		// Pass-through: read stereo directly
		return u.src.ReadPCM(dst)
	}

	channels := u.src.Channels()
	frames := len(dst) / 2
	samplesNeeded := frames * channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(u.tmp) < samplesNeeded {
		newCap := samplesNeeded
		if newCap < 8192 {
			newCap = 8192 // Reasonable minimum
		}
		u.tmp = make([]int16, newCap)
	} else if len(u.tmp) < samplesNeeded {
		u.tmp = u.tmp[:samplesNeeded]
	}

	n, err := u.src.ReadPCM(u.tmp[:samplesNeeded])
	if n == 0 {
		return 0, err
	}
	got := n / channels

	switch channels {
	case 1: // Mono (most common): duplicate into both channels
		for f := 0; f < got; f++ {
			dst[f*2] = u.tmp[f]
			dst[f*2+1] = u.tmp[f]
		}
	default: // Keep the first two channels of each frame
		for f := 0; f < got; f++ {
			base := f * channels
			dst[f*2] = u.tmp[base]
			dst[f*2+1] = u.tmp[base+1]
		}
	}

	return got * 2, err
}
