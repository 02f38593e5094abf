package stream

import "errors"

var (
	ErrInvalidDataWidth  = errors.New("data width must be between 1 and 32 bits")
	ErrInvalidVolumeSpan = errors.New("volume default must lie between volume min and max")
	ErrVolumeSpanTooWide = errors.New("volume range must not exceed 64 steps")
	ErrInvalidOrder      = errors.New("filter order must be a positive even integer")
)
