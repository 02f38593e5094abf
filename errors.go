// SPDX-License-Identifier: EPL-2.0

package fxchain

import "errors"

var (
	ErrPipelineStalled = errors.New("pipeline stopped making progress")
)
