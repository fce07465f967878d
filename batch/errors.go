// SPDX-License-Identifier: MIT

package batch

import "errors"

// ErrNilProvider indicates that Solve was called without a parameter source.
var ErrNilProvider = errors.New("batch: nil parameter provider")
