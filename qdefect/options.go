// SPDX-License-Identifier: MIT

package qdefect

import "log/slog"

// DefaultCacheSize is the number of states a Cache keeps by default.
const DefaultCacheSize = 256

// StoreOption configures OpenStore.
type StoreOption func(*storeOptions)

type storeOptions struct {
	logger *slog.Logger
}

// WithStoreLogger routes store lifecycle messages to l.
// A nil logger panics: it is a programmer error.
func WithStoreLogger(l *slog.Logger) StoreOption {
	if l == nil {
		panic("qdefect: WithStoreLogger: nil logger")
	}

	return func(o *storeOptions) { o.logger = l }
}

func gatherStoreOptions(opts ...StoreOption) storeOptions {
	o := storeOptions{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
