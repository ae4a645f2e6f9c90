// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf

// Options configures a new Buffer.
type Options struct {
	// Limit caps the number of live elements. Zero means unbounded.
	Limit int
}

var defaultOptions = Options{Limit: 0}

// Option configures a Buffer at construction time.
type Option func(*Options)

// WithLimit sets the maximum number of live elements a Buffer will hold.
// Zero (the default) means unbounded, subject only to available memory.
func WithLimit(n int) Option {
	return func(o *Options) { o.Limit = n }
}
