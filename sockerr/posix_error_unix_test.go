//go:build unix

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sockerr

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestNewPOSIXErrorNilOnSuccess(t *testing.T) {
	t.Parallel()
	if err := NewPOSIXError(0); err != nil {
		t.Fatalf("expected nil for errno 0, got %v", err)
	}
}

func TestPOSIXErrorClassification(t *testing.T) {
	t.Parallel()
	cases := []struct {
		errno unix.Errno
		want  Category
	}{
		{unix.EAGAIN, Transient},
		{unix.ECONNRESET, RemoteInitiated},
		{unix.EADDRINUSE, LocalConfiguration},
		{unix.EMFILE, Resource},
	}
	for _, c := range cases {
		err := NewPOSIXError(c.errno)
		if got := Classify(err); got != c.want {
			t.Fatalf("errno %v: got %v want %v", c.errno, got, c.want)
		}
	}
}
