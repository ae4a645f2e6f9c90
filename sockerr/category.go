// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sockerr

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock is re-exported from iox so callers of this package never
// need to import it directly to recognize a non-blocking short return.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrMore is re-exported from iox for the same reason: a partial
// operation that needs another call to complete.
var ErrMore = iox.ErrMore

// Category is a coarse classification of an error observed on a socket
// operation, used to decide whether to retry, surface to the caller, or
// translate into ErrWouldBlock.
type Category uint8

const (
	// Unknown is returned for an error this package cannot classify.
	Unknown Category = iota

	// Transient errors (EAGAIN/EWOULDBLOCK/EINTR and their Windows
	// equivalents) should be retried or translated into ErrWouldBlock.
	Transient

	// RemoteInitiated errors (ECONNRESET/EPIPE/ECONNABORTED and
	// equivalents) indicate the peer tore down the connection.
	RemoteInitiated

	// LocalConfiguration errors (EADDRINUSE/EACCES/EINVAL and
	// equivalents) indicate a misconfiguration local to this process.
	LocalConfiguration

	// Resource errors (EMFILE/ENFILE/ENOBUFS/ENOMEM and equivalents)
	// indicate local resource exhaustion.
	Resource

	// NameResolution errors originate from host name lookup
	// (AddrInfoError) rather than from the socket itself.
	NameResolution
)

// String returns a lowercase category name.
func (c Category) String() string {
	switch c {
	case Transient:
		return "transient"
	case RemoteInitiated:
		return "remote-initiated"
	case LocalConfiguration:
		return "local-configuration"
	case Resource:
		return "resource"
	case NameResolution:
		return "name-resolution"
	default:
		return "unknown"
	}
}

// Classify maps err into a Category. It recognizes *POSIXError,
// *WindowsError, and *AddrInfoError (via errors.As), and falls back to
// Unknown for anything else, including nil.
func Classify(err error) Category {
	if err == nil {
		return Unknown
	}
	var ai *AddrInfoError
	if errors.As(err, &ai) {
		return NameResolution
	}
	var pe *POSIXError
	if errors.As(err, &pe) {
		return pe.classify()
	}
	var we *WindowsError
	if errors.As(err, &we) {
		return we.classify()
	}
	return Unknown
}
