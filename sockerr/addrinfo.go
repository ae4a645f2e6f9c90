// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sockerr

import "strconv"

// AddrInfoError wraps a getaddrinfo-family numeric error code (the
// EAI_* constants), surfaced when resolving a NetworkAddress fails.
//
// This package renders the message from a fixed table of the common
// EAI_* codes rather than calling the platform's gai_strerror: that
// function takes a libc call this module does not otherwise need and
// is not safe to call concurrently on every platform, while the codes
// it describes are a small, stable, portable set.
type AddrInfoError struct {
	Code int
}

func (e *AddrInfoError) Error() string { return "sockerr: getaddrinfo: " + e.Message() }

// Message returns a human-readable description of e.Code, falling back
// to the numeric code itself for anything outside the known table.
func (e *AddrInfoError) Message() string {
	if msg, ok := addrInfoMessages[e.Code]; ok {
		return msg
	}
	return "unknown getaddrinfo error " + strconv.Itoa(e.Code)
}

// The numeric values mirror the POSIX EAI_* constants; platforms that
// define them differently are expected to translate at the call site
// before constructing an AddrInfoError.
const (
	EAIAgain    = -3
	EAIFail     = -4
	EAIFamily   = -6
	EAINoName   = -2
	EAIService  = -8
	EAISocktype = -7
)

var addrInfoMessages = map[int]string{
	EAIAgain:    "temporary failure in name resolution",
	EAIFail:     "non-recoverable failure in name resolution",
	EAIFamily:   "address family not supported",
	EAINoName:   "name does not resolve",
	EAIService:  "service not supported for socket type",
	EAISocktype: "socket type not supported",
}
