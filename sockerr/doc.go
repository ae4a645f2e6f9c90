// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sockerr wraps the raw operating-system errors the socket
// package encounters into a small set of typed errors, and classifies
// any incoming error into one of a fixed set of categories so callers can
// decide whether to retry, surface, or translate it into the shared
// non-blocking sentinels re-exported from code.hybscloud.com/iox.
//
// POSIXError and WindowsError wrap a raw platform errno. Both types exist
// in every build, but only the one for the build's platform wraps a real
// errno; the other is an inert stub that is never constructed.
// AddrInfoError wraps a getaddrinfo-style numeric code and resolves it to
// a human-readable message from a fixed table of common EAI_* codes.
package sockerr
