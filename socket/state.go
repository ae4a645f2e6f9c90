// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package socket

// State is a Socket's position in its lifecycle state machine.
type State uint8

const (
	Invalid State = iota
	LookingUpHost
	Connecting
	Connected
	Bound
	Listening
	Disconnecting
)

// String returns a lowercase, hyphenated state name.
func (s State) String() string {
	switch s {
	case LookingUpHost:
		return "looking-up-host"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Bound:
		return "bound"
	case Listening:
		return "listening"
	case Disconnecting:
		return "disconnecting"
	default:
		return "invalid"
	}
}
