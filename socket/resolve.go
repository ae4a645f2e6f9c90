// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package socket

import (
	"context"

	"code.hybscloud.com/netio/netaddr"
)

// Resolve resolves na to one or more concrete addresses usable to Bind
// or Connect a socket of type typ. It is a thin, named entry point over
// netaddr.NetworkAddress.Resolve so callers need not import netaddr just
// to kick off a lookup.
func Resolve(ctx context.Context, na netaddr.NetworkAddress, typ netaddr.Type) ([]netaddr.SocketAddress, error) {
	return na.Resolve(ctx, typ)
}
