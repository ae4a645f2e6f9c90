// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netaddr

import (
	"context"
	"testing"
)

func TestParseNetworkAddressLiteralIsPreResolved(t *testing.T) {
	t.Parallel()
	na := ParseNetworkAddress("93.184.216.34:443")
	if !na.Resolved() {
		t.Fatalf("expected a literal IP address to be pre-resolved")
	}
	addrs, err := na.Resolve(context.Background(), Stream)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(addrs) != 1 || addrs[0].Port() != 443 {
		t.Fatalf("got %v", addrs)
	}
}

func TestParseNetworkAddressHostnameIsNotPreResolved(t *testing.T) {
	t.Parallel()
	na := ParseNetworkAddress("example.invalid:80")
	if na.Resolved() {
		t.Fatalf("expected a hostname to require a lookup")
	}
	if na.Host != "example.invalid" {
		t.Fatalf("got host %q", na.Host)
	}
}

func TestInterfacesFiltersLoopbackByDefault(t *testing.T) {
	t.Parallel()
	withLoopback, err := Interfaces(Unspecified, true)
	if err != nil {
		t.Skipf("Interfaces unavailable in this sandbox: %v", err)
	}
	withoutLoopback, err := Interfaces(Unspecified, false)
	if err != nil {
		t.Fatalf("Interfaces: %v", err)
	}
	if len(withoutLoopback) > len(withLoopback) {
		t.Fatalf("excluding loopback should never return more addresses")
	}
	for _, a := range withoutLoopback {
		if a.IsLoopback() {
			t.Fatalf("got loopback address %v with includeLoopback=false", a)
		}
	}
}
