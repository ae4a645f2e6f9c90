// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sockerr

import "testing"

func TestClassifyNilIsUnknown(t *testing.T) {
	t.Parallel()
	if got := Classify(nil); got != Unknown {
		t.Fatalf("got %v want Unknown", got)
	}
}

func TestClassifyAddrInfoErrorIsNameResolution(t *testing.T) {
	t.Parallel()
	err := &AddrInfoError{Code: EAINoName}
	if got := Classify(err); got != NameResolution {
		t.Fatalf("got %v want NameResolution", got)
	}
}

func TestAddrInfoErrorMessageKnownAndUnknown(t *testing.T) {
	t.Parallel()
	known := &AddrInfoError{Code: EAIAgain}
	if known.Message() != "temporary failure in name resolution" {
		t.Fatalf("got %q", known.Message())
	}
	unknown := &AddrInfoError{Code: -999}
	if unknown.Message() == "" {
		t.Fatalf("expected a non-empty fallback message")
	}
}

func TestCategoryString(t *testing.T) {
	t.Parallel()
	cases := map[Category]string{
		Unknown:            "unknown",
		Transient:          "transient",
		RemoteInitiated:    "remote-initiated",
		LocalConfiguration: "local-configuration",
		Resource:           "resource",
		NameResolution:     "name-resolution",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Fatalf("%d: got %q want %q", c, got, want)
		}
	}
}
