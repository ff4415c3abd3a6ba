// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bichan_test

import (
	"testing"

	"code.hybscloud.com/bichan"
)

// mustSend fails the test when a send that should succeed does not.
func mustSend[S, R any](tb testing.TB, ep *bichan.Endpoint[S, R], v S) {
	tb.Helper()
	if err := ep.Send(v); err != nil {
		tb.Fatalf("send %v: %v", v, err)
	}
}

// mustRecv fails the test when a receive that should deliver does not.
func mustRecv[S, R any](tb testing.TB, ep *bichan.Endpoint[S, R]) R {
	tb.Helper()
	v, err := ep.Recv()
	if err != nil {
		tb.Fatalf("recv: %v", err)
	}
	return v
}
