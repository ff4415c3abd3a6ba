// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bichan_test

import (
	"testing"

	"code.hybscloud.com/bichan"
)

func TestRoundTrip(t *testing.T) {
	left, right := bichan.New[string, string]()

	mustSend(t, left, "ping")
	if got := mustRecv(t, right); got != "ping" {
		t.Fatalf("right got %q, want %q", got, "ping")
	}

	mustSend(t, right, "pong")
	if got := mustRecv(t, left); got != "pong" {
		t.Fatalf("left got %q, want %q", got, "pong")
	}
}

func TestBidirectionalTypes(t *testing.T) {
	// left sends int, right answers string
	left, right := bichan.New[int, string]()

	mustSend(t, left, 7)
	if got := mustRecv(t, right); got != 7 {
		t.Fatalf("right got %d, want 7", got)
	}

	mustSend(t, right, "n=7")
	if got := mustRecv(t, left); got != "n=7" {
		t.Fatalf("left got %q, want %q", got, "n=7")
	}
}

func TestFIFOWithoutInterleaving(t *testing.T) {
	left, right := bichan.New[int, struct{}]()

	for i := 1; i <= 5; i++ {
		mustSend(t, left, i)
	}
	for i := 1; i <= 5; i++ {
		if got := mustRecv(t, right); got != i {
			t.Fatalf("recv got %d, want %d", got, i)
		}
	}
}

func TestDirectionsIndependent(t *testing.T) {
	// Interleaved sends on both directions must not affect each
	// other's FIFO order: the two buffers are independent.
	left, right := bichan.New[int, string]()

	mustSend(t, left, 1)
	mustSend(t, right, "a")
	mustSend(t, left, 2)
	mustSend(t, right, "b")

	if got := mustRecv(t, right); got != 1 {
		t.Fatalf("right got %d, want 1", got)
	}
	if got := mustRecv(t, left); got != "a" {
		t.Fatalf("left got %q, want %q", got, "a")
	}
	if got := mustRecv(t, right); got != 2 {
		t.Fatalf("right got %d, want 2", got)
	}
	if got := mustRecv(t, left); got != "b" {
		t.Fatalf("left got %q, want %q", got, "b")
	}
}

func TestPairsIsolated(t *testing.T) {
	l1, r1 := bichan.New[int, int]()
	l2, r2 := bichan.New[int, int]()

	mustSend(t, l1, 42)

	if _, err := r2.TryRecv(); !bichan.IsWouldBlock(err) {
		t.Fatalf("pair 2 right: err = %v, want would-block", err)
	}
	if _, err := l2.TryRecv(); !bichan.IsWouldBlock(err) {
		t.Fatalf("pair 2 left: err = %v, want would-block", err)
	}
	if got := mustRecv(t, r1); got != 42 {
		t.Fatalf("pair 1 right got %d, want 42", got)
	}
}

func TestUnboundedBuffering(t *testing.T) {
	// Sends never wait for buffer space: every send must return before
	// the first receive happens.
	const n = 10000
	left, right := bichan.New[int, struct{}]()

	for i := 0; i < n; i++ {
		if err := left.Send(i); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}
	for i := 0; i < n; i++ {
		got, err := right.Recv()
		if err != nil {
			t.Fatalf("recv %d: %v", i, err)
		}
		if got != i {
			t.Fatalf("recv got %d, want %d", got, i)
		}
	}
}

func TestThreadedControlLoop(t *testing.T) {
	// A worker polls TryRecv for control messages between units of
	// work, answering everything but "stop".
	local, worker := bichan.New[string, string]()

	done := make(chan string)
	go func() {
		for {
			msg, err := worker.TryRecv()
			if bichan.IsWouldBlock(err) {
				continue
			}
			if err != nil {
				done <- err.Error()
				return
			}
			if msg == "stop" {
				done <- "stopped"
				return
			}
			if err := worker.Send("cant stop"); err != nil {
				done <- err.Error()
				return
			}
		}
	}()

	mustSend(t, local, "slow down")
	if got := mustRecv(t, local); got != "cant stop" {
		t.Fatalf("reply got %q, want %q", got, "cant stop")
	}

	mustSend(t, local, "stop")
	if got := <-done; got != "stopped" {
		t.Fatalf("worker got %q, want %q", got, "stopped")
	}
}
