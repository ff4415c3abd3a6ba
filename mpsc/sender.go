// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

import (
	"code.hybscloud.com/atomix"
)

// Sender is the producing handle of a channel. Any number of goroutines
// may call Send on one Sender concurrently, and Clone creates additional
// handles for independent ownership. The channel stays connected until
// every sender handle is closed.
type Sender[T any] struct {
	core *core[T]

	// closed guards this handle: the first Close wins, later calls and
	// sends on this handle observe it and back off.
	closed atomix.Uint32
}

// Send enqueues v for the receiving side. It never blocks: the buffer is
// unbounded, so there is no space to wait for.
//
// Send fails with a [*SendError] carrying v when the receiver handle has
// been released, or when this sender handle is already closed. A nil
// return means v was buffered while the receiver was still live; it does
// not mean v will be consumed, since the receiver may release its handle
// before draining.
func (s *Sender[T]) Send(v T) error {
	if s.closed.Load() != 0 || s.core.recvReleased.Load() != 0 {
		return &SendError[T]{Value: v}
	}
	s.core.enqueue(v)
	return nil
}

// Clone returns a new sender handle feeding the same receiver. Values
// sent through distinct handles keep per-handle FIFO order; no order is
// defined between handles.
//
// Clone panics if this handle is already closed: a closed handle no
// longer pins the channel open, so cloning it could resurrect a channel
// the receiver has already observed as disconnected.
func (s *Sender[T]) Clone() *Sender[T] {
	if s.closed.Load() != 0 {
		panic("mpsc: Clone on a closed Sender")
	}
	s.core.senders.Add(1)
	return &Sender[T]{core: s.core}
}

// Close releases this sender handle. It is idempotent and safe from any
// goroutine, but must not race Send on the same handle: close only after
// the handle's last Send has returned.
//
// Closing the last live handle disconnects the channel. The receiver
// still drains everything buffered before observing [ErrDisconnected].
func (s *Sender[T]) Close() {
	if s.closed.Add(1) != 1 {
		return
	}
	s.core.senders.Add(^uint32(0))
}
