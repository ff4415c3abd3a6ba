// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mpsc provides unbounded multi-producer single-consumer FIFO
// channels with disconnect detection.
//
// [New] creates a connected [Sender]/[Receiver] handle pair. Values are
// carried by an intrusive lock-free linked queue: producers claim the tail
// with an atomic swap and publish the link afterwards, the consumer follows
// head links. The queue is unbounded, so [Sender.Send] never waits for
// buffer space.
//
// Non-blocking operations follow the transport convention of
// [code.hybscloud.com/iox]: [Receiver.TryRecv] returns
// [code.hybscloud.com/iox.ErrWouldBlock] when no value is buffered.
// [Receiver.Recv] waits past that boundary with adaptive backoff.
//
// Disconnection is bilateral. Closing the last sender handle disconnects
// the channel once the buffer drains; closing the receiver handle makes
// every subsequent send fail with a [SendError] that carries the rejected
// value back to the caller.
//
// Send and Clone are safe from any number of goroutines. Recv and TryRecv
// are single-consumer: at most one goroutine at a time. Close is safe
// anywhere, including while a Recv on the same receiver is waiting.
package mpsc

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
)

// node is one link of the intrusive queue. The value travels in the node
// that follows the current head; the head node itself is the consumed stub.
type node[T any] struct {
	next atomic.Pointer[node[T]]
	val  T
}

// core is the state shared by all handles of one channel. It is reachable
// only through Sender and Receiver values, never exposed.
type core[T any] struct {
	// head is owned by the single consumer and points at the last
	// consumed node. head.next is the next value to deliver.
	head *node[T]

	// tail is claimed by producers with an atomic swap. The producer
	// holding the previous tail publishes the link, so a claimed but
	// not yet linked node is invisible to the consumer until the
	// producer's Send returns.
	tail atomic.Pointer[node[T]]

	// senders counts live sender handles. Zero is terminal: no handle
	// remains to clone from, so the count can never grow again.
	senders atomix.Uint32

	// recvReleased is nonzero once the receiver handle is closed.
	recvReleased atomix.Uint32
}

// New creates an unbounded MPSC channel and returns its two handles.
// Dropping either side is observable by the other: see Sender.Close and
// Receiver.Close.
func New[T any]() (*Sender[T], *Receiver[T]) {
	c := &core[T]{}
	stub := &node[T]{}
	c.head = stub
	c.tail.Store(stub)
	c.senders.Add(1)
	return &Sender[T]{core: c}, &Receiver[T]{core: c}
}

// enqueue appends v to the queue. Safe for concurrent producers: the swap
// serializes them, and each producer links a node only it can reach.
func (c *core[T]) enqueue(v T) {
	n := &node[T]{val: v}
	prev := c.tail.Swap(n)
	prev.next.Store(n)
}

// dequeue removes the oldest value. Consumer-only. A false return means
// the queue is empty or a producer has claimed the tail but not yet
// published the link; both read as "nothing deliverable yet".
func (c *core[T]) dequeue() (T, bool) {
	next := c.head.next.Load()
	if next == nil {
		var zero T
		return zero, false
	}
	v := next.val
	var zero T
	next.val = zero // drop the payload reference, next becomes the stub
	c.head = next
	return v, true
}

// drained reports whether the sending side is fully released. Once true,
// every enqueue has been published, so a following dequeue sees the
// complete buffer.
func (c *core[T]) drained() bool {
	return c.senders.Load() == 0
}
