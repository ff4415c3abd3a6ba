// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bichan

// Send enqueues v for delivery to the counterpart. It never blocks: the
// buffer is unbounded, so there is no space to wait for.
//
// Send fails with a [*SendError] carrying v when the counterpart has
// released its receiving handle (or this endpoint is already closed), so
// no data is silently lost. A nil return means v was buffered while the
// counterpart's receiver was still live; it does not promise eventual
// consumption, since the counterpart may close right after Send returns.
func (ep *Endpoint[S, R]) Send(v S) error {
	return ep.sender.Send(v)
}

// Recv returns the oldest message sent by the counterpart, waiting until
// one arrives. Messages are delivered in the exact order sent (FIFO per
// direction). If the counterpart closes while messages remain buffered,
// those are still delivered on successive calls; only with the buffer
// empty and the counterpart's sender gone does Recv return
// [ErrDisconnected].
//
// Recv blocks only the calling goroutine, using adaptive backoff
// (iox.Backoff) behind the non-blocking path. It holds no lock that
// could stall the counterpart. The wait ends when a message arrives,
// when the counterpart disconnects, or when this endpoint is closed.
func (ep *Endpoint[S, R]) Recv() (R, error) {
	return ep.receiver.Recv()
}

// TryRecv is the non-blocking variant of Recv. With nothing buffered it
// returns immediately: [ErrWouldBlock] while the counterpart is still
// connected (or its state is not yet knowable), [ErrDisconnected] once
// the counterpart's sender is gone and the buffer has drained.
//
// The two failures are distinguishable with [IsWouldBlock] and
// [IsDisconnected], which suits poll-based loops that check for control
// messages between units of work.
func (ep *Endpoint[S, R]) TryRecv() (R, error) {
	return ep.receiver.TryRecv()
}

// Close releases both of this endpoint's handles. It is idempotent and
// safe from any goroutine; a Recv waiting on this endpoint observes the
// close and returns [ErrDisconnected].
//
// The counterpart is not destroyed. It observes the close through its
// own operations: its sends start failing with [*SendError], and its
// receives drain whatever this endpoint sent before closing, then
// return [ErrDisconnected].
func (ep *Endpoint[S, R]) Close() {
	ep.sender.Close()
	ep.receiver.Close()
}
