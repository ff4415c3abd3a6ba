// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Receiver is the consuming handle of a channel. It is single-consumer:
// at most one goroutine may call Recv or TryRecv at a time. Close is the
// exception and is safe from any goroutine, including while a Recv is
// waiting.
type Receiver[T any] struct {
	core *core[T]

	// closed guards this handle, same claim discipline as Sender.closed.
	closed atomix.Uint32
}

// TryRecv returns the oldest buffered value without waiting.
//
// With nothing buffered it returns [ErrWouldBlock] while any sender
// handle is live, and [ErrDisconnected] once the sending side is fully
// released and the buffer has drained. After this receiver's own Close,
// every call returns [ErrDisconnected].
func (r *Receiver[T]) TryRecv() (T, error) {
	var zero T
	if r.closed.Load() != 0 {
		return zero, ErrDisconnected
	}
	if v, ok := r.core.dequeue(); ok {
		return v, nil
	}
	if r.core.drained() {
		// A send may have landed between the failed dequeue and the
		// drained check. Zero live senders orders after every
		// enqueue, so one more dequeue settles the buffer for good.
		if v, ok := r.core.dequeue(); ok {
			return v, nil
		}
		return zero, ErrDisconnected
	}
	return zero, ErrWouldBlock
}

// Recv returns the oldest buffered value, waiting until one arrives.
// Values are delivered in the order their sends were published, and
// everything buffered before a disconnect is still delivered; only then
// does Recv start returning [ErrDisconnected].
//
// Recv blocks only the calling goroutine. It waits past the would-block
// boundary with adaptive backoff (iox.Backoff), creating no goroutines
// and no runtime channels. The wait ends when a value arrives, when the
// last sender handle closes, or when this receiver is closed.
func (r *Receiver[T]) Recv() (T, error) {
	var bo iox.Backoff
	for {
		v, err := r.TryRecv()
		if err == nil {
			return v, nil
		}
		if !iox.IsWouldBlock(err) {
			var zero T
			return zero, err
		}
		bo.Wait()
	}
}

// Close releases the receiving end. It is idempotent. Buffered values
// that were never received are discarded, and every send after this
// point fails with a [*SendError] carrying the rejected value.
func (r *Receiver[T]) Close() {
	if r.closed.Add(1) != 1 {
		return
	}
	r.core.recvReleased.Add(1)
}
