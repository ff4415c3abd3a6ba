// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bichan

import (
	"code.hybscloud.com/bichan/mpsc"
)

// Endpoint is one side of a bidirectional channel pair. It sends values
// of type S to its counterpart and receives values of type R from it;
// the counterpart is the same construction with S and R swapped.
//
// An endpoint owns exactly one sending handle and one receiving handle,
// bound at construction and never rebound. Concurrent Sends on one
// endpoint are safe (the transport is multi-producer); Recv and TryRecv
// must stay on a single goroutine at a time (single-consumer). Close is
// safe from any goroutine. The Endpoint value itself must not be copied.
type Endpoint[S, R any] struct {
	sender   *mpsc.Sender[S]
	receiver *mpsc.Receiver[R]
	serial   Serial
}

// New creates a connected pair of endpoints. The left endpoint sends T
// and receives U; the right endpoint mirrors it, sending U and receiving
// T. Each direction is an independent unbounded MPSC channel from
// [code.hybscloud.com/bichan/mpsc], so the two directions buffer and
// disconnect independently of each other.
//
// The two endpoints are each other's exclusive counterpart: both handles
// of both channels are held in the returned values and nowhere else.
// Construction cannot fail.
func New[T, U any]() (*Endpoint[T, U], *Endpoint[U, T]) {
	s := nextSerial()

	sendT, recvT := mpsc.New[T]()
	sendU, recvU := mpsc.New[U]()

	left := &Endpoint[T, U]{
		sender:   sendT,
		receiver: recvU,
		serial:   s,
	}
	right := &Endpoint[U, T]{
		sender:   sendU,
		receiver: recvT,
		serial:   s,
	}
	return left, right
}

// Serial returns the serial number assigned to this endpoint's pair.
// Both endpoints of one pair share the same serial.
func (ep *Endpoint[S, R]) Serial() Serial {
	return ep.serial
}
