// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrDisconnected reports that the other side of the channel is gone:
// all sender handles released (and the buffer drained) on the receiving
// side, or the receiver handle released on the sending side.
var ErrDisconnected = errors.New("mpsc: channel disconnected")

// ErrWouldBlock is the transport's would-block sentinel, re-exported from
// [code.hybscloud.com/iox]. TryRecv returns it when the buffer is empty
// but the channel is still connected, or its state is not yet knowable.
var ErrWouldBlock = iox.ErrWouldBlock

// SendError is returned by Send when the value cannot be delivered. It
// carries the rejected value so no data is silently lost; the caller can
// recover or re-route it.
type SendError[T any] struct {
	Value T
}

// Error implements the error interface.
func (e *SendError[T]) Error() string {
	return fmt.Sprintf("mpsc: send of %T on a disconnected channel", e.Value)
}

// Unwrap makes errors.Is(err, ErrDisconnected) hold for every SendError.
func (e *SendError[T]) Unwrap() error {
	return ErrDisconnected
}

// IsDisconnected reports whether err is a disconnect failure, from either
// the sending or the receiving side.
func IsDisconnected(err error) bool {
	return errors.Is(err, ErrDisconnected)
}
