// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bichan

import (
	"code.hybscloud.com/bichan/mpsc"
	"code.hybscloud.com/iox"
)

// The error surface is the transport's, re-exported so callers never
// import the collaborator package. Every failure is returned as a value;
// nothing is logged, retried, or swallowed inside the library.
var (
	// ErrDisconnected reports that the counterpart is gone: its sender
	// released (and the buffer drained) on the receive path, or its
	// receiver released on the send path.
	ErrDisconnected = mpsc.ErrDisconnected

	// ErrWouldBlock is returned by TryRecv when no message is buffered
	// but the counterpart is still connected, or its state is not yet
	// knowable. It is the iox transport sentinel, shared with the rest
	// of the ecosystem.
	ErrWouldBlock = mpsc.ErrWouldBlock
)

// SendError carries the value a failed Send could not deliver. It
// unwraps to [ErrDisconnected].
type SendError[T any] = mpsc.SendError[T]

// IsDisconnected reports whether err is a disconnect failure from any
// operation, including a Send's [*SendError].
func IsDisconnected(err error) bool {
	return mpsc.IsDisconnected(err)
}

// IsWouldBlock reports whether err is the empty-buffer result of a
// TryRecv, as opposed to a disconnect.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
