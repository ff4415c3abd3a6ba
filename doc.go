// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bichan provides bidirectional in-process channels. Each side
// can send to and receive from its counterpart.
//
// [New] pairs two unidirectional channels and cross-wires their handles
// into two [Endpoint] values, left and right. Whatever one endpoint
// sends, the other receives, and vice versa.
//
// # Architecture
//
//   - Transport: two independent unbounded MPSC queues via [code.hybscloud.com/bichan/mpsc], one per direction.
//   - Operations: [Endpoint.Send] (never blocks), [Endpoint.Recv] (blocks until data or disconnect), [Endpoint.TryRecv] (never blocks), [Endpoint.Close].
//   - Ordering: FIFO per direction. The two directions are independent buffers with no relative order.
//   - Errors: returned as values, never handled internally. [*SendError] carries the undelivered value; receives fail with [ErrDisconnected] only after draining; [Endpoint.TryRecv] distinguishes [ErrWouldBlock] from [ErrDisconnected].
//
// # Concurrency
//
// The library is concurrency-agnostic: it creates no goroutines and
// blocks only the goroutine calling [Endpoint.Recv]. Per endpoint,
// concurrent Sends are safe (the transport is multi-producer) while
// Recv and TryRecv are single-consumer, one goroutine at a time. There
// is no timeout or cancellation primitive; a pending Recv ends with a
// message, a counterpart disconnect, or the endpoint's own Close.
// Callers needing timeouts layer them outside, in their own scheduler.
//
// # Lifecycle
//
// A pair is created atomically and identified by a shared [Serial].
// Each endpoint is closed independently by its owner. Closing releases
// both of its handles: the counterpart's sends begin to fail, and the
// counterpart's receives drain the remaining buffer before reporting
// [ErrDisconnected]. Closing one endpoint never tears down the other.
//
// # Example
//
//	left, right := bichan.New[int, string]()
//
//	if err := left.Send(1); err != nil {
//		// counterpart already gone
//	}
//	n, _ := right.Recv() // n == 1
//
//	_ = right.Send("pong")
//	s, _ := left.Recv() // s == "pong"
package bichan
