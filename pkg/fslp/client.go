// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Videology Inc.

package fslp

import (
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/rs/zerolog"
)

// Client is an FSLP command session over a byte channel. It owns the
// sequence counter and serializes transactions: the protocol is strictly
// half duplex, and response correlation assumes exactly one command in
// flight.
//
// Timeout policy belongs to the transport. If the underlying channel
// can block forever, configure its read timeout (serial ports, network
// connections) before handing it to NewClient; an expired read surfaces
// as a CommError.
type Client struct {
	conn io.ReadWriter
	log  zerolog.Logger

	mu    sync.Mutex
	seq   uint32
	fr    *FrameReader
	trace *TraceWriter

	flushBeforeSend bool
	maxResync       int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger attaches a logger for wire-level diagnostics. The default
// discards everything.
func WithLogger(log zerolog.Logger) ClientOption {
	return func(c *Client) { c.log = log }
}

// WithFlushBeforeSend drains stale bytes from the channel before each
// command by reading until the idle sentinel. Optional hardening for
// I2C links where a previous session may have left an unread response
// in the camera's TX buffer.
func WithFlushBeforeSend() ClientOption {
	return func(c *Client) { c.flushBeforeSend = true }
}

// WithResyncLimit overrides the number of bytes the frame reader will
// scan for the magic token before giving up.
func WithResyncLimit(n int) ClientOption {
	return func(c *Client) { c.maxResync = n }
}

// WithTrace records every transaction to tw as CBOR records.
func WithTrace(tw *TraceWriter) ClientOption {
	return func(c *Client) { c.trace = tw }
}

// NewClient starts a session on conn. The sequence counter starts at a
// randomized value so responses from a previous session cannot alias
// fresh commands after a host restart.
func NewClient(conn io.ReadWriter, opts ...ClientOption) *Client {
	c := &Client{
		conn:      conn,
		log:       zerolog.Nop(),
		seq:       rand.Uint32() >> 23,
		maxResync: defaultMaxResync,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.fr = newFrameReader(conn, c.log, c.maxResync)
	return c
}

// Dispatch runs one complete command/response transaction: next
// sequence number, 12-byte header plus args framed and written,
// one framed response read back and validated. On success it returns
// exactly expect result bytes.
//
// Validation order matches the camera firmware: sequence first (one
// bounded re-read, since the channel may hold one stale trailing
// response), then function code (fatal, a desync), then remote status
// (returned as a StatusError carrying the verbatim code). The write is
// never retried.
func (c *Client) Dispatch(fn FunctionCode, args []byte, expect int) ([]byte, error) {
	if len(args) > MaxArgBytes {
		return nil, &BufferOverflowError{Offset: PayloadHeaderSize, Need: len(args), Size: MaxPayload}
	}
	if expect < 0 || expect > MaxArgBytes {
		return nil, &BufferOverflowError{Offset: PayloadHeaderSize, Need: expect, Size: MaxPayload}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	seq := c.seq
	c.seq++

	payload := make([]byte, PayloadHeaderSize+len(args))
	PutUint32(payload, 0, seq)
	PutUint32(payload, 4, uint32(fn))
	PutUint32(payload, 8, statusPlaceholder)
	copy(payload[PayloadHeaderSize:], args)

	if c.flushBeforeSend {
		if err := c.flushStale(); err != nil {
			return nil, err
		}
	}

	frame, err := EncodeFrame(payload)
	if err != nil {
		return nil, err
	}
	if _, err := c.conn.Write(frame); err != nil {
		c.trace.record(seq, fn, args, nil, 0, err)
		return nil, &CommError{Op: "write", Err: err}
	}

	c.log.Debug().
		Uint32("seq", seq).
		Stringer("function", fn).
		Int("args", len(args)).
		Int("expect", expect).
		Msg("command dispatched")

	result, status, err := c.receive(seq, fn, expect)
	c.trace.record(seq, fn, args, result, status, err)
	return result, err
}

// receive reads and validates one response, re-reading a single time
// when the echoed sequence belongs to an earlier command.
func (c *Client) receive(seq uint32, fn FunctionCode, expect int) ([]byte, ResultCode, error) {
	payload, echoSeq, err := c.readResponse(expect)
	if err != nil {
		return nil, 0, err
	}

	if echoSeq != seq {
		c.log.Warn().
			Uint32("sent", seq).
			Uint32("received", echoSeq).
			Msg("stale response sequence, re-reading once")
		payload, echoSeq, err = c.readResponse(expect)
		if err != nil {
			return nil, 0, err
		}
		if echoSeq != seq {
			return nil, 0, &SequenceMismatchError{Function: fn, Sent: seq, Received: echoSeq}
		}
	}

	echoFn, _ := Uint32(payload, 4)
	if FunctionCode(echoFn) != fn {
		return nil, 0, &CommandIDMismatchError{Sent: fn, Received: FunctionCode(echoFn)}
	}

	rawStatus, _ := Uint32(payload, 8)
	status := ResultCode(rawStatus)
	if status != ResultSuccess {
		return nil, status, &StatusError{Function: fn, Sequence: seq, Code: status}
	}

	result := payload[PayloadHeaderSize:]
	if len(result) < expect {
		return nil, status, fmt.Errorf("%w: %d result bytes, want %d", ErrShortResponse, len(result), expect)
	}
	return result[:expect:expect], status, nil
}

// readResponse reads one framed response payload and returns it along
// with the echoed sequence number.
func (c *Client) readResponse(expect int) ([]byte, uint32, error) {
	payload, err := c.fr.ReadFrame(PayloadHeaderSize + expect)
	if err != nil {
		return nil, 0, err
	}
	if len(payload) < PayloadHeaderSize {
		return nil, 0, fmt.Errorf("%w: %d bytes", ErrShortResponse, len(payload))
	}
	echoSeq, _ := Uint32(payload, 0)
	return payload, echoSeq, nil
}

// flushStale reads and discards bytes until the channel reports the
// idle sentinel (an I2C read of an empty camera TX buffer returns all
// ones). Bounded; hitting the bound is only a diagnostic, the command
// proceeds regardless.
func (c *Client) flushStale() error {
	var one [1]byte
	var window uint32
	for i := 0; i < c.maxResync; i++ {
		if _, err := io.ReadFull(c.conn, one[:]); err != nil {
			return &CommError{Op: "read", Err: err}
		}
		window = window<<8 | uint32(one[0])
		if window == statusPlaceholder {
			return nil
		}
	}
	c.log.Warn().Int("scanned", c.maxResync).Msg("idle sentinel not seen while flushing stale bytes")
	return nil
}
