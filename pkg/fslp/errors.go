// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Videology Inc.

package fslp

import (
	"errors"
	"fmt"
)

// Sentinel kinds for errors.Is matching. Each concrete error type below
// unwraps to one of these.
var (
	ErrFrameTooLarge     = errors.New("fslp: frame payload too large")
	ErrBadMagic          = errors.New("fslp: magic token not found")
	ErrBufferOverflow    = errors.New("fslp: buffer overflow")
	ErrSequenceMismatch  = errors.New("fslp: sequence mismatch")
	ErrCommandIDMismatch = errors.New("fslp: command ID mismatch")
	ErrShortResponse     = errors.New("fslp: response shorter than header")
)

// FrameTooLargeError reports a payload that cannot fit in one frame.
type FrameTooLargeError struct {
	Size int
}

func (e *FrameTooLargeError) Error() string {
	return fmt.Sprintf("fslp: payload of %d bytes exceeds frame limit of %d", e.Size, MaxPayload)
}

func (e *FrameTooLargeError) Unwrap() error { return ErrFrameTooLarge }

// BadMagicError reports that the magic token was not seen within the
// resync budget.
type BadMagicError struct {
	Scanned int
}

func (e *BadMagicError) Error() string {
	return fmt.Sprintf("fslp: no magic token within %d bytes", e.Scanned)
}

func (e *BadMagicError) Unwrap() error { return ErrBadMagic }

// BufferOverflowError reports a marshalling access outside the payload
// buffer.
type BufferOverflowError struct {
	Offset int
	Need   int
	Size   int
}

func (e *BufferOverflowError) Error() string {
	return fmt.Sprintf("fslp: %d-byte access at offset %d outside %d-byte buffer", e.Need, e.Offset, e.Size)
}

func (e *BufferOverflowError) Unwrap() error { return ErrBufferOverflow }

// CommError wraps a transport failure. Op is "read" or "write".
type CommError struct {
	Op  string
	Err error
}

func (e *CommError) Error() string {
	return fmt.Sprintf("fslp: transport %s: %v", e.Op, e.Err)
}

func (e *CommError) Unwrap() error { return e.Err }

// SequenceMismatchError reports a response whose echoed sequence did
// not match the request, on both the first read and the single retry.
type SequenceMismatchError struct {
	Function FunctionCode
	Sent     uint32
	Received uint32
}

func (e *SequenceMismatchError) Error() string {
	return fmt.Sprintf("fslp: %s: sequence mismatch: sent %d, received %d", e.Function, e.Sent, e.Received)
}

func (e *SequenceMismatchError) Unwrap() error { return ErrSequenceMismatch }

// CommandIDMismatchError reports a response echoing a different
// function code than the request. This is a channel desync, never
// retried.
type CommandIDMismatchError struct {
	Sent     FunctionCode
	Received FunctionCode
}

func (e *CommandIDMismatchError) Error() string {
	return fmt.Sprintf("fslp: command ID mismatch: sent %s, received %s", e.Sent, e.Received)
}

func (e *CommandIDMismatchError) Unwrap() error { return ErrCommandIDMismatch }

// StatusError carries a non-success result code returned by the
// camera. The code is propagated verbatim so callers can branch on its
// category.
type StatusError struct {
	Function FunctionCode
	Sequence uint32
	Code     ResultCode
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fslp: %s (seq %d): %s", e.Function, e.Sequence, e.Code)
}

// RemoteStatus extracts the result code from an error chain. ok is
// false for local (framing, transport, correlation) failures.
func RemoteStatus(err error) (ResultCode, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}
