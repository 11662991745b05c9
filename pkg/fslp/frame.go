// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Videology Inc.

package fslp

import (
	"io"

	"github.com/rs/zerolog"
)

// EncodeFrame wraps a payload in the FSLP wire framing: two magic
// bytes followed by a big-endian u16 payload length. A zero-length
// payload is a valid frame.
func EncodeFrame(payload []byte) ([]byte, error) {
	if len(payload) > MaxPayload {
		return nil, &FrameTooLargeError{Size: len(payload)}
	}
	frame := make([]byte, 0, FrameHeaderSize+len(payload))
	frame = append(frame, MagicByte0, MagicByte1)
	frame = append(frame, byte(len(payload)>>8), byte(len(payload)))
	frame = append(frame, payload...)
	return frame, nil
}

// FrameReader extracts framed payloads from a byte channel. The reader
// hunts for the magic token through a four-byte sliding window, so it
// recovers alignment after a desync even when the token lands mid
// stream or the channel delivers partial reads.
type FrameReader struct {
	r         io.Reader
	log       zerolog.Logger
	maxResync int
}

// NewFrameReader returns a FrameReader with diagnostics discarded and
// the default resync budget.
func NewFrameReader(r io.Reader) *FrameReader {
	return newFrameReader(r, zerolog.Nop(), defaultMaxResync)
}

func newFrameReader(r io.Reader, log zerolog.Logger, maxResync int) *FrameReader {
	if maxResync <= 0 {
		maxResync = defaultMaxResync
	}
	return &FrameReader{r: r, log: log, maxResync: maxResync}
}

// ReadFrame reads one frame and returns its payload. expected is the
// payload length the caller anticipates; if the declared length
// disagrees, a warning is logged and the declared length wins. The
// magic search gives up after the resync budget and returns
// BadMagicError. Transport failures surface as CommError.
func (fr *FrameReader) ReadFrame(expected int) ([]byte, error) {
	var window [FrameHeaderSize]byte
	var one [1]byte

	scanned := 0
	filled := 0
	for {
		if scanned >= fr.maxResync {
			return nil, &BadMagicError{Scanned: scanned}
		}
		if _, err := io.ReadFull(fr.r, one[:]); err != nil {
			return nil, &CommError{Op: "read", Err: err}
		}
		scanned++

		copy(window[:], window[1:])
		window[FrameHeaderSize-1] = one[0]
		if filled < FrameHeaderSize {
			filled++
		}
		if filled == FrameHeaderSize && window[0] == MagicByte0 && window[1] == MagicByte1 {
			break
		}
	}

	declared := int(window[2])<<8 | int(window[3])
	if declared > MaxPayload {
		return nil, &FrameTooLargeError{Size: declared}
	}
	if declared != expected {
		fr.log.Warn().
			Int("declared", declared).
			Int("expected", expected).
			Msg("frame length disagrees with expected response size")
	}

	payload := make([]byte, declared)
	if _, err := io.ReadFull(fr.r, payload); err != nil {
		return nil, &CommError{Op: "read", Err: err}
	}
	return payload, nil
}
