// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Videology Inc.

package fslp

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// oneByteReader delivers a single byte per Read call, the way an I2C
// adapter polled byte-at-a-time behaves.
type oneByteReader struct {
	r io.Reader
}

func (o *oneByteReader) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	return o.r.Read(p)
}

func TestEncodeFrame(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    []byte
	}{
		{
			name:    "empty payload",
			payload: nil,
			want:    []byte{0x8E, 0xA1, 0x00, 0x00},
		},
		{
			name:    "short payload",
			payload: []byte{0xDE, 0xAD},
			want:    []byte{0x8E, 0xA1, 0x00, 0x02, 0xDE, 0xAD},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeFrame(tt.payload)
			if err != nil {
				t.Fatalf("EncodeFrame: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("frame mismatch: got % X, want % X", got, tt.want)
			}
		})
	}
}

func TestEncodeFrame_MaxPayload(t *testing.T) {
	frame, err := EncodeFrame(make([]byte, MaxPayload))
	if err != nil {
		t.Fatalf("EncodeFrame at limit: %v", err)
	}
	if frame[2] != 0x01 || frame[3] != 0x00 {
		t.Errorf("length field: got %02X %02X, want 01 00", frame[2], frame[3])
	}
}

func TestEncodeFrame_TooLarge(t *testing.T) {
	_, err := EncodeFrame(make([]byte, MaxPayload+1))
	if !errors.Is(err, ErrFrameTooLarge) {
		t.Fatalf("expected ErrFrameTooLarge, got %v", err)
	}
}

func TestReadFrame_RoundTrip(t *testing.T) {
	payloads := [][]byte{
		nil,
		{0x01},
		{0x00, 0x00, 0x00, 0x2A},
		bytes.Repeat([]byte{0x5A}, MaxPayload),
	}

	for _, payload := range payloads {
		frame, err := EncodeFrame(payload)
		if err != nil {
			t.Fatalf("EncodeFrame: %v", err)
		}
		got, err := NewFrameReader(bytes.NewReader(frame)).ReadFrame(len(payload))
		if err != nil {
			t.Fatalf("ReadFrame: %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("payload mismatch: got % X, want % X", got, payload)
		}
	}
}

func TestReadFrame_ByteAtATime(t *testing.T) {
	payload := []byte{0x11, 0x22, 0x33, 0x44}
	frame, _ := EncodeFrame(payload)

	got, err := NewFrameReader(&oneByteReader{r: bytes.NewReader(frame)}).ReadFrame(len(payload))
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload mismatch: got % X, want % X", got, payload)
	}
}

func TestReadFrame_Resync(t *testing.T) {
	tests := []struct {
		name   string
		prefix []byte
	}{
		{name: "leading noise", prefix: []byte{0x00, 0xFF, 0x42}},
		{name: "stray first magic byte", prefix: []byte{0x8E, 0x00}},
		{name: "split magic pair", prefix: []byte{0x8E, 0x8E}},
		{name: "idle fill", prefix: bytes.Repeat([]byte{0xFF}, 32)},
	}

	payload := []byte{0xCA, 0xFE}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, _ := EncodeFrame(payload)
			stream := append(append([]byte{}, tt.prefix...), frame...)
			got, err := NewFrameReader(bytes.NewReader(stream)).ReadFrame(len(payload))
			if err != nil {
				t.Fatalf("ReadFrame: %v", err)
			}
			if !bytes.Equal(got, payload) {
				t.Errorf("payload mismatch: got % X, want % X", got, payload)
			}
		})
	}
}

func TestReadFrame_NoMagic(t *testing.T) {
	// Endless junk with no magic token: the search must give up
	// within its budget rather than spin.
	junk := bytes.Repeat([]byte{0x55}, 4*defaultMaxResync)
	_, err := NewFrameReader(bytes.NewReader(junk)).ReadFrame(0)
	if !errors.Is(err, ErrBadMagic) {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}
}

func TestReadFrame_LengthMismatchStillReturnsPayload(t *testing.T) {
	// Declared length wins over the caller's expectation; the
	// disagreement is only a diagnostic.
	payload := []byte{0x01, 0x02, 0x03}
	frame, _ := EncodeFrame(payload)
	got, err := NewFrameReader(bytes.NewReader(frame)).ReadFrame(16)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload mismatch: got % X, want % X", got, payload)
	}
}

func TestReadFrame_DeclaredTooLarge(t *testing.T) {
	stream := []byte{0x8E, 0xA1, 0xFF, 0xFF}
	_, err := NewFrameReader(bytes.NewReader(stream)).ReadFrame(0)
	if !errors.Is(err, ErrFrameTooLarge) {
		t.Fatalf("expected ErrFrameTooLarge, got %v", err)
	}
}

func TestReadFrame_TruncatedPayload(t *testing.T) {
	frame, _ := EncodeFrame([]byte{0x01, 0x02, 0x03, 0x04})
	_, err := NewFrameReader(bytes.NewReader(frame[:6])).ReadFrame(4)
	var ce *CommError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CommError for truncated payload, got %v", err)
	}
}
