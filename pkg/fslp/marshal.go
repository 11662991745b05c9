// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Videology Inc.

package fslp

import "encoding/binary"

// Field marshalling for command payloads. All multi-byte fields on the
// wire are big-endian. Every access is bounds-checked; an out-of-range
// read or write returns BufferOverflowError instead of touching memory
// outside the buffer.

// PutUint32 writes v big-endian at offset.
func PutUint32(buf []byte, offset int, v uint32) error {
	if offset < 0 || offset+4 > len(buf) {
		return &BufferOverflowError{Offset: offset, Need: 4, Size: len(buf)}
	}
	binary.BigEndian.PutUint32(buf[offset:offset+4], v)
	return nil
}

// Uint32 reads a big-endian u32 at offset.
func Uint32(buf []byte, offset int) (uint32, error) {
	if offset < 0 || offset+4 > len(buf) {
		return 0, &BufferOverflowError{Offset: offset, Need: 4, Size: len(buf)}
	}
	return binary.BigEndian.Uint32(buf[offset : offset+4]), nil
}

// PutUint16 writes v big-endian at offset.
func PutUint16(buf []byte, offset int, v uint16) error {
	if offset < 0 || offset+2 > len(buf) {
		return &BufferOverflowError{Offset: offset, Need: 2, Size: len(buf)}
	}
	binary.BigEndian.PutUint16(buf[offset:offset+2], v)
	return nil
}

// Uint16 reads a big-endian u16 at offset.
func Uint16(buf []byte, offset int) (uint16, error) {
	if offset < 0 || offset+2 > len(buf) {
		return 0, &BufferOverflowError{Offset: offset, Need: 2, Size: len(buf)}
	}
	return binary.BigEndian.Uint16(buf[offset : offset+2]), nil
}

// packUint32s marshals consecutive u32 fields into a fresh argument
// buffer sized for the command table entry.
func packUint32s(values ...uint32) []byte {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.BigEndian.PutUint32(buf[4*i:], v)
	}
	return buf
}
