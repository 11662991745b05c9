// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Videology Inc.

// Package fslp implements the host side of the FLIR serial-link
// protocol (FSLP) used to configure Boson thermal camera modules.
//
// FSLP is a half-duplex command/response protocol over a byte channel
// (I2C in most carrier designs, UART on dev kits). Each transaction
// frames a 12-byte command header plus arguments, and the camera echoes
// the header back with a status code and any result bytes. This package
// provides the frame codec, field marshalling, the dispatching session
// client, and the typed command catalog.
package fslp

// Wire framing
const (
	MagicByte0 = 0x8E
	MagicByte1 = 0xA1

	// FrameHeaderSize is the two magic bytes plus the big-endian
	// u16 payload length.
	FrameHeaderSize = 4

	// MaxPayload is the largest payload a single frame may carry.
	MaxPayload = 256
)

// Command payload layout
const (
	// PayloadHeaderSize covers sequence, function code and status,
	// one big-endian u32 each.
	PayloadHeaderSize = 12

	// MaxArgBytes is the room left for command arguments after the
	// payload header.
	MaxArgBytes = MaxPayload - PayloadHeaderSize
)

// statusPlaceholder fills the status field of an outgoing command; the
// camera overwrites it with the real result code in the response.
const statusPlaceholder = 0xFFFFFFFF

// defaultMaxResync bounds the magic-token search so a dead or babbling
// channel cannot spin the reader forever.
const defaultMaxResync = 2 * (FrameHeaderSize + MaxPayload)

// MipiState values for DvoSetMipiState / DvoGetMipiState.
type MipiState uint32

const (
	MipiStateOff     MipiState = 0
	MipiStateStandby MipiState = 1
	MipiStateActive  MipiState = 2
)

// DvoType selects the video pipeline tap for DvoSetType.
type DvoType uint32

const (
	DvoTypeMono16  DvoType = 0
	DvoTypeColor   DvoType = 1
	DvoTypeMono8   DvoType = 2
	DvoTypeTLinear DvoType = 5
)

// DvoOutputFormat values for DvoSetOutputFormat.
type DvoOutputFormat uint32

const (
	DvoFormatIR16  DvoOutputFormat = 0
	DvoFormatMono8 DvoOutputFormat = 1
	DvoFormatRGB   DvoOutputFormat = 2
	DvoFormatYCbCr DvoOutputFormat = 3
)

// DvoOutputInterface values for DvoSetOutputInterface.
type DvoOutputInterface uint32

const (
	DvoInterfaceCMOS DvoOutputInterface = 0
	DvoInterfaceMIPI DvoOutputInterface = 1
)

// Ir16Format values for DvoSetOutputIR16Format.
type Ir16Format uint32

const (
	Ir16Format14Bit Ir16Format = 0
	Ir16Format16Bit Ir16Format = 1
)

// ClockLaneMode values for DvoSetMipiClockLaneMode.
type ClockLaneMode uint32

const (
	ClockLaneGated      ClockLaneMode = 0
	ClockLaneContinuous ClockLaneMode = 1
)

// MuxOutput names a DVO multiplexer output interface.
type MuxOutput uint32

const (
	MuxOutputLCD    MuxOutput = 0
	MuxOutputCMOS   MuxOutput = 1
	MuxOutputMIPITX MuxOutput = 2
)

// MuxSource names a DVO multiplexer input.
type MuxSource uint32

const (
	MuxSourceIR      MuxSource = 0
	MuxSourceVisible MuxSource = 1
)

// MuxType selects the pixel encoding routed through the multiplexer.
type MuxType uint32

const (
	MuxTypeMono14 MuxType = 0
	MuxTypeColor  MuxType = 1
	MuxTypeMono8  MuxType = 2
)

// Enable is the generic on/off argument used by telemetry and AGC
// switches.
type Enable uint32

const (
	Disabled Enable = 0
	Enabled  Enable = 1
)
