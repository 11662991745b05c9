// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Videology Inc.

package fslp

import "time"

// CommandShape describes a catalogued command: how many argument bytes
// it sends, how many result bytes its response carries, and how long
// the camera needs to settle after acknowledging it. Some camera
// operations complete asynchronously relative to the ack, so set-side
// wrappers sleep for the settle time before returning.
//
// The typed wrappers below derive everything from this table; the
// original SDK hand-copies a near-identical wrapper per function
// instead.
type CommandShape struct {
	ArgBytes    int
	ResultBytes int
	Settle      time.Duration
}

var commandShapes = map[FunctionCode]CommandShape{
	TelemetrySetState:               {ArgBytes: 4},
	TelemetryGetState:               {ResultBytes: 4},
	TelemetrySetLocation:            {ArgBytes: 4},
	TelemetryGetLocation:            {ResultBytes: 4},
	TelemetrySetPacking:             {ArgBytes: 4},
	TelemetryGetPacking:             {ResultBytes: 4},
	TelemetrySetMipiEmbeddedDataTag: {ArgBytes: 4},
	TelemetryGetMipiEmbeddedDataTag: {ResultBytes: 4},

	BosonGetCameraSN:      {ResultBytes: 4},
	BosonGetCameraPN:      {ResultBytes: 20},
	BosonGetSensorSN:      {ResultBytes: 4},
	BosonRunFFC:           {Settle: time.Second},
	BosonGetSoftwareRev:   {ResultBytes: 12},
	BosonGetBootTimestamp: {ResultBytes: 4},

	DvoSetOutputInterface:   {ArgBytes: 4, Settle: 100 * time.Millisecond},
	DvoGetOutputInterface:   {ResultBytes: 4},
	DvoSetType:              {ArgBytes: 4, Settle: 100 * time.Millisecond},
	DvoGetType:              {ResultBytes: 4},
	DvoSetOutputFormat:      {ArgBytes: 4, Settle: 5 * time.Millisecond},
	DvoGetOutputFormat:      {ResultBytes: 4},
	DvoSetOutputIR16Format:  {ArgBytes: 4, Settle: 5 * time.Millisecond},
	DvoGetOutputIR16Format:  {ResultBytes: 4},
	DvoSetMipiState:         {ArgBytes: 4, Settle: 5 * time.Millisecond},
	DvoApplyCustomSettings:  {Settle: 200 * time.Millisecond},
	DvoGetMipiState:         {ResultBytes: 4},
	DvoSetMipiClockLaneMode: {ArgBytes: 4, Settle: 5 * time.Millisecond},
	DvoGetMipiClockLaneMode: {ResultBytes: 4},

	AgcSetPercentPerPixel: {ArgBytes: 4},
	AgcGetPercentPerPixel: {ResultBytes: 4},
	AgcSetMaxGain:         {ArgBytes: 4},
	AgcGetMaxGain:         {ResultBytes: 4},
	AgcSetGamma:           {ArgBytes: 4},
	AgcGetGamma:           {ResultBytes: 4},
	AgcSetState:           {ArgBytes: 4},
	AgcGetState:           {ResultBytes: 4},

	DvoMuxSetType: {ArgBytes: 12, Settle: 5 * time.Millisecond},
	DvoMuxGetType: {ArgBytes: 4, ResultBytes: 8},
}

// Shape looks up the catalogued shape for a function code.
func Shape(fn FunctionCode) (CommandShape, bool) {
	shape, ok := commandShapes[fn]
	return shape, ok
}

// SetInt sends a single-u32 set command and waits the catalogued
// settle time after the ack.
func (c *Client) SetInt(fn FunctionCode, value uint32) error {
	shape, _ := Shape(fn)
	return c.SetIntWait(fn, value, shape.Settle)
}

// SetIntWait is SetInt with an explicit settle time, for callers that
// know a transition needs longer than the catalogued default (MIPI
// activation, for one).
func (c *Client) SetIntWait(fn FunctionCode, value uint32, settle time.Duration) error {
	if _, err := c.Dispatch(fn, packUint32s(value), 0); err != nil {
		return err
	}
	if settle > 0 {
		time.Sleep(settle)
	}
	return nil
}

// GetInt sends a get command with no arguments and decodes the
// four-byte result.
func (c *Client) GetInt(fn FunctionCode) (uint32, error) {
	result, err := c.Dispatch(fn, nil, 4)
	if err != nil {
		return 0, err
	}
	return Uint32(result, 0)
}

// Run sends a command that carries no arguments and returns no result
// beyond the status, waiting the catalogued settle time.
func (c *Client) Run(fn FunctionCode) error {
	shape, _ := Shape(fn)
	if _, err := c.Dispatch(fn, nil, 0); err != nil {
		return err
	}
	if shape.Settle > 0 {
		time.Sleep(shape.Settle)
	}
	return nil
}

// SetMuxType routes a multiplexer output to a source with a pixel
// encoding: three consecutive u32 arguments.
func (c *Client) SetMuxType(output MuxOutput, source MuxSource, typ MuxType) error {
	args := packUint32s(uint32(output), uint32(source), uint32(typ))
	if _, err := c.Dispatch(DvoMuxSetType, args, 0); err != nil {
		return err
	}
	if shape, ok := Shape(DvoMuxSetType); ok && shape.Settle > 0 {
		time.Sleep(shape.Settle)
	}
	return nil
}

// GetMuxType reads the current source and pixel encoding routed to a
// multiplexer output.
func (c *Client) GetMuxType(output MuxOutput) (MuxSource, MuxType, error) {
	result, err := c.Dispatch(DvoMuxGetType, packUint32s(uint32(output)), 8)
	if err != nil {
		return 0, 0, err
	}
	source, _ := Uint32(result, 0)
	typ, err := Uint32(result, 4)
	if err != nil {
		return 0, 0, err
	}
	return MuxSource(source), MuxType(typ), nil
}
