// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Videology Inc.

package fslp

import (
	"strings"
	"time"
)

// Typed entry points for the camera operations the surrounding tooling
// actually issues. Each is a thin translation over the catalog; none
// hold state.

// CameraSN reads the camera module serial number.
func (c *Client) CameraSN() (uint32, error) {
	return c.GetInt(BosonGetCameraSN)
}

// SensorSN reads the sensor die serial number.
func (c *Client) SensorSN() (uint32, error) {
	return c.GetInt(BosonGetSensorSN)
}

// CameraPN reads the camera part number string, trimmed of NUL padding.
func (c *Client) CameraPN() (string, error) {
	shape, _ := Shape(BosonGetCameraPN)
	result, err := c.Dispatch(BosonGetCameraPN, nil, shape.ResultBytes)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(result), "\x00"), nil
}

// SoftwareRev reads the firmware revision triple.
func (c *Client) SoftwareRev() (major, minor, patch uint32, err error) {
	result, err := c.Dispatch(BosonGetSoftwareRev, nil, 12)
	if err != nil {
		return 0, 0, 0, err
	}
	major, _ = Uint32(result, 0)
	minor, _ = Uint32(result, 4)
	patch, _ = Uint32(result, 8)
	return major, minor, patch, nil
}

// RunFFC triggers a flat-field correction and waits for the shutter
// cycle to settle.
func (c *Client) RunFFC() error {
	return c.Run(BosonRunFFC)
}

// MipiState reads the current MIPI transmitter state.
func (c *Client) MipiState() (MipiState, error) {
	v, err := c.GetInt(DvoGetMipiState)
	return MipiState(v), err
}

// SetMipiState sets the MIPI transmitter state.
func (c *Client) SetMipiState(state MipiState) error {
	return c.SetInt(DvoSetMipiState, uint32(state))
}

// ApplyCustomSettings commits staged DVO settings on the camera.
func (c *Client) ApplyCustomSettings() error {
	return c.Run(DvoApplyCustomSettings)
}

// SetTelemetryState enables or disables the telemetry line appended to
// the video frame.
func (c *Client) SetTelemetryState(state Enable) error {
	return c.SetInt(TelemetrySetState, uint32(state))
}

// TelemetryState reads whether the telemetry line is enabled.
func (c *Client) TelemetryState() (Enable, error) {
	v, err := c.GetInt(TelemetryGetState)
	return Enable(v), err
}

// SetAgcState enables or disables automatic gain control.
func (c *Client) SetAgcState(state Enable) error {
	return c.SetInt(AgcSetState, uint32(state))
}

// AgcState reads whether automatic gain control is enabled.
func (c *Client) AgcState() (Enable, error) {
	v, err := c.GetInt(AgcGetState)
	return Enable(v), err
}

// StreamConfig selects the pipeline tap and pixel encoding for
// StartMipiStream.
type StreamConfig struct {
	Type    DvoType
	Format  DvoOutputFormat
	MuxType MuxType
}

// ColorStream is the YCbCr configuration the color pipeline uses.
var ColorStream = StreamConfig{Type: DvoTypeColor, Format: DvoFormatYCbCr, MuxType: MuxTypeColor}

// RawStream is the 16-bit radiometric configuration.
var RawStream = StreamConfig{Type: DvoTypeTLinear, Format: DvoFormatIR16, MuxType: MuxTypeMono14}

// StartMipiStream runs the camera's MIPI bring-up sequence: transmitter
// off, pipeline tap and formats staged, mux routed, interface selected,
// then the transmitter activated. The order matters; the camera rejects
// routing changes while the transmitter is live.
func (c *Client) StartMipiStream(cfg StreamConfig) error {
	steps := []struct {
		fn    FunctionCode
		value uint32
	}{
		{DvoSetMipiState, uint32(MipiStateOff)},
		{DvoSetType, uint32(cfg.Type)},
		{DvoSetOutputFormat, uint32(cfg.Format)},
	}
	for _, step := range steps {
		if err := c.SetInt(step.fn, step.value); err != nil {
			return err
		}
	}
	if cfg.Format == DvoFormatIR16 {
		if err := c.SetInt(DvoSetOutputIR16Format, uint32(Ir16Format16Bit)); err != nil {
			return err
		}
	}
	if err := c.SetMuxType(MuxOutputMIPITX, MuxSourceIR, cfg.MuxType); err != nil {
		return err
	}
	if err := c.SetInt(DvoSetOutputInterface, uint32(DvoInterfaceMIPI)); err != nil {
		return err
	}
	if err := c.SetInt(DvoSetMipiClockLaneMode, uint32(ClockLaneContinuous)); err != nil {
		return err
	}
	// Activation takes several frame times before the link is stable.
	return c.SetIntWait(DvoSetMipiState, uint32(MipiStateActive), 400*time.Millisecond)
}

// StopMipiStream shuts the MIPI transmitter down.
func (c *Client) StopMipiStream() error {
	return c.SetMipiState(MipiStateOff)
}
