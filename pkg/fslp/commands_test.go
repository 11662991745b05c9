// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Videology Inc.

package fslp

import (
	"bytes"
	"testing"
)

func TestSetMuxType_WireArguments(t *testing.T) {
	cam := newMockCamera(t)
	cam.respond = echoSuccess(nil)
	c := NewClient(cam)

	if err := c.SetMuxType(MuxOutputMIPITX, MuxSourceIR, MuxTypeColor); err != nil {
		t.Fatalf("SetMuxType: %v", err)
	}
	cmd := cam.commands[0]
	if cmd.fn != DvoMuxSetType {
		t.Errorf("function: got %v, want dvoMuxSetType", cmd.fn)
	}
	want := packUint32s(uint32(MuxOutputMIPITX), uint32(MuxSourceIR), uint32(MuxTypeColor))
	if !bytes.Equal(cmd.args, want) {
		t.Errorf("args: got % X, want % X", cmd.args, want)
	}
}

func TestGetMuxType_DecodesPair(t *testing.T) {
	cam := newMockCamera(t)
	cam.respond = echoSuccess(packUint32s(uint32(MuxSourceIR), uint32(MuxTypeMono14)))
	c := NewClient(cam)

	source, typ, err := c.GetMuxType(MuxOutputMIPITX)
	if err != nil {
		t.Fatalf("GetMuxType: %v", err)
	}
	if source != MuxSourceIR || typ != MuxTypeMono14 {
		t.Errorf("got (%d, %d), want (%d, %d)", source, typ, MuxSourceIR, MuxTypeMono14)
	}
	if !bytes.Equal(cam.commands[0].args, packUint32s(uint32(MuxOutputMIPITX))) {
		t.Errorf("output argument: got % X", cam.commands[0].args)
	}
}

func TestCameraPN_TrimsPadding(t *testing.T) {
	cam := newMockCamera(t)
	pn := make([]byte, 20)
	copy(pn, "21640A4-Y")
	cam.respond = echoSuccess(pn)
	c := NewClient(cam)

	got, err := c.CameraPN()
	if err != nil {
		t.Fatalf("CameraPN: %v", err)
	}
	if got != "21640A4-Y" {
		t.Errorf("part number: got %q", got)
	}
}

func TestSoftwareRev_Decode(t *testing.T) {
	cam := newMockCamera(t)
	cam.respond = echoSuccess(packUint32s(3, 2, 17))
	c := NewClient(cam)

	major, minor, patch, err := c.SoftwareRev()
	if err != nil {
		t.Fatalf("SoftwareRev: %v", err)
	}
	if major != 3 || minor != 2 || patch != 17 {
		t.Errorf("revision: got %d.%d.%d, want 3.2.17", major, minor, patch)
	}
}

func TestStartMipiStream_Sequence(t *testing.T) {
	cam := newMockCamera(t)
	cam.respond = echoSuccess(nil)
	c := NewClient(cam)

	cfg := ColorStream
	if err := c.StartMipiStream(cfg); err != nil {
		t.Fatalf("StartMipiStream: %v", err)
	}

	want := []FunctionCode{
		DvoSetMipiState, // off first
		DvoSetType,
		DvoSetOutputFormat,
		DvoMuxSetType,
		DvoSetOutputInterface,
		DvoSetMipiClockLaneMode,
		DvoSetMipiState, // then active
	}
	if len(cam.commands) != len(want) {
		t.Fatalf("commands: got %d, want %d", len(cam.commands), len(want))
	}
	for i, fn := range want {
		if cam.commands[i].fn != fn {
			t.Errorf("step %d: got %v, want %v", i, cam.commands[i].fn, fn)
		}
	}
	first := cam.commands[0]
	if !bytes.Equal(first.args, packUint32s(uint32(MipiStateOff))) {
		t.Errorf("bring-up must start with the transmitter off, args % X", first.args)
	}
	last := cam.commands[len(cam.commands)-1]
	if !bytes.Equal(last.args, packUint32s(uint32(MipiStateActive))) {
		t.Errorf("bring-up must end with activation, args % X", last.args)
	}
}

func TestStartMipiStream_RawAddsIR16Format(t *testing.T) {
	cam := newMockCamera(t)
	cam.respond = echoSuccess(nil)
	c := NewClient(cam)

	if err := c.StartMipiStream(RawStream); err != nil {
		t.Fatalf("StartMipiStream: %v", err)
	}
	found := false
	for _, cmd := range cam.commands {
		if cmd.fn == DvoSetOutputIR16Format {
			found = true
		}
	}
	if !found {
		t.Error("IR16 stream did not configure the IR16 output format")
	}
}

func TestShape_TableConsistency(t *testing.T) {
	for fn, shape := range commandShapes {
		if _, ok := functionNames[fn]; !ok {
			t.Errorf("%v catalogued without a name", fn)
		}
		if shape.ArgBytes < 0 || shape.ArgBytes > MaxArgBytes {
			t.Errorf("%v: arg bytes %d out of range", fn, shape.ArgBytes)
		}
		if shape.ResultBytes < 0 || shape.ResultBytes > MaxArgBytes {
			t.Errorf("%v: result bytes %d out of range", fn, shape.ResultBytes)
		}
	}
}

func TestFunctionByName_RoundTrip(t *testing.T) {
	for _, fn := range Functions() {
		got, ok := FunctionByName(fn.String())
		if !ok {
			t.Errorf("%v: name %q did not resolve", uint32(fn), fn.String())
			continue
		}
		if got != fn {
			t.Errorf("%q resolved to 0x%08X, want 0x%08X", fn.String(), uint32(got), uint32(fn))
		}
	}

	if _, ok := FunctionByName("noSuchFunction"); ok {
		t.Error("unknown name resolved")
	}
}

func TestFunctionCode_StringFallback(t *testing.T) {
	if got := FunctionCode(0x00FF0001).String(); got != "0x00FF0001" {
		t.Errorf("got %q", got)
	}
	if got := BosonGetCameraSN.String(); got != "bosonGetCameraSN" {
		t.Errorf("got %q", got)
	}
}
