// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Videology Inc.

package fslp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// mockCamera emulates the device end of the link: every valid command
// frame written to it is parsed, and a configurable respond hook queues
// the response bytes the host will read back.
type mockCamera struct {
	t *testing.T

	rx       bytes.Buffer // bytes waiting for the host to read
	commands []hostCommand
	respond  func(m *mockCamera, seq uint32, fn FunctionCode, args []byte)

	writeCalls int
	writeErr   error
}

type hostCommand struct {
	seq  uint32
	fn   FunctionCode
	args []byte
}

func newMockCamera(t *testing.T) *mockCamera {
	return &mockCamera{t: t}
}

func (m *mockCamera) Write(p []byte) (int, error) {
	m.writeCalls++
	if m.writeErr != nil {
		return 0, m.writeErr
	}

	if len(p) < FrameHeaderSize+PayloadHeaderSize {
		m.t.Fatalf("command frame too short: %d bytes", len(p))
	}
	if p[0] != MagicByte0 || p[1] != MagicByte1 {
		m.t.Fatalf("bad magic on command frame: % X", p[:2])
	}
	declared := int(p[2])<<8 | int(p[3])
	payload := p[FrameHeaderSize:]
	if declared != len(payload) {
		m.t.Fatalf("declared length %d but %d payload bytes", declared, len(payload))
	}
	if got := binary.BigEndian.Uint32(payload[8:12]); got != statusPlaceholder {
		m.t.Fatalf("status placeholder: got 0x%08X", got)
	}

	cmd := hostCommand{
		seq:  binary.BigEndian.Uint32(payload[0:4]),
		fn:   FunctionCode(binary.BigEndian.Uint32(payload[4:8])),
		args: append([]byte(nil), payload[PayloadHeaderSize:]...),
	}
	m.commands = append(m.commands, cmd)
	if m.respond != nil {
		m.respond(m, cmd.seq, cmd.fn, cmd.args)
	}
	return len(p), nil
}

func (m *mockCamera) Read(p []byte) (int, error) {
	return m.rx.Read(p)
}

// queue frames one response payload into the host-visible read buffer.
func (m *mockCamera) queue(seq uint32, fn FunctionCode, status ResultCode, result []byte) {
	payload := make([]byte, PayloadHeaderSize+len(result))
	binary.BigEndian.PutUint32(payload[0:4], seq)
	binary.BigEndian.PutUint32(payload[4:8], uint32(fn))
	binary.BigEndian.PutUint32(payload[8:12], uint32(status))
	copy(payload[PayloadHeaderSize:], result)
	frame, err := EncodeFrame(payload)
	if err != nil {
		m.t.Fatalf("queue: %v", err)
	}
	m.rx.Write(frame)
}

// echoSuccess is the default happy-path camera: acknowledge everything
// with the given result bytes.
func echoSuccess(result []byte) func(*mockCamera, uint32, FunctionCode, []byte) {
	return func(m *mockCamera, seq uint32, fn FunctionCode, args []byte) {
		m.queue(seq, fn, ResultSuccess, result)
	}
}

func TestDispatch_GetCameraSN(t *testing.T) {
	cam := newMockCamera(t)
	cam.respond = echoSuccess([]byte{0x12, 0x34, 0x56, 0x78})
	c := NewClient(cam)

	sn, err := c.CameraSN()
	if err != nil {
		t.Fatalf("CameraSN: %v", err)
	}
	if sn != 0x12345678 {
		t.Errorf("serial: got 0x%08X, want 0x12345678", sn)
	}
	if len(cam.commands) != 1 {
		t.Fatalf("commands: got %d, want 1", len(cam.commands))
	}
	if cam.commands[0].fn != BosonGetCameraSN {
		t.Errorf("function: got %v, want bosonGetCameraSN", cam.commands[0].fn)
	}
	if len(cam.commands[0].args) != 0 {
		t.Errorf("args: got %d bytes, want none", len(cam.commands[0].args))
	}
}

func TestDispatch_SetMipiStateActive(t *testing.T) {
	cam := newMockCamera(t)
	cam.respond = echoSuccess(nil)
	c := NewClient(cam)

	if err := c.SetIntWait(DvoSetMipiState, uint32(MipiStateActive), 0); err != nil {
		t.Fatalf("SetIntWait: %v", err)
	}
	cmd := cam.commands[0]
	if cmd.fn != DvoSetMipiState {
		t.Errorf("function: got %v, want dvoSetMipiState", cmd.fn)
	}
	if !bytes.Equal(cmd.args, []byte{0x00, 0x00, 0x00, 0x02}) {
		t.Errorf("args: got % X, want 00 00 00 02", cmd.args)
	}
}

func TestDispatch_StatusPropagation(t *testing.T) {
	cam := newMockCamera(t)
	cam.respond = func(m *mockCamera, seq uint32, fn FunctionCode, args []byte) {
		m.queue(seq, fn, ResultBadCommandID, nil)
	}
	c := NewClient(cam)

	_, err := c.GetInt(BosonGetCameraSN)
	if err == nil {
		t.Fatal("expected status error")
	}
	code, ok := RemoteStatus(err)
	if !ok {
		t.Fatalf("not a status error: %v", err)
	}
	if code != 0x00000161 {
		t.Errorf("code: got 0x%08X, want 0x00000161", uint32(code))
	}
	if code.Name() == UnknownCodeName || code.Description() == "" {
		t.Errorf("0x161 must resolve in the table: %v", code)
	}

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %T", err)
	}
	if se.Function != BosonGetCameraSN {
		t.Errorf("error context function: got %v", se.Function)
	}
}

func TestDispatch_StaleResponseRetryRecovers(t *testing.T) {
	cam := newMockCamera(t)
	cam.respond = func(m *mockCamera, seq uint32, fn FunctionCode, args []byte) {
		// One stale trailing response from an earlier command,
		// then the real one.
		m.queue(seq-7, fn, ResultSuccess, []byte{0, 0, 0, 1})
		m.queue(seq, fn, ResultSuccess, []byte{0, 0, 0, 2})
	}
	c := NewClient(cam)

	v, err := c.GetInt(DvoGetMipiState)
	if err != nil {
		t.Fatalf("GetInt after one stale frame: %v", err)
	}
	if v != 2 {
		t.Errorf("value: got %d, want 2 (the second frame)", v)
	}
}

func TestDispatch_SequenceMismatchTwiceFails(t *testing.T) {
	cam := newMockCamera(t)
	cam.respond = func(m *mockCamera, seq uint32, fn FunctionCode, args []byte) {
		m.queue(seq-7, fn, ResultSuccess, []byte{0, 0, 0, 1})
		m.queue(seq-6, fn, ResultSuccess, []byte{0, 0, 0, 1})
	}
	c := NewClient(cam)

	_, err := c.GetInt(DvoGetMipiState)
	if !errors.Is(err, ErrSequenceMismatch) {
		t.Fatalf("expected ErrSequenceMismatch, got %v", err)
	}
	var sme *SequenceMismatchError
	if !errors.As(err, &sme) {
		t.Fatalf("expected SequenceMismatchError, got %T", err)
	}
	if sme.Sent != cam.commands[0].seq {
		t.Errorf("Sent: got %d, want %d", sme.Sent, cam.commands[0].seq)
	}
	if cam.rx.Len() != 0 {
		t.Errorf("exactly two frames must be consumed, %d bytes left", cam.rx.Len())
	}
}

func TestDispatch_CommandIDMismatchNoRetry(t *testing.T) {
	cam := newMockCamera(t)
	var second []byte
	cam.respond = func(m *mockCamera, seq uint32, fn FunctionCode, args []byte) {
		m.queue(seq, fn+1, ResultSuccess, []byte{0, 0, 0, 1})
		// A second, valid frame that must never be read.
		m.queue(seq, fn, ResultSuccess, []byte{0, 0, 0, 1})
		second, _ = EncodeFrame(make([]byte, PayloadHeaderSize+4))
	}
	c := NewClient(cam)

	_, err := c.GetInt(DvoGetMipiState)
	if !errors.Is(err, ErrCommandIDMismatch) {
		t.Fatalf("expected ErrCommandIDMismatch, got %v", err)
	}
	if cam.rx.Len() != len(second) {
		t.Errorf("function-code mismatch must not trigger a re-read: %d bytes left, want %d", cam.rx.Len(), len(second))
	}
}

func TestDispatch_ArgumentBound(t *testing.T) {
	cam := newMockCamera(t)
	c := NewClient(cam)

	_, err := c.Dispatch(DvoMuxSetType, make([]byte, MaxArgBytes+1), 0)
	if !errors.Is(err, ErrBufferOverflow) {
		t.Fatalf("expected ErrBufferOverflow, got %v", err)
	}
	if cam.writeCalls != 0 {
		t.Errorf("oversized command must not reach the transport, %d writes", cam.writeCalls)
	}

	_, err = c.Dispatch(DvoGetMipiState, nil, MaxArgBytes+1)
	if !errors.Is(err, ErrBufferOverflow) {
		t.Fatalf("oversized expect: got %v", err)
	}
	if cam.writeCalls != 0 {
		t.Errorf("oversized expect must not reach the transport, %d writes", cam.writeCalls)
	}
}

func TestDispatch_SequenceMonotonic(t *testing.T) {
	cam := newMockCamera(t)
	cam.respond = echoSuccess(nil)
	c := NewClient(cam)

	for i := 0; i < 8; i++ {
		if _, err := c.Dispatch(DvoApplyCustomSettings, nil, 0); err != nil {
			t.Fatalf("dispatch %d: %v", i, err)
		}
	}
	for i := 1; i < len(cam.commands); i++ {
		prev, cur := cam.commands[i-1].seq, cam.commands[i].seq
		if cur != prev+1 {
			t.Fatalf("sequence not monotonic at %d: %d then %d", i, prev, cur)
		}
	}
}

func TestNewClient_RandomizedSequenceStart(t *testing.T) {
	seen := make(map[uint32]bool)
	for i := 0; i < 32; i++ {
		cam := newMockCamera(t)
		cam.respond = echoSuccess(nil)
		c := NewClient(cam)
		if _, err := c.Dispatch(DvoApplyCustomSettings, nil, 0); err != nil {
			t.Fatalf("dispatch: %v", err)
		}
		seen[cam.commands[0].seq] = true
	}
	if len(seen) < 2 {
		t.Error("sequence seed does not vary across sessions")
	}
}

func TestDispatch_WriteError(t *testing.T) {
	cam := newMockCamera(t)
	cam.writeErr = errors.New("bus stuck")
	c := NewClient(cam)

	_, err := c.Dispatch(DvoApplyCustomSettings, nil, 0)
	var ce *CommError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CommError, got %v", err)
	}
	if ce.Op != "write" {
		t.Errorf("Op: got %q, want write", ce.Op)
	}
}

func TestDispatch_ShortResponse(t *testing.T) {
	cam := newMockCamera(t)
	cam.respond = func(m *mockCamera, seq uint32, fn FunctionCode, args []byte) {
		payload := make([]byte, 8) // shorter than the response header
		binary.BigEndian.PutUint32(payload[0:4], seq)
		frame, _ := EncodeFrame(payload)
		m.rx.Write(frame)
	}
	c := NewClient(cam)

	_, err := c.Dispatch(DvoGetMipiState, nil, 4)
	if !errors.Is(err, ErrShortResponse) {
		t.Fatalf("expected ErrShortResponse, got %v", err)
	}
}

func TestDispatch_FlushBeforeSend(t *testing.T) {
	cam := newMockCamera(t)
	cam.respond = echoSuccess([]byte{0, 0, 0, 0})
	// Stale bytes from an interrupted session, then the idle
	// sentinel the flush stops on.
	cam.rx.Write([]byte{0x8E, 0x13, 0xFF, 0xFF, 0xFF, 0xFF})
	c := NewClient(cam, WithFlushBeforeSend())

	if _, err := c.GetInt(DvoGetMipiState); err != nil {
		t.Fatalf("GetInt with stale RX: %v", err)
	}
	if len(cam.commands) != 1 {
		t.Fatalf("commands: got %d, want 1", len(cam.commands))
	}
}

func TestDispatch_TraceRecords(t *testing.T) {
	cam := newMockCamera(t)
	cam.respond = echoSuccess([]byte{0x12, 0x34, 0x56, 0x78})
	var buf bytes.Buffer
	c := NewClient(cam, WithTrace(NewTraceWriter(&buf)))

	if _, err := c.CameraSN(); err != nil {
		t.Fatalf("CameraSN: %v", err)
	}

	records, err := ReadTrace(&buf)
	if err != nil {
		t.Fatalf("ReadTrace: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records: got %d, want 1", len(records))
	}
	rec := records[0]
	if rec.Function != uint32(BosonGetCameraSN) {
		t.Errorf("Function: got 0x%08X", rec.Function)
	}
	if rec.Status != uint32(ResultSuccess) {
		t.Errorf("Status: got 0x%08X", rec.Status)
	}
	if !bytes.Equal(rec.Result, []byte{0x12, 0x34, 0x56, 0x78}) {
		t.Errorf("Result: got % X", rec.Result)
	}
	if rec.Sequence != cam.commands[0].seq {
		t.Errorf("Sequence: got %d, want %d", rec.Sequence, cam.commands[0].seq)
	}
}
