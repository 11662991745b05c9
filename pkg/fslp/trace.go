// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Videology Inc.

package fslp

import (
	"io"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// TraceRecord is one logged transaction. Records are written as a CBOR
// stream, one map per dispatch, so a trace can be replayed or inspected
// offline without the original session.
type TraceRecord struct {
	Time     time.Time `cbor:"0,keyasint"`
	Sequence uint32    `cbor:"1,keyasint"`
	Function uint32    `cbor:"2,keyasint"`
	Args     []byte    `cbor:"3,keyasint,omitempty"`
	Result   []byte    `cbor:"4,keyasint,omitempty"`
	Status   uint32    `cbor:"5,keyasint"`
	Err      string    `cbor:"6,keyasint,omitempty"`
}

// TraceWriter records dispatched transactions to an underlying writer.
// Safe for the client's serialized use; writes happen inside the
// transaction lock so records appear in dispatch order.
type TraceWriter struct {
	mu  sync.Mutex
	enc *cbor.Encoder
}

// NewTraceWriter wraps w in a transaction recorder.
func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{enc: cbor.NewEncoder(w)}
}

// record appends one transaction. Nil receivers are ignored so the
// client can call it unconditionally. Encoding failures are dropped;
// tracing must never fail a live transaction.
func (tw *TraceWriter) record(seq uint32, fn FunctionCode, args, result []byte, status ResultCode, err error) {
	if tw == nil {
		return
	}
	rec := TraceRecord{
		Time:     time.Now(),
		Sequence: seq,
		Function: uint32(fn),
		Args:     args,
		Result:   result,
		Status:   uint32(status),
	}
	if err != nil {
		rec.Err = err.Error()
	}
	tw.mu.Lock()
	defer tw.mu.Unlock()
	_ = tw.enc.Encode(rec)
}

// ReadTrace decodes every record from a CBOR trace stream.
func ReadTrace(r io.Reader) ([]TraceRecord, error) {
	dec := cbor.NewDecoder(r)
	var records []TraceRecord
	for {
		var rec TraceRecord
		if err := dec.Decode(&rec); err != nil {
			if err == io.EOF {
				return records, nil
			}
			return records, err
		}
		records = append(records, rec)
	}
}
