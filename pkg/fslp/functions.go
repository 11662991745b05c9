// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Videology Inc.

package fslp

import "fmt"

// FunctionCode identifies a remote camera operation. The upper half
// selects the firmware subsystem, the lower half the operation within
// it.
type FunctionCode uint32

// Telemetry subsystem (0x0004xxxx)
const (
	TelemetrySetState               FunctionCode = 0x00040001
	TelemetryGetState               FunctionCode = 0x00040002
	TelemetrySetLocation            FunctionCode = 0x00040003
	TelemetryGetLocation            FunctionCode = 0x00040004
	TelemetrySetPacking             FunctionCode = 0x00040005
	TelemetryGetPacking             FunctionCode = 0x00040006
	TelemetrySetMipiEmbeddedDataTag FunctionCode = 0x00040009
	TelemetryGetMipiEmbeddedDataTag FunctionCode = 0x0004000A
)

// Boson module subsystem (0x0005xxxx)
const (
	BosonGetCameraSN      FunctionCode = 0x00050002
	BosonGetCameraPN      FunctionCode = 0x00050004
	BosonGetSensorSN      FunctionCode = 0x00050006
	BosonRunFFC           FunctionCode = 0x00050007
	BosonGetSoftwareRev   FunctionCode = 0x00050022
	BosonGetBootTimestamp FunctionCode = 0x00050024
)

// DVO subsystem (0x0006xxxx)
const (
	DvoSetOutputInterface   FunctionCode = 0x00060007
	DvoGetOutputInterface   FunctionCode = 0x00060008
	DvoSetType              FunctionCode = 0x0006000F
	DvoGetType              FunctionCode = 0x00060010
	DvoSetOutputFormat      FunctionCode = 0x00060011
	DvoGetOutputFormat      FunctionCode = 0x00060012
	DvoSetOutputIR16Format  FunctionCode = 0x00060013
	DvoGetOutputIR16Format  FunctionCode = 0x00060014
	DvoSetMipiState         FunctionCode = 0x00060024
	DvoApplyCustomSettings  FunctionCode = 0x00060025
	DvoGetMipiState         FunctionCode = 0x00060026
	DvoSetMipiClockLaneMode FunctionCode = 0x00060027
	DvoGetMipiClockLaneMode FunctionCode = 0x00060028
)

// AGC subsystem (0x000Bxxxx)
const (
	AgcSetPercentPerPixel FunctionCode = 0x000B0001
	AgcGetPercentPerPixel FunctionCode = 0x000B0002
	AgcSetMaxGain         FunctionCode = 0x000B0005
	AgcGetMaxGain         FunctionCode = 0x000B0006
	AgcSetGamma           FunctionCode = 0x000B0009
	AgcGetGamma           FunctionCode = 0x000B000A
	AgcSetState           FunctionCode = 0x000B000D
	AgcGetState           FunctionCode = 0x000B000E
)

// DVO multiplexer subsystem (0x000Exxxx)
const (
	DvoMuxSetType FunctionCode = 0x000E0001
	DvoMuxGetType FunctionCode = 0x000E0002
)

var functionNames = map[FunctionCode]string{
	TelemetrySetState:               "telemetrySetState",
	TelemetryGetState:               "telemetryGetState",
	TelemetrySetLocation:            "telemetrySetLocation",
	TelemetryGetLocation:            "telemetryGetLocation",
	TelemetrySetPacking:             "telemetrySetPacking",
	TelemetryGetPacking:             "telemetryGetPacking",
	TelemetrySetMipiEmbeddedDataTag: "telemetrySetMipiEmbeddedDataTag",
	TelemetryGetMipiEmbeddedDataTag: "telemetryGetMipiEmbeddedDataTag",

	BosonGetCameraSN:      "bosonGetCameraSN",
	BosonGetCameraPN:      "bosonGetCameraPN",
	BosonGetSensorSN:      "bosonGetSensorSN",
	BosonRunFFC:           "bosonRunFFC",
	BosonGetSoftwareRev:   "bosonGetSoftwareRev",
	BosonGetBootTimestamp: "bosonGetBootTimestamp",

	DvoSetOutputInterface:   "dvoSetOutputInterface",
	DvoGetOutputInterface:   "dvoGetOutputInterface",
	DvoSetType:              "dvoSetType",
	DvoGetType:              "dvoGetType",
	DvoSetOutputFormat:      "dvoSetOutputFormat",
	DvoGetOutputFormat:      "dvoGetOutputFormat",
	DvoSetOutputIR16Format:  "dvoSetOutputIR16Format",
	DvoGetOutputIR16Format:  "dvoGetOutputIR16Format",
	DvoSetMipiState:         "dvoSetMipiState",
	DvoApplyCustomSettings:  "dvoApplyCustomSettings",
	DvoGetMipiState:         "dvoGetMipiState",
	DvoSetMipiClockLaneMode: "dvoSetMipiClockLaneMode",
	DvoGetMipiClockLaneMode: "dvoGetMipiClockLaneMode",

	AgcSetPercentPerPixel: "agcSetPercentPerPixel",
	AgcGetPercentPerPixel: "agcGetPercentPerPixel",
	AgcSetMaxGain:         "agcSetMaxGain",
	AgcGetMaxGain:         "agcGetMaxGain",
	AgcSetGamma:           "agcSetGamma",
	AgcGetGamma:           "agcGetGamma",
	AgcSetState:           "agcSetState",
	AgcGetState:           "agcGetState",

	DvoMuxSetType: "dvoMuxSetType",
	DvoMuxGetType: "dvoMuxGetType",
}

// String returns the SDK-style function name, or the raw hex code for
// functions outside the catalog.
func (f FunctionCode) String() string {
	if name, ok := functionNames[f]; ok {
		return name
	}
	return fmt.Sprintf("0x%08X", uint32(f))
}

// FunctionByName resolves an SDK-style function name back to its code.
func FunctionByName(name string) (FunctionCode, bool) {
	for code, n := range functionNames {
		if n == name {
			return code, true
		}
	}
	return 0, false
}

// Functions returns every catalogued function code. The slice is a
// copy; callers may reorder it freely.
func Functions() []FunctionCode {
	out := make([]FunctionCode, 0, len(functionNames))
	for code := range functionNames {
		out = append(out, code)
	}
	return out
}
