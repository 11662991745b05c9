// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Videology Inc.

package fslp

import "fmt"

// ResultCode is the u32 status returned in every response header.
// Zero is success. The firmware headers define several symbolic names
// that alias the same numeric value; the table below keeps one
// canonical entry per value, since only the value travels on the wire.
type ResultCode uint32

// ResultSuccess is the only code that indicates a completed operation.
const ResultSuccess ResultCode = 0

// Codes referenced directly by the dispatcher and tests. Everything
// else is reachable through the lookup table.
const (
	ResultSDKBufferOverflow  ResultCode = 0x0000012F
	ResultSequenceMismatch   ResultCode = 0x00000131
	ResultIDMismatch         ResultCode = 0x00000132
	ResultBadCommandID       ResultCode = 0x00000161
	ResultCommTimeout        ResultCode = 0x0000026D
	ResultErrorReadingComm   ResultCode = 0x0000026E
	ResultCameraBusy         ResultCode = 0x00000283
	ResultFeatureNotEnabled  ResultCode = 0x000001B0
	ResultUndefinedErrorCode ResultCode = 0x0000027F
)

// Category buckets result codes by the layer that produced them.
type Category int

const (
	CategorySuccess Category = iota
	CategoryUART
	CategorySDKAPI
	CategorySDKPackage
	CategorySDKDispatch
	CategorySDKTx
	CategoryCameraRx
	CategoryCameraDispatch
	CategoryCameraPackage
	CategoryCameraAPI
	CategoryCameraTx
	CategoryAPIRx
	CategoryCamera
	CategoryComm
	CategorySymbology
	CategoryResource
	CategorySystem
	CategoryStorage
	CategoryUSB
	CategoryNetwork
	CategoryBluetooth
	CategoryFlash
	CategoryFlashHeader
	CategoryUnknown
)

var categoryNames = map[Category]string{
	CategorySuccess:        "success",
	CategoryUART:           "uart",
	CategorySDKAPI:         "sdk-api",
	CategorySDKPackage:     "sdk-package",
	CategorySDKDispatch:    "sdk-dispatch",
	CategorySDKTx:          "sdk-tx",
	CategoryCameraRx:       "camera-rx",
	CategoryCameraDispatch: "camera-dispatch",
	CategoryCameraPackage:  "camera-package",
	CategoryCameraAPI:      "camera-api",
	CategoryCameraTx:       "camera-tx",
	CategoryAPIRx:          "api-rx",
	CategoryCamera:         "camera",
	CategoryComm:           "comm",
	CategorySymbology:      "symbology",
	CategoryResource:       "resource",
	CategorySystem:         "system",
	CategoryStorage:        "storage",
	CategoryUSB:            "usb",
	CategoryNetwork:        "network",
	CategoryBluetooth:      "bluetooth",
	CategoryFlash:          "flash",
	CategoryFlashHeader:    "flash-header",
	CategoryUnknown:        "unknown",
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return "unknown"
}

type resultInfo struct {
	name     string
	desc     string
	category Category
}

// resultTable mirrors the firmware ReturnCodes table, one entry per
// numeric value. Aliased names (FLR_OK, FLR_COMM_OK,
// FLR_COMM_ERROR_WRITING_COMM) collapse into the canonical entry.
var resultTable = map[ResultCode]resultInfo{
	0x00000000: {"R_SUCCESS", "operation successful", CategorySuccess},

	0x00000001: {"R_UART_UNSPECIFIED_FAILURE", "UART unspecified failure", CategoryUART},
	0x00000002: {"R_UART_PORT_FAILURE", "UART port failure", CategoryUART},
	0x00000003: {"R_UART_RECEIVE_TIMEOUT", "UART receive timeout", CategoryUART},
	0x00000004: {"R_UART_PORT_ALREADY_OPEN", "UART port already open", CategoryUART},

	0x00000110: {"R_SDK_API_UNSPECIFIED_FAILURE", "SDK API unspecified failure", CategorySDKAPI},
	0x00000111: {"R_SDK_API_NOT_DEFINED", "SDK API not defined", CategorySDKAPI},
	0x00000120: {"R_SDK_PKG_UNSPECIFIED_FAILURE", "SDK package unspecified failure", CategorySDKPackage},
	0x0000012F: {"R_SDK_PKG_BUFFER_OVERFLOW", "SDK package buffer overflow", CategorySDKPackage},
	0x00000130: {"R_SDK_DSPCH_UNSPECIFIED_FAILURE", "SDK dispatcher unspecified failure", CategorySDKDispatch},
	0x00000131: {"R_SDK_DSPCH_SEQUENCE_MISMATCH", "SDK dispatcher sequence mismatch", CategorySDKDispatch},
	0x00000132: {"R_SDK_DSPCH_ID_MISMATCH", "SDK dispatcher ID mismatch", CategorySDKDispatch},
	0x00000133: {"R_SDK_DSPCH_MALFORMED_STATUS", "SDK dispatcher malformed status", CategorySDKDispatch},
	0x00000140: {"R_SDK_TX_UNSPECIFIED_FAILURE", "SDK TX unspecified failure", CategorySDKTx},
	0x00000150: {"R_CAM_RX_UNSPECIFIED_FAILURE", "camera RX unspecified failure", CategoryCameraRx},
	0x00000160: {"R_CAM_DSPCH_UNSPECIFIED_FAILURE", "camera dispatcher unspecified failure", CategoryCameraDispatch},
	0x00000161: {"R_CAM_DSPCH_BAD_CMD_ID", "camera dispatcher bad command ID", CategoryCameraDispatch},
	0x00000162: {"R_CAM_DSPCH_BAD_PAYLOAD_STATUS", "camera dispatcher bad payload status", CategoryCameraDispatch},
	0x00000170: {"R_CAM_PKG_UNSPECIFIED_FAILURE", "camera package unspecified failure", CategoryCameraPackage},
	0x0000017D: {"R_CAM_PKG_INSUFFICIENT_BYTES", "camera package insufficient bytes", CategoryCameraPackage},
	0x0000017E: {"R_CAM_PKG_EXCESS_BYTES", "camera package excess bytes", CategoryCameraPackage},
	0x0000017F: {"R_CAM_PKG_BUFFER_OVERFLOW", "camera package buffer overflow", CategoryCameraPackage},
	0x00000180: {"R_CAM_API_UNSPECIFIED_FAILURE", "camera API unspecified failure", CategoryCameraAPI},
	0x00000181: {"R_CAM_API_INVALID_INPUT", "camera API invalid input", CategoryCameraAPI},
	0x00000190: {"R_CAM_TX_UNSPECIFIED_FAILURE", "camera TX unspecified failure", CategoryCameraTx},
	0x000001A0: {"R_API_RX_UNSPECIFIED_FAILURE", "API RX unspecified failure", CategoryAPIRx},
	0x000001B0: {"R_CAM_FEATURE_NOT_ENABLED", "camera feature not enabled", CategoryCamera},

	0x00000201: {"FLR_ERROR", "camera general error", CategoryCamera},
	0x00000202: {"FLR_NOT_READY", "camera not ready", CategoryCamera},
	0x00000203: {"FLR_RANGE_ERROR", "camera range error", CategoryCamera},
	0x00000204: {"FLR_CHECKSUM_ERROR", "camera checksum error", CategoryCamera},
	0x00000205: {"FLR_BAD_ARG_POINTER_ERROR", "camera bad argument", CategoryCamera},
	0x00000206: {"FLR_DATA_SIZE_ERROR", "camera byte count error", CategoryCamera},
	0x00000207: {"FLR_UNDEFINED_FUNCTION_ERROR", "camera undefined function", CategoryCamera},
	0x00000208: {"FLR_ILLEGAL_ADDRESS_ERROR", "illegal address", CategoryCamera},
	0x00000209: {"FLR_BAD_OUT_TYPE", "incorrect ISP source", CategoryCamera},
	0x0000020A: {"FLR_BAD_OUT_INTERFACE", "incorrect output interface", CategoryCamera},
	0x0000020B: {"FLR_DEPRECATED_FUNCTION_ERROR", "camera deprecated function", CategoryCamera},

	0x00000265: {"FLR_COMM_PORT_NOT_OPEN", "comm port not open", CategoryComm},
	0x00000266: {"FLR_COMM_INVALID_PORT_ERROR", "comm port does not exist", CategoryComm},
	0x00000267: {"FLR_COMM_RANGE_ERROR", "comm port range error", CategoryComm},
	0x00000268: {"FLR_ERROR_CREATING_COMM", "error creating comm", CategoryComm},
	0x00000269: {"FLR_ERROR_STARTING_COMM", "error starting comm", CategoryComm},
	0x0000026A: {"FLR_ERROR_CLOSING_COMM", "error closing comm", CategoryComm},
	0x0000026B: {"FLR_COMM_CHECKSUM_ERROR", "comm checksum error", CategoryComm},
	0x0000026C: {"FLR_COMM_NO_DEV", "no comm device", CategoryComm},
	0x0000026D: {"FLR_COMM_TIMEOUT_ERROR", "comm timeout or write failure", CategoryComm},
	0x0000026E: {"FLR_COMM_ERROR_READING_COMM", "error reading comm", CategoryComm},
	0x0000026F: {"FLR_COMM_COUNT_ERROR", "comm byte count error", CategoryComm},
	0x0000027E: {"FLR_OPERATION_CANCELED", "camera operation canceled", CategoryCamera},
	0x0000027F: {"FLR_UNDEFINED_ERROR_CODE", "undefined error", CategoryCamera},
	0x00000280: {"FLR_LEN_NOT_SUBBLOCK_BOUNDARY", "length not on subblock boundary", CategoryCamera},
	0x00000281: {"FLR_CONFIG_ERROR", "configuration not valid", CategoryCamera},
	0x00000282: {"FLR_I2C_ERROR", "I2C comm error", CategoryComm},
	0x00000283: {"FLR_CAM_BUSY", "camera busy with other operations", CategoryCamera},
	0x00000284: {"FLR_HEATER_ERROR", "heater error", CategoryCamera},
	0x00000285: {"FLR_WINDOW_ERROR", "window error", CategoryCamera},
	0x00000286: {"FLR_VBATT_ERROR", "battery error", CategoryCamera},

	0x00000300: {"R_SYM_UNSPECIFIED_FAILURE", "symbology unspecified failure", CategorySymbology},
	0x00000301: {"R_SYM_INVALID_POSITION_ERROR", "symbology invalid position", CategorySymbology},

	0x00000320: {"FLR_RES_NOT_AVAILABLE", "resource not available", CategoryResource},
	0x00000321: {"FLR_RES_NOT_IMPLEMENTED", "resource not implemented", CategoryResource},
	0x00000322: {"FLR_RES_RANGE_ERROR", "resource range error", CategoryResource},

	0x00000384: {"FLR_SYSTEMINIT_XX_ERROR", "system init error", CategorySystem},
	0x000003E8: {"FLR_SDIO_XX_ERROR", "SDIO error", CategoryStorage},
	0x0000044C: {"FLR_STOR_SD_XX_ERROR", "SD storage error", CategoryStorage},
	0x000004B0: {"FLR_USB_VIDEO_XX_ERROR", "USB video error", CategoryUSB},
	0x00000514: {"FLR_USB_CDC_XX_ERROR", "USB CDC error", CategoryUSB},
	0x00000578: {"FLR_USB_MSD_XX_ERROR", "USB MSD error", CategoryUSB},
	0x000005DC: {"FLR_NET_XX_ERROR", "network error", CategoryNetwork},
	0x00000640: {"FLR_BT_XX_ERROR", "bluetooth error", CategoryBluetooth},

	0x000006A4: {"FLR_FLASH_XX_ERROR", "generic flash error", CategoryFlash},
	0x000006A5: {"FLR_FLASH_ERASE_ERROR", "flash erase error", CategoryFlash},
	0x000006A6: {"FLR_FLASH_WRITE_ERROR", "flash write error", CategoryFlash},
	0x000006A7: {"FLR_FLASH_READ_ERROR", "flash read error", CategoryFlash},
	0x000006A8: {"FLR_FLASH_BUSY_ERROR", "flash busy", CategoryFlash},
	0x000006A9: {"FLR_FLASH_ADDRESS_ERROR", "flash address error", CategoryFlash},
	0x000006AA: {"FLR_FLASH_RANGE_ERROR", "flash range error", CategoryFlash},
	0x000006AB: {"FLR_FLASH_ACCESS_ERROR", "flash access error", CategoryFlash},
	0x000006AC: {"FLR_FLASH_OPERATION_RETRY_ERROR", "flash operation retry error", CategoryFlash},
	0x000006AD: {"FLR_FLASH_UNKNOWN_ERROR", "flash unknown error", CategoryFlash},

	0x00000708: {"FLR_FLASHHDR_ERASED", "flash header erased", CategoryFlashHeader},
	0x00000709: {"FLR_FLASHHDR_PARTIAL_WRITE", "flash header partial write", CategoryFlashHeader},
	0x0000070A: {"FLR_FLASHHDR_WRONG_FOOTER_ID", "flash header wrong footer ID", CategoryFlashHeader},
	0x0000070B: {"FLR_FLASHHDR_WRONG_FOOTER_METADATA", "flash header wrong footer metadata", CategoryFlashHeader},
	0x0000070C: {"FLR_FLASHHDR_WRONG_FOOTER_TYPE", "flash header wrong footer type", CategoryFlashHeader},
	0x0000070D: {"FLR_FLASHHDR_WRONG_HEADER_SIZE", "flash header wrong header size", CategoryFlashHeader},
	0x0000070E: {"FLR_FLASHHDR_FOOTER_CRC_ERROR", "flash header footer CRC error", CategoryFlashHeader},

	0x0000076C: {"FLR_UNKNOWN_PROBE_MODEL", "unknown probe model", CategoryCamera},
}

// UnknownCodeName is reported for values absent from the table.
const UnknownCodeName = "UNKNOWN_ERROR_CODE"

// Name returns the canonical symbolic name for the code, or
// UnknownCodeName for values outside the table.
func (c ResultCode) Name() string {
	if info, ok := resultTable[c]; ok {
		return info.name
	}
	return UnknownCodeName
}

// Description returns the human-readable description for the code.
func (c ResultCode) Description() string {
	if info, ok := resultTable[c]; ok {
		return info.desc
	}
	return "unrecognized result code"
}

// Category returns the coarse error layer for the code.
func (c ResultCode) Category() Category {
	if info, ok := resultTable[c]; ok {
		return info.category
	}
	return CategoryUnknown
}

// Known reports whether the code appears in the firmware table.
func (c ResultCode) Known() bool {
	_, ok := resultTable[c]
	return ok
}

func (c ResultCode) String() string {
	return fmt.Sprintf("%s (0x%08X): %s", c.Name(), uint32(c), c.Description())
}
