// Package v5 decodes the RAWv2 manufacturer-specific data format
// (version tag 5) broadcast by RuuviTag beacons. Unlike version 3, every
// field defines a "not available" marker that decodes to an absent value.
package v5

import (
	"encoding/binary"

	"gitlab.com/d21d3q/goruuvi/internal/format"
)

const (
	version       = 5
	payloadLength = 24
)

// Per-field "not available" markers from the RAWv2 specification.
const (
	invalidTemperature  = 0x8000
	invalidHumidity     = 0xFFFF
	invalidPressure     = 0xFFFF
	invalidAcceleration = 0x8000
	invalidBattery      = 0x7FF
	invalidTxPower      = 0x1F
	invalidMovement     = 0xFF
	invalidSequence     = 0xFFFF
)

func init() {
	format.Register(Decoder{})
}

// Decoder implements format.Decoder for version 5.
type Decoder struct{}

// Version returns the format version tag this decoder handles.
func (Decoder) Version() uint8 { return version }

// Decode parses a full version 5 payload, version byte included.
func (Decoder) Decode(data []byte) (format.Record, error) {
	return FromBytes(data)
}

// SensorData holds the raw wire fields of a version 5 payload. PowerInfo
// packs battery voltage in the upper 11 bits and TX power in the lower 5.
type SensorData struct {
	Temperature         uint16
	Humidity            uint16
	Pressure            uint16
	AccelerationX       int16
	AccelerationY       int16
	AccelerationZ       int16
	PowerInfo           uint16
	MovementCount       uint8
	MeasurementSequence uint16
	MAC                 [6]byte
}

var _ format.Record = SensorData{}

// FromBytes extracts the fixed 24-byte layout. The length check is a hard
// precondition; no field is read on mismatch.
func FromBytes(data []byte) (SensorData, error) {
	if len(data) != payloadLength {
		return SensorData{}, format.InvalidValueLengthError{
			Version:  version,
			Length:   len(data),
			Expected: payloadLength,
		}
	}
	d := SensorData{
		Temperature:         binary.BigEndian.Uint16(data[1:3]),
		Humidity:            binary.BigEndian.Uint16(data[3:5]),
		Pressure:            binary.BigEndian.Uint16(data[5:7]),
		AccelerationX:       int16(binary.BigEndian.Uint16(data[7:9])),
		AccelerationY:       int16(binary.BigEndian.Uint16(data[9:11])),
		AccelerationZ:       int16(binary.BigEndian.Uint16(data[11:13])),
		PowerInfo:           binary.BigEndian.Uint16(data[13:15]),
		MovementCount:       data[15],
		MeasurementSequence: binary.BigEndian.Uint16(data[16:18]),
	}
	copy(d.MAC[:], data[18:24])
	return d, nil
}

// HumidityAsPpm converts the 0.0025 %RH steps to parts per million.
func (d SensorData) HumidityAsPpm() (uint32, bool) {
	if d.Humidity == invalidHumidity {
		return 0, false
	}
	return uint32(d.Humidity) * 25, true
}

// TemperatureAsMillikelvins converts the signed 0.005 degree steps to
// absolute millikelvins.
func (d SensorData) TemperatureAsMillikelvins() (uint32, bool) {
	if d.Temperature == invalidTemperature {
		return 0, false
	}
	millicelsius := int32(int16(d.Temperature)) * 5
	return uint32(int32(format.ZeroCelsiusInMillikelvins) + millicelsius), true
}

// PressureAsPascals adds the fixed 50 kPa base to the wire offset.
func (d SensorData) PressureAsPascals() (uint32, bool) {
	if d.Pressure == invalidPressure {
		return 0, false
	}
	return uint32(d.Pressure) + 50_000, true
}

// AccelerationVectorAsMilliG reports the vector only when all three axes
// carry valid samples.
func (d SensorData) AccelerationVectorAsMilliG() (x, y, z int16, ok bool) {
	for _, axis := range [3]int16{d.AccelerationX, d.AccelerationY, d.AccelerationZ} {
		if uint16(axis) == invalidAcceleration {
			return 0, 0, 0, false
		}
	}
	return d.AccelerationX, d.AccelerationY, d.AccelerationZ, true
}

// BatteryPotentialAsMillivolts decodes the 11-bit offset above 1600 mV.
func (d SensorData) BatteryPotentialAsMillivolts() (uint16, bool) {
	raw := d.PowerInfo >> 5
	if raw == invalidBattery {
		return 0, false
	}
	return 1600 + raw, true
}

// TxPowerAsDbm decodes the 5-bit transmit power, -40 dBm in 2 dBm steps.
func (d SensorData) TxPowerAsDbm() (int8, bool) {
	raw := d.PowerInfo & 0x1F
	if raw == invalidTxPower {
		return 0, false
	}
	return int8(-40 + 2*int(raw)), true
}

func (d SensorData) MovementCounter() (uint8, bool) {
	if d.MovementCount == invalidMovement {
		return 0, false
	}
	return d.MovementCount, true
}

func (d SensorData) MeasurementSequenceNumber() (uint16, bool) {
	if d.MeasurementSequence == invalidSequence {
		return 0, false
	}
	return d.MeasurementSequence, true
}

func (d SensorData) MACAddress() ([6]byte, bool) {
	for _, b := range d.MAC {
		if b != 0xFF {
			return d.MAC, true
		}
	}
	return [6]byte{}, false
}
