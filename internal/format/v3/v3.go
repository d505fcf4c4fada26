// Package v3 decodes the RAWv1 manufacturer-specific data format
// (version tag 3) broadcast by RuuviTag beacons.
package v3

import (
	"encoding/binary"

	"gitlab.com/d21d3q/goruuvi/internal/format"
)

const (
	version       = 3
	payloadLength = 14
)

func init() {
	format.Register(Decoder{})
}

// Decoder implements format.Decoder for version 3.
type Decoder struct{}

// Version returns the format version tag this decoder handles.
func (Decoder) Version() uint8 { return version }

// Decode parses a full version 3 payload, version byte included.
func (Decoder) Decode(data []byte) (format.Record, error) {
	return FromBytes(data)
}

// SensorData holds the raw wire fields of a version 3 payload. All five
// quantities are always present in this format.
type SensorData struct {
	Humidity         uint8
	Temperature      uint16
	Pressure         uint16
	AccelerationX    int16
	AccelerationY    int16
	AccelerationZ    int16
	BatteryPotential uint16
}

var _ format.Record = SensorData{}

// FromBytes extracts the fixed 14-byte layout. The length check is a hard
// precondition; no field is read on mismatch.
func FromBytes(data []byte) (SensorData, error) {
	if len(data) != payloadLength {
		return SensorData{}, format.InvalidValueLengthError{
			Version:  version,
			Length:   len(data),
			Expected: payloadLength,
		}
	}
	return SensorData{
		Humidity:         data[1],
		Temperature:      binary.BigEndian.Uint16(data[2:4]),
		Pressure:         binary.BigEndian.Uint16(data[4:6]),
		AccelerationX:    int16(binary.BigEndian.Uint16(data[6:8])),
		AccelerationY:    int16(binary.BigEndian.Uint16(data[8:10])),
		AccelerationZ:    int16(binary.BigEndian.Uint16(data[10:12])),
		BatteryPotential: binary.BigEndian.Uint16(data[12:14]),
	}, nil
}

// HumidityAsPpm converts the half-percentage-point count to parts per
// million, so raw 0x17 (11.5 %RH) reads as 115000.
func (d SensorData) HumidityAsPpm() (uint32, bool) {
	return uint32(d.Humidity) * 5000, true
}

// TemperatureAsMillikelvins decodes the sign+integer high byte and the
// hundredths-of-a-degree low byte into absolute millikelvins.
func (d SensorData) TemperatureAsMillikelvins() (uint32, bool) {
	integer := int32(d.Temperature>>8) & 0x7F
	hundredths := int32(d.Temperature & 0xFF)
	millicelsius := integer*1000 + hundredths*10
	if d.Temperature&0x8000 != 0 {
		millicelsius = -millicelsius
	}
	return uint32(int32(format.ZeroCelsiusInMillikelvins) + millicelsius), true
}

// PressureAsPascals adds the fixed 50 kPa base to the wire offset.
func (d SensorData) PressureAsPascals() (uint32, bool) {
	return uint32(d.Pressure) + 50_000, true
}

func (d SensorData) AccelerationVectorAsMilliG() (x, y, z int16, ok bool) {
	return d.AccelerationX, d.AccelerationY, d.AccelerationZ, true
}

func (d SensorData) BatteryPotentialAsMillivolts() (uint16, bool) {
	return d.BatteryPotential, true
}

func (d SensorData) TxPowerAsDbm() (int8, bool) { return 0, false }

func (d SensorData) MovementCounter() (uint8, bool) { return 0, false }

func (d SensorData) MeasurementSequenceNumber() (uint16, bool) { return 0, false }

func (d SensorData) MACAddress() ([6]byte, bool) { return [6]byte{}, false }
