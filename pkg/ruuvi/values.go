package ruuvi

import (
	"fmt"

	"gitlab.com/d21d3q/goruuvi/internal/format"
)

// AccelerationVector is an acceleration reading in milli-G per axis.
type AccelerationVector struct {
	X int16
	Y int16
	Z int16
}

// SensorValues is the version-independent decoding result. A nil field means
// the format does not report that quantity or the device marked it as not
// available.
type SensorValues struct {
	// Humidity in parts per million: 115000 means 11.5 %RH.
	Humidity *uint32
	// Temperature in millikelvins.
	Temperature *uint32
	// Pressure in pascals.
	Pressure *uint32
	// Acceleration in milli-G.
	Acceleration *AccelerationVector
	// BatteryPotential in millivolts.
	BatteryPotential *uint16
	// TxPower in dBm.
	TxPower *int8
	// MovementCounter increments on device motion events.
	MovementCounter *uint8
	// MeasurementSequenceNumber increments per broadcast measurement.
	MeasurementSequenceNumber *uint16
	// MAC is the device address transmitted inside the payload.
	MAC *[6]byte
}

// TemperatureAsMillikelvins implements the Temperature capability.
func (v SensorValues) TemperatureAsMillikelvins() (uint32, bool) {
	if v.Temperature == nil {
		return 0, false
	}
	return *v.Temperature, true
}

// Fields flattens the present values into a map for rendering and export.
func (v SensorValues) Fields() map[string]any {
	fields := make(map[string]any)
	if v.Humidity != nil {
		fields["humidity_ppm"] = *v.Humidity
	}
	if millicelsius, ok := TemperatureAsMillicelsius(v); ok {
		fields["temperature_millicelsius"] = millicelsius
	}
	if v.Pressure != nil {
		fields["pressure_pa"] = *v.Pressure
	}
	if v.Acceleration != nil {
		fields["acceleration_x_mg"] = v.Acceleration.X
		fields["acceleration_y_mg"] = v.Acceleration.Y
		fields["acceleration_z_mg"] = v.Acceleration.Z
	}
	if v.BatteryPotential != nil {
		fields["battery_mv"] = *v.BatteryPotential
	}
	if v.TxPower != nil {
		fields["tx_power_dbm"] = *v.TxPower
	}
	if v.MovementCounter != nil {
		fields["movement_counter"] = *v.MovementCounter
	}
	if v.MeasurementSequenceNumber != nil {
		fields["measurement_sequence"] = *v.MeasurementSequenceNumber
	}
	if v.MAC != nil {
		m := *v.MAC
		fields["mac"] = fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", m[0], m[1], m[2], m[3], m[4], m[5])
	}
	return fields
}

func valuesFromRecord(rec format.Record) SensorValues {
	var values SensorValues
	if humidity, ok := rec.HumidityAsPpm(); ok {
		values.Humidity = ptr(humidity)
	}
	if temperature, ok := rec.TemperatureAsMillikelvins(); ok {
		values.Temperature = ptr(temperature)
	}
	if pressure, ok := rec.PressureAsPascals(); ok {
		values.Pressure = ptr(pressure)
	}
	if x, y, z, ok := rec.AccelerationVectorAsMilliG(); ok {
		values.Acceleration = &AccelerationVector{X: x, Y: y, Z: z}
	}
	if battery, ok := rec.BatteryPotentialAsMillivolts(); ok {
		values.BatteryPotential = ptr(battery)
	}
	if txPower, ok := rec.TxPowerAsDbm(); ok {
		values.TxPower = ptr(txPower)
	}
	if movement, ok := rec.MovementCounter(); ok {
		values.MovementCounter = ptr(movement)
	}
	if sequence, ok := rec.MeasurementSequenceNumber(); ok {
		values.MeasurementSequenceNumber = ptr(sequence)
	}
	if mac, ok := rec.MACAddress(); ok {
		values.MAC = &mac
	}
	return values
}

func ptr[T any](v T) *T {
	return &v
}
