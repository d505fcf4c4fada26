package format

// ZeroCelsiusInMillikelvins is the absolute temperature of 0 degrees Celsius.
const ZeroCelsiusInMillikelvins uint32 = 273150

// Decoder parses one wire format, identified by the one-byte version tag at
// the start of the manufacturer-specific data.
type Decoder interface {
	Version() uint8
	Decode(data []byte) (Record, error)
}

// Record is a decoded, format-specific reading. Accessors return ok=false
// when the format does not report the quantity or the field carries the
// format's "not available" marker.
type Record interface {
	HumidityAsPpm() (uint32, bool)
	TemperatureAsMillikelvins() (uint32, bool)
	PressureAsPascals() (uint32, bool)
	AccelerationVectorAsMilliG() (x, y, z int16, ok bool)
	BatteryPotentialAsMillivolts() (uint16, bool)
	TxPowerAsDbm() (int8, bool)
	MovementCounter() (uint8, bool)
	MeasurementSequenceNumber() (uint16, bool)
	MACAddress() ([6]byte, bool)
}
