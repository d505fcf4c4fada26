package v5

import (
	"encoding/hex"
	"errors"
	"testing"

	"gitlab.com/d21d3q/goruuvi/internal/format"
)

func TestFromBytesInvalidLength(t *testing.T) {
	_, err := FromBytes([]byte{5, 0x12, 0xFC})
	var lengthErr format.InvalidValueLengthError
	if !errors.As(err, &lengthErr) {
		t.Fatalf("expected InvalidValueLengthError, got %v", err)
	}
	if lengthErr.Version != 5 || lengthErr.Length != 3 || lengthErr.Expected != 24 {
		t.Fatalf("unexpected error contents: %+v", lengthErr)
	}
}

func TestRecordConversions(t *testing.T) {
	data, err := FromBytes(decodeHex(t, "0512FC5394C37C0004FFFC040CAC364200CDCBB8334C884F"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if humidity, ok := data.HumidityAsPpm(); !ok || humidity != 534_900 {
		t.Fatalf("unexpected humidity: %d ok=%v", humidity, ok)
	}
	if mk, ok := data.TemperatureAsMillikelvins(); !ok || mk != 273150+24300 {
		t.Fatalf("unexpected temperature: %d ok=%v", mk, ok)
	}
	if pressure, ok := data.PressureAsPascals(); !ok || pressure != 100_044 {
		t.Fatalf("unexpected pressure: %d ok=%v", pressure, ok)
	}
	x, y, z, ok := data.AccelerationVectorAsMilliG()
	if !ok || x != 4 || y != -4 || z != 1036 {
		t.Fatalf("unexpected acceleration: (%d, %d, %d) ok=%v", x, y, z, ok)
	}
	if battery, ok := data.BatteryPotentialAsMillivolts(); !ok || battery != 2977 {
		t.Fatalf("unexpected battery: %d ok=%v", battery, ok)
	}
	if txPower, ok := data.TxPowerAsDbm(); !ok || txPower != 4 {
		t.Fatalf("unexpected tx power: %d ok=%v", txPower, ok)
	}
	if movement, ok := data.MovementCounter(); !ok || movement != 66 {
		t.Fatalf("unexpected movement counter: %d ok=%v", movement, ok)
	}
	if sequence, ok := data.MeasurementSequenceNumber(); !ok || sequence != 205 {
		t.Fatalf("unexpected measurement sequence: %d ok=%v", sequence, ok)
	}
	mac, ok := data.MACAddress()
	if !ok || mac != [6]byte{0xCB, 0xB8, 0x33, 0x4C, 0x88, 0x4F} {
		t.Fatalf("unexpected MAC: %X ok=%v", mac, ok)
	}
}

func TestNotAvailableMarkers(t *testing.T) {
	data, err := FromBytes(decodeHex(t, "058000FFFFFFFF800080008000FFFFFFFFFFFFFFFFFFFFFF"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if _, ok := data.HumidityAsPpm(); ok {
		t.Fatal("humidity should be absent")
	}
	if _, ok := data.TemperatureAsMillikelvins(); ok {
		t.Fatal("temperature should be absent")
	}
	if _, ok := data.PressureAsPascals(); ok {
		t.Fatal("pressure should be absent")
	}
	if _, _, _, ok := data.AccelerationVectorAsMilliG(); ok {
		t.Fatal("acceleration should be absent")
	}
	if _, ok := data.BatteryPotentialAsMillivolts(); ok {
		t.Fatal("battery should be absent")
	}
	if _, ok := data.TxPowerAsDbm(); ok {
		t.Fatal("tx power should be absent")
	}
	if _, ok := data.MovementCounter(); ok {
		t.Fatal("movement counter should be absent")
	}
	if _, ok := data.MeasurementSequenceNumber(); ok {
		t.Fatal("measurement sequence should be absent")
	}
	if _, ok := data.MACAddress(); ok {
		t.Fatal("MAC should be absent")
	}
}

func TestPartiallyAvailable(t *testing.T) {
	// Valid vector with only the temperature replaced by its marker.
	data, err := FromBytes(decodeHex(t, "0580005394C37C0004FFFC040CAC364200CDCBB8334C884F"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if _, ok := data.TemperatureAsMillikelvins(); ok {
		t.Fatal("temperature should be absent")
	}
	if humidity, ok := data.HumidityAsPpm(); !ok || humidity != 534_900 {
		t.Fatalf("unexpected humidity: %d ok=%v", humidity, ok)
	}
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex decode: %v", err)
	}
	return b
}
