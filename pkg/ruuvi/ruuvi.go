// Package ruuvi decodes RuuviTag manufacturer-specific advertisement data
// into a version-independent set of sensor values.
package ruuvi

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"gitlab.com/d21d3q/goruuvi/internal/format"
	_ "gitlab.com/d21d3q/goruuvi/internal/format/v3" // register format
	_ "gitlab.com/d21d3q/goruuvi/internal/format/v5" // register format
)

// ManufacturerID is the Bluetooth SIG company identifier of Ruuvi
// Innovations, transmitted little-endian ahead of the payload.
const ManufacturerID uint16 = 0x0499

// Decode parses the manufacturer-specific data of a single advertisement.
// It is a pure function: the same input always yields the same result.
func Decode(manufacturerID uint16, data []byte) (SensorValues, error) {
	if manufacturerID != ManufacturerID {
		return SensorValues{}, format.UnknownManufacturerIDError{ID: manufacturerID}
	}
	if len(data) == 0 {
		return SensorValues{}, format.InvalidValueLengthError{Version: 0, Length: 0, Expected: 1}
	}
	dec, ok := format.Lookup(data[0])
	if !ok {
		return SensorValues{}, format.UnsupportedFormatVersionError{Version: data[0]}
	}
	rec, err := dec.Decode(data)
	if err != nil {
		return SensorValues{}, err
	}
	return valuesFromRecord(rec), nil
}

// Result captures the outcome of AnalyzeHex.
type Result struct {
	FormatVersion uint8
	RawHex        string
	ByteCount     int
	Values        SensorValues
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	summary := map[string]any{
		"format":     r.FormatVersion,
		"byte_count": r.ByteCount,
		"raw_hex":    r.RawHex,
	}
	if fields := r.Values.Fields(); len(fields) > 0 {
		summary["fields"] = fields
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("format: %d bytes:%d raw:%s (marshal error: %v)", r.FormatVersion, r.ByteCount, r.RawHex, err)
	}
	return string(data)
}

// AnalyzeHex decodes a hex-encoded payload captured from an advertisement.
func AnalyzeHex(raw string) (Result, error) {
	return AnalyzeHexWithOptions(raw, AnalyzeOptions{})
}

// AnalyzeHexWithOptions decodes a hex-encoded payload with custom options.
func AnalyzeHexWithOptions(raw string, opts AnalyzeOptions) (Result, error) {
	id, err := opts.companyID()
	if err != nil {
		return Result{}, err
	}
	data, err := decodeHex(raw)
	if err != nil {
		return Result{}, err
	}
	if opts.PrefixedCompanyID {
		if len(data) < 2 {
			return Result{}, fmt.Errorf("company id prefix requires at least 2 bytes, got %d", len(data))
		}
		id = binary.LittleEndian.Uint16(data[:2])
		data = data[2:]
	}
	values, err := Decode(id, data)
	if err != nil {
		return Result{}, err
	}
	return Result{
		FormatVersion: data[0],
		RawHex:        strings.ToUpper(stripWhitespace(raw)),
		ByteCount:     len(data),
		Values:        values,
	}, nil
}

func decodeHex(input string) ([]byte, error) {
	clean := stripWhitespace(input)
	if strings.HasPrefix(strings.ToUpper(clean), "0X") {
		clean = clean[2:]
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex payload must contain an even number of digits, got %d", len(clean))
	}
	decoded := make([]byte, len(clean)/2)
	if _, err := hex.Decode(decoded, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}

func stripWhitespace(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' || r == ':' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
