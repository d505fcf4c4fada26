package format

import "fmt"

// UnknownManufacturerIDError reports manufacturer-specific data that does not
// belong to a Ruuvi device. Callers should ignore the payload.
type UnknownManufacturerIDError struct {
	ID uint16
}

func (e UnknownManufacturerIDError) Error() string {
	return fmt.Sprintf("unknown manufacturer id 0x%04X", e.ID)
}

// UnsupportedFormatVersionError reports a version tag that names a format
// this library does not implement.
type UnsupportedFormatVersionError struct {
	Version uint8
}

func (e UnsupportedFormatVersionError) Error() string {
	return fmt.Sprintf("unsupported format version %d", e.Version)
}

// InvalidValueLengthError reports a payload whose length does not match the
// fixed layout of its format. Version 0 means the payload was too short to
// even carry a version tag.
type InvalidValueLengthError struct {
	Version  uint8
	Length   int
	Expected int
}

func (e InvalidValueLengthError) Error() string {
	return fmt.Sprintf("invalid value length for format %d: got %d bytes, expected %d", e.Version, e.Length, e.Expected)
}
