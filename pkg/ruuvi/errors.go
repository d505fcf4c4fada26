package ruuvi

import "gitlab.com/d21d3q/goruuvi/internal/format"

// Parse error types, re-exported so callers can match them with errors.As.
// Every error is an ordinary classification outcome: parsing is
// deterministic, so retrying the same input is never useful.
type (
	// UnknownManufacturerIDError: the advertisement does not belong to a
	// Ruuvi device; ignore the payload.
	UnknownManufacturerIDError = format.UnknownManufacturerIDError
	// UnsupportedFormatVersionError: the version byte names a format this
	// library does not implement.
	UnsupportedFormatVersionError = format.UnsupportedFormatVersionError
	// InvalidValueLengthError: the payload is truncated or padded relative
	// to its format's fixed layout.
	InvalidValueLengthError = format.InvalidValueLengthError
)
