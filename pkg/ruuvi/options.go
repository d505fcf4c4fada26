package ruuvi

import (
	internalopts "gitlab.com/d21d3q/goruuvi/internal/options"
)

// AnalyzeOptions configures hex analysis.
type AnalyzeOptions struct {
	// CompanyIDHex overrides the Ruuvi company id, e.g. "0499".
	CompanyIDHex string
	// PrefixedCompanyID reads the id from the first two payload bytes
	// (little-endian), the way it appears inside a raw AD structure.
	PrefixedCompanyID bool
}

func (opts AnalyzeOptions) companyID() (uint16, error) {
	id, ok, err := internalopts.ParseCompanyIDHex(opts.CompanyIDHex)
	if err != nil {
		return 0, err
	}
	if !ok {
		return ManufacturerID, nil
	}
	return id, nil
}
