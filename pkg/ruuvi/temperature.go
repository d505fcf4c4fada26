package ruuvi

import "gitlab.com/d21d3q/goruuvi/internal/format"

// ZeroCelsiusInMillikelvins is the absolute temperature of 0 degrees Celsius.
const ZeroCelsiusInMillikelvins = format.ZeroCelsiusInMillikelvins

// Temperature is implemented by any record exposing an absolute temperature
// reading, so the Celsius conversion is shared across format versions.
type Temperature interface {
	// TemperatureAsMillikelvins returns the reading if one is available.
	TemperatureAsMillikelvins() (uint32, bool)
}

// TemperatureAsMillicelsius converts an absolute reading to milli-Celsius.
// Absence propagates: a missing reading yields ok=false.
func TemperatureAsMillicelsius(t Temperature) (int32, bool) {
	millikelvins, ok := t.TemperatureAsMillikelvins()
	if !ok {
		return 0, false
	}
	return int32(millikelvins) - int32(ZeroCelsiusInMillikelvins), true
}
