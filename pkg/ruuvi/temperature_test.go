package ruuvi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeReading struct {
	millikelvins *uint32
}

func (r fakeReading) TemperatureAsMillikelvins() (uint32, bool) {
	if r.millikelvins == nil {
		return 0, false
	}
	return *r.millikelvins, true
}

func TestTemperatureAsMillicelsius(t *testing.T) {
	cases := []struct {
		name         string
		millikelvins *uint32
		want         int32
		wantOK       bool
	}{
		{name: "zero_kelvins", millikelvins: ptr(uint32(0)), want: -273_150, wantOK: true},
		{name: "zero_celsius", millikelvins: ptr(uint32(273_150)), want: 0, wantOK: true},
		{name: "sub_zero_celsius", millikelvins: ptr(uint32(263_080)), want: -10_070, wantOK: true},
		{name: "dry_ice", millikelvins: ptr(uint32(194_924)), want: -78_226, wantOK: true},
		{name: "no_reading", millikelvins: nil, wantOK: false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, ok := TemperatureAsMillicelsius(fakeReading{millikelvins: tc.millikelvins})
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				require.Equal(t, tc.want, got)
			}
		})
	}
}

func TestSensorValuesImplementTemperature(t *testing.T) {
	values, err := Decode(0x0499, workedExample)
	require.NoError(t, err)
	var reading Temperature = values
	millicelsius, ok := TemperatureAsMillicelsius(reading)
	require.True(t, ok)
	require.Equal(t, int32(1690), millicelsius)
}
