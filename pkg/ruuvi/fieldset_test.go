package ruuvi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldSetTypedAccess(t *testing.T) {
	result, err := AnalyzeHex("0512FC5394C37C0004FFFC040CAC364200CDCBB8334C884F")
	require.NoError(t, err)
	fs := result.FieldSet()

	humidity, err := fs.Int("humidity_ppm")
	require.NoError(t, err)
	require.Equal(t, int64(534_900), humidity)

	temperature, err := fs.Float("temperature_millicelsius")
	require.NoError(t, err)
	require.InDelta(t, 24300.0, temperature, 1e-6)

	txPower, err := fs.Int("tx_power_dbm")
	require.NoError(t, err)
	require.Equal(t, int64(4), txPower)

	mac, err := fs.String("mac")
	require.NoError(t, err)
	require.Equal(t, "CB:B8:33:4C:88:4F", mac)

	_, err = fs.Float("no_such_field")
	require.Error(t, err)
	_, err = fs.Float("mac")
	require.Error(t, err)
}

func TestFieldSetJSONRoundTrip(t *testing.T) {
	result, err := AnalyzeHex("03170145355803E804E705E60886")
	require.NoError(t, err)

	encoded, err := json.Marshal(result.Values.Fields())
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	fs := FieldSet{data: decoded}
	pressure, err := fs.Int("pressure_pa")
	require.NoError(t, err)
	require.Equal(t, int64(63656), pressure)
	temperature, err := fs.Float("temperature_millicelsius")
	require.NoError(t, err)
	require.InDelta(t, 1690.0, temperature, 1e-6)
}
