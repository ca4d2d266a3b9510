package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZone_String(t *testing.T) {
	assert.Equal(t, "0", Corner(0).String())
	assert.Equal(t, "3", Corner(3).String())
	assert.Equal(t, "other", Other.String())
}

func TestZone_OtherIsDistinctFromEveryCorner(t *testing.T) {
	for i := 0; i < 8; i++ {
		assert.NotEqual(t, Other, Corner(i))
	}
	assert.Equal(t, Corner(0), Zone{}, "zero value is corner 0")

	idx, ok := Other.Corner()
	assert.False(t, ok)
	assert.Zero(t, idx)

	idx, ok = Corner(2).Corner()
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestParseZone(t *testing.T) {
	tests := []struct {
		in      string
		want    Zone
		wantErr bool
	}{
		{in: "0", want: Corner(0)},
		{in: "3", want: Corner(3)},
		{in: "other", want: Other},
		{in: "-1", wantErr: true},
		{in: "Other", wantErr: true},
		{in: "", wantErr: true},
		{in: "corner", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseZone(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZone_JSONMapKey(t *testing.T) {
	a := Arena{Corner(1): {Tokens: "GG"}, Other: {Tokens: "P"}}

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1":{"tokens":"GG"},"other":{"tokens":"P"}}`, string(data))

	var decoded Arena
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, a, decoded)
}
