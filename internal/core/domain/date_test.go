package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.November, 30)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-11-30"`, string(b))

	var decoded Date
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.True(t, d.Equal(decoded.Time))

	assert.Error(t, json.Unmarshal([]byte(`"30-11-2024"`), &decoded))
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    string
		wantErr bool
	}{
		{name: "postgres date", src: time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC), want: "2024-11-30"},
		{name: "sqlite text", src: "2024-11-30", want: "2024-11-30"},
		{name: "sqlite bytes", src: []byte("2024-11-30"), want: "2024-11-30"},
		{name: "timestamp text", src: "2024-11-30T00:00:00Z", want: "2024-11-30"},
		{name: "unsupported type", src: int64(20241130), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())

			v, err := d.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestNewPollingStationListResponse(t *testing.T) {
	b, err := json.Marshal(NewPollingStationListResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"polling_stations": []}`, string(b))
}
