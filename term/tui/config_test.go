package tui

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileConfig_UnmarshalJSON(t *testing.T) {
	var fc FileConfig
	err := json.Unmarshal([]byte(`{
  "reveal_interval": "10ms",
  "response_delay": 700000000,
  "connect_delay": null
}`), &fc)
	require.NoError(t, err)

	require.NotNil(t, fc.RevealInterval)
	assert.Equal(t, 10*time.Millisecond, *fc.RevealInterval)
	require.NotNil(t, fc.ResponseDelay)
	assert.Equal(t, 700*time.Millisecond, *fc.ResponseDelay)
	assert.Nil(t, fc.ConnectDelay)
	assert.Nil(t, fc.ClockInterval)
}

func TestFileConfig_UnmarshalJSON_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad duration string": `{"clock_interval": "soon"}`,
		"wrong type":          `{"clock_interval": true}`,
		"not an object":       `[]`,
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			var fc FileConfig
			assert.Error(t, json.Unmarshal([]byte(input), &fc))
		})
	}
}
