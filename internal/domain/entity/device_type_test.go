package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDeviceType_Known(t *testing.T) {
	for _, raw := range []string{"sonar", "motion", "thermostat", "light"} {
		dt, ok := ParseDeviceType(raw)

		assert.True(t, ok, raw)
		assert.Equal(t, raw, dt.String())
		assert.True(t, dt.Valid())
	}
}

func TestParseDeviceType_Unknown(t *testing.T) {
	for _, raw := range []string{"", "Sonar", "SONAR", "camera", "thermostat "} {
		_, ok := ParseDeviceType(raw)

		assert.False(t, ok, raw)
	}
}
