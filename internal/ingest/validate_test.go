package ingest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidNumber(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"0", true},
		{"42", true},
		{"-3", true},
		{"+7", true},
		{"2.5", true},
		{"-0.125", true},
		{"", false},
		{"abc", false},
		{"1.", false},
		{".5", false},
		{"1e3", false},
		{"--1", false},
		{"1,5", false},
		{"0x10", false},
		{" 1", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidNumber(tt.token))
		})
	}
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates())
	assert.True(t, ValidateCoordinates(0, -1.5, 1e300))
	assert.False(t, ValidateCoordinates(1, math.NaN()))
	assert.False(t, ValidateCoordinates(math.Inf(-1)))
}

func TestResultValidators(t *testing.T) {
	for name, fn := range map[string]func(float64) bool{
		"area":      IsValidArea,
		"perimeter": IsValidPerimeter,
		"volume":    IsValidVolume,
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, fn(0))
			assert.True(t, fn(12.5))
			assert.False(t, fn(-1e-12))
			assert.False(t, fn(math.NaN()))
			assert.False(t, fn(math.Inf(1)))
		})
	}
}
