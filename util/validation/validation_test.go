package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"20", true},
		{"-3.5", true},
		{"1,000", true},
		{"0", true},
		{"10.5", true},
		{"", false},
		{"abc", false},
		{"-", false},
		{"1.2.3", true}, // the pattern allows repeated separators; parsing rejects them later
		{".5", false},
		{"1e5", false},
		{" 20", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, IsNumeric(tc.input), "input %q", tc.input)
	}
}

func TestIsWholeNumber(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"123", true},
		{"0", true},
		{"12.3", false},
		{"-5", false},
		{"", false},
		{"12a", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, IsWholeNumber(tc.input), "input %q", tc.input)
	}
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Passw0rd!", true},
		{"Str0ng#pw", true},
		{"password", false},  // no digit, uppercase or symbol
		{"PASSWORD1", false}, // no symbol
		{"Passw0rd", false},  // no symbol
		{"Pass 123!", false}, // whitespace
		{"Ab1!", false},      // too short
		{"", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, IsStrongPassword(tc.input), "input %q", tc.input)
	}
}

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal("1,000.25")
	require.NoError(t, err)
	assert.Equal(t, "1000.25", d.String())

	d, err = ParseDecimal("-3.5")
	require.NoError(t, err)
	assert.Equal(t, "-3.5", d.String())

	_, err = ParseDecimal("1.2.3")
	assert.Error(t, err)
}

func TestParseOptionalDecimal(t *testing.T) {
	d, err := ParseOptionalDecimal("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	d, err = ParseOptionalDecimal("7")
	require.NoError(t, err)
	assert.Equal(t, "7", d.String())
}
