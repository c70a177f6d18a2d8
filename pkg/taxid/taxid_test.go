package taxid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "11144477735", Normalize("111.444.777-35"))
	assert.Equal(t, "40510225000102", Normalize("40.510.225/0001-02"))
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("abc-/."))
}

func TestIsValidCompanyID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid plain", "40510225000102", true},
		{"valid punctuated", "40.510.225/0001-02", true},
		{"altered check digit", "40510225000103", false},
		{"all identical digits", "11111111111111", false},
		{"all zeros", "00000000000000", false},
		{"too short", "4051022500010", false},
		{"too long", "405102250001020", false},
		{"empty", "", false},
		{"letters only", "abcdefghijklmn", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCompanyID(tt.input))
		})
	}
}

func TestIsValidPersonalID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid plain", "11144477735", true},
		{"valid punctuated", "111.444.777-35", true},
		{"altered check digit", "11144477736", false},
		{"all identical digits", "11111111111", false},
		{"all zeros", "00000000000", false},
		{"ten digits", "1114447773", false},
		{"twelve digits", "111444777350", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPersonalID(tt.input))
		})
	}
}
