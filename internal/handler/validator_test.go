package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePlayerName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"plain", "Steve", true},
		{"underscore and digits", "x_Notch_99", true},
		{"empty", "", false},
		{"space", "bad name", false},
		{"too long", "abcdefghijklmnopq", false},
		{"punctuation", "drop;table", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GetValidator().ValidateStruct(playerNameParam{Name: tt.input})
			assert.Equal(t, tt.valid, err == nil)
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))

	err := GetValidator().ValidateStruct(playerNameParam{})
	assert.Equal(t, map[string]string{"name": "This field is required"}, FormatValidationError(err))

	err = GetValidator().ValidateStruct(playerNameParam{Name: "no spaces"})
	assert.Equal(t, map[string]string{"name": "Only letters, digits and underscores are allowed"}, FormatValidationError(err))

	assert.Equal(t, map[string]string{"error": ErrMsgInvalidRequestField}, FormatValidationError(errors.New("boom")))
}
