package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type choiceRequest struct {
	Side    string `json:"side" validate:"side"`
	Flapper string `json:"flapper_colour" validate:"flapper"`
	Amount  int64  `json:"amount" validate:"gt=0,max=1000000"`
}

func TestValidator_ChoiceFields(t *testing.T) {
	tests := []struct {
		name      string
		req       choiceRequest
		wantField string
	}{
		{"red side", choiceRequest{Side: "red", Amount: 1}, ""},
		{"upper-case side", choiceRequest{Side: "BLUE", Amount: 1}, ""},
		{"green is not a side", choiceRequest{Side: "green", Amount: 1}, "side"},
		{"empty side allowed", choiceRequest{Amount: 1}, ""},
		{"yellow flapper", choiceRequest{Flapper: "Yellow", Amount: 1}, ""},
		{"red is not a flapper", choiceRequest{Flapper: "red", Amount: 1}, "flapper_colour"},
		{"amount at max", choiceRequest{Amount: 1000000}, ""},
		{"zero amount", choiceRequest{}, "amount"},
		{"amount over max", choiceRequest{Amount: 1000001}, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GetValidator().ValidateStruct(tt.req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, FormatValidationError(err), tt.wantField)
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	err := GetValidator().ValidateStruct(choiceRequest{Side: "green", Flapper: "red", Amount: 2000000})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"side":           "Must be red or blue",
		"flapper_colour": "Must be green, blue or yellow",
		"amount":         "Must be at most 1000000",
	}, FormatValidationError(err))

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, ErrMsgInvalidRequestFormat, FormatValidationError(assert.AnError)["error"])
}

func TestGetValidator_Shared(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
