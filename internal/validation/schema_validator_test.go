package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidator_TableYAML(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "empty document", data: ""},
		{name: "comment only", data: "# defaults\n"},
		{
			name: "full override",
			data: `
segments: [1, "2", CASH_HUNT]
top_slot:
  left: ["1", "PACHINKO"]
  right: [2, 3, 5]
coin_flip: [2, 3]
pachinko:
  board: [100, "double", " 50 "]
  cap: 10000
cash_hunt:
  - {value: 10, count: 3}
crazy_time:
  wheel: ["TRIPLE", 25]
  cap: 20000
`,
		},
		{name: "unknown section", data: "wheel_speed: 3\n", wantError: true, errorMsg: "additionalProperties"},
		{name: "zero multiplier", data: "coin_flip: [2, 0]\n", wantError: true, errorMsg: "/coin_flip/1"},
		{name: "bad pocket", data: "crazy_time: {wheel: [\"QUADRUPLE\"]}\n", wantError: true, errorMsg: "/crazy_time/wheel/0"},
		{name: "cash hunt missing count", data: "cash_hunt: [{value: 5}]\n", wantError: true, errorMsg: "required"},
		{name: "negative cap", data: "pachinko: {cap: -1}\n", wantError: true, errorMsg: "minimum"},
		{name: "empty segments", data: "segments: []\n", wantError: true, errorMsg: "minItems"},
		{name: "malformed yaml", data: "segments: [unclosed", wantError: true, errorMsg: ErrMsgParseDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateYAML([]byte(tt.data), SchemaTable)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateJSON(t *testing.T) {
	v := NewSchemaValidator()

	assert.NoError(t, v.ValidateJSON([]byte(`{"coin_flip": [2, 3]}`), SchemaTable))

	err := v.ValidateJSON([]byte(`{"coin_flip": "2"}`), SchemaTable)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgValidationFailed)

	err = v.ValidateJSON([]byte(`{`), SchemaTable)
	assert.ErrorContains(t, err, ErrMsgParseDocument)
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateJSON([]byte(`{}`), "nope")
	assert.ErrorContains(t, err, ErrMsgUnknownSchema)
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := NewSchemaValidator().(*validator)

	require.NoError(t, v.ValidateYAML([]byte("coin_flip: [2]\n"), SchemaTable))
	first := v.schemas[SchemaTable]
	require.NotNil(t, first)

	require.NoError(t, v.ValidateYAML([]byte("coin_flip: [3]\n"), SchemaTable))
	assert.Same(t, first, v.schemas[SchemaTable])
}
