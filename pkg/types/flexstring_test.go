package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexStringUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "string", in: `{"v":"3"}`, want: "3"},
		{name: "integer", in: `{"v":3}`, want: "3"},
		{name: "float", in: `{"v":2.5}`, want: "2.5"},
		{name: "bool", in: `{"v":true}`, want: "true"},
		{name: "null", in: `{"v":null}`, want: ""},
		{name: "missing", in: `{}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				V FlexString `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.in), &out))
			assert.Equal(t, tt.want, out.V.String())
		})
	}
}

func TestFlexStringRejectsObjects(t *testing.T) {
	var out struct {
		V FlexString `json:"v"`
	}
	require.Error(t, json.Unmarshal([]byte(`{"v":{"a":1}}`), &out))
}
