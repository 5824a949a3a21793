package bchain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func rawList(values ...string) []json.RawMessage {
	r := make([]json.RawMessage, len(values))
	for i, v := range values {
		r[i] = json.RawMessage(v)
	}
	return r
}

func TestHandleDefaults(t *testing.T) {
	tests := []struct {
		name     string
		args     []json.RawMessage
		defaults []json.RawMessage
		want     []json.RawMessage
	}{
		{
			name:     "no optional supplied",
			args:     rawList(`"A"`, `null`, `null`),
			defaults: rawList(`1`, `2`),
			want:     rawList(`"A"`),
		},
		{
			name:     "gap filled from default",
			args:     rawList(`"A"`, `null`, `"C"`),
			defaults: rawList(`1`, `2`),
			want:     rawList(`"A"`, `1`, `"C"`),
		},
		{
			name:     "all supplied",
			args:     rawList(`"A"`, `"B"`, `"C"`),
			defaults: rawList(`1`, `2`),
			want:     rawList(`"A"`, `"B"`, `"C"`),
		},
		{
			name:     "trailing unset trimmed",
			args:     rawList(`"A"`, `"B"`, `null`),
			defaults: rawList(`1`, `2`),
			want:     rawList(`"A"`, `"B"`),
		},
		{
			name:     "no defaults",
			args:     rawList(`"A"`, `null`),
			defaults: nil,
			want:     rawList(`"A"`, `null`),
		},
		{
			name:     "only optional arguments",
			args:     rawList(`null`, `null`),
			defaults: rawList(`null`, `null`),
			want:     rawList(),
		},
		{
			name:     "unset required argument is kept",
			args:     rawList(`null`, `null`, `true`),
			defaults: rawList(`false`, `null`),
			want:     rawList(`null`, `false`, `true`),
		},
		{
			name:     "listunspent addresses only",
			args:     rawList(`null`, `null`, `["RAddr"]`),
			defaults: rawList(`0`, `9999999`, `[]`),
			want:     rawList(`0`, `9999999`, `["RAddr"]`),
		},
		{
			name:     "sendtoaddress subtract fee only",
			args:     rawList(`"RAddr"`, `1.5`, `null`, `null`, `null`, `true`),
			defaults: rawList(`1`, `""`, `""`, `false`),
			want:     rawList(`"RAddr"`, `1.5`, `1`, `""`, `""`, `true`),
		},
		{
			name:     "empty raw message is unset",
			args:     rawList(`"A"`, ``),
			defaults: rawList(`1`),
			want:     rawList(`"A"`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HandleDefaults(tt.args, tt.defaults)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("HandleDefaults() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHandleDefaults_contractViolation(t *testing.T) {
	tests := []struct {
		name     string
		args     []json.RawMessage
		defaults []json.RawMessage
	}{
		{
			name:     "more defaults than arguments",
			args:     rawList(`1`),
			defaults: rawList(`1`, `2`),
		},
		{
			name:     "gap without default",
			args:     rawList(`"A"`, `null`, `"C"`),
			defaults: rawList(`null`, `2`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if _, ok := r.(*ContractViolation); !ok {
					t.Errorf("HandleDefaults() panic = %v, want *ContractViolation", r)
				}
			}()
			HandleDefaults(tt.args, tt.defaults)
		})
	}
}

func TestIsUnset(t *testing.T) {
	tests := []struct {
		v    string
		want bool
	}{
		{"", true},
		{"null", true},
		{" null ", true},
		{"0", false},
		{`""`, false},
		{"[]", false},
		{"false", false},
	}
	for _, tt := range tests {
		if got := IsUnset(json.RawMessage(tt.v)); got != tt.want {
			t.Errorf("IsUnset(%q) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
