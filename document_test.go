package hypermedia

import "testing"

func TestIsArrayShape(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`[]`, true},
		{`[{"type":"posts"}]`, true},
		{`{"type":"posts"}`, false},
		{`  [1,2,3]`, true},
		{``, false},
		{`null`, false},
	}
	for _, tt := range tests {
		if got := isArrayShape([]byte(tt.raw)); got != tt.want {
			t.Errorf("isArrayShape(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestIsJSONNull(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{``, true},
		{`null`, true},
		{`  null  `, true},
		{`{"type":"posts"}`, false},
		{`0`, false},
	}
	for _, tt := range tests {
		if got := isJSONNull([]byte(tt.raw)); got != tt.want {
			t.Errorf("isJSONNull(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
