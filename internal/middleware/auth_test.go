package middleware

import "testing"

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"spaces only", "   ", ""},
		{"plain token", "abc.def.ghi", "abc.def.ghi"},
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase bearer", "bearer abc.def.ghi", "abc.def.ghi"},
		{"bearer with extra spaces", "Bearer   abc.def.ghi  ", "abc.def.ghi"},
		{"leading whitespace", "  abc.def.ghi", "abc.def.ghi"},
		{"bearer only", "Bearer ", ""},
		{"bearer keyword without token", "Bearer", ""},
		{"bearer keyword lowercase", "bearer", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeToken(tt.in); got != tt.want {
				t.Errorf("NormalizeToken(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
