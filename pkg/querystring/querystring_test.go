package querystring

import "testing"

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
		want   string
	}{
		{
			name:   "empty map",
			params: map[string]string{},
			want:   "",
		},
		{
			name:   "nil map",
			params: nil,
			want:   "",
		},
		{
			name:   "single pair",
			params: map[string]string{"q": "golang"},
			want:   "q=golang",
		},
		{
			name:   "space encoded as percent-20",
			params: map[string]string{"q": "a b"},
			want:   "q=a%20b",
		},
		{
			name:   "keys sorted",
			params: map[string]string{"z": "1", "a": "2", "m": "3"},
			want:   "a=2&m=3&z=1",
		},
		{
			name:   "reserved characters escaped",
			params: map[string]string{"redirect": "https://example.com/?x=1&y=2"},
			want:   "redirect=https%3A%2F%2Fexample.com%2F%3Fx%3D1%26y%3D2",
		},
		{
			name:   "empty value kept",
			params: map[string]string{"flag": ""},
			want:   "flag=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.params); got != tt.want {
				t.Errorf("Encode(%v) = %q, want %q", tt.params, got, tt.want)
			}
		})
	}
}
