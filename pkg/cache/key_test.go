package cache

import "testing"

func TestKey(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		params map[string]string
		want   string
	}{
		{"nil params", "animals", nil, "animals"},
		{"empty params", "animals", map[string]string{}, "animals"},
		{"empty values dropped", "animals", map[string]string{"species": "", "status": ""}, "animals"},
		{
			"single param",
			"animals",
			map[string]string{"status": "available"},
			"animals:status=available",
		},
		{
			"params sorted by name",
			"animals",
			map[string]string{"status": "available", "q": "rex", "species": "dog"},
			"animals:q=rex:species=dog:status=available",
		},
		{
			"blank value skipped among others",
			"animals",
			map[string]string{"species": "cat", "q": ""},
			"animals:species=cat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.prefix, tt.params); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyIsOrderInsensitive(t *testing.T) {
	a := Key("animals", map[string]string{"species": "dog", "status": "available"})
	b := Key("animals", map[string]string{"status": "available", "species": "dog"})
	if a != b {
		t.Errorf("same filters produced different keys: %q vs %q", a, b)
	}
}
