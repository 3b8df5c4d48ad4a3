package dto

import (
	"encoding/json"
	"testing"
)

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{"plain number", `4`, 4, false},
		{"zero", `0`, 0, false},
		{"quoted number", `"12"`, 12, false},
		{"quoted with spaces", `" 7 "`, 7, false},
		{"empty string", `""`, 0, true},
		{"non numeric string", `"young"`, 0, true},
		{"float rejected", `3.5`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt
			err := json.Unmarshal([]byte(tt.in), &f)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s): expected error, got %d", tt.in, f.Int())
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.in, err)
			}
			if f.Int() != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.in, f.Int(), tt.want)
			}
		})
	}
}

func TestFlexIntMarshal(t *testing.T) {
	out, err := json.Marshal(FlexInt(9))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "9" {
		t.Errorf("Marshal = %s, want 9", out)
	}
}

func TestFlexIntInStruct(t *testing.T) {
	type payload struct {
		Age *FlexInt `json:"age"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"age":"3"}`), &p); err != nil {
		t.Fatal(err)
	}
	if p.Age == nil || p.Age.Int() != 3 {
		t.Errorf("age = %v, want 3", p.Age)
	}

	p = payload{}
	if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
		t.Fatal(err)
	}
	if p.Age != nil {
		t.Errorf("absent age should stay nil, got %d", p.Age.Int())
	}
}
