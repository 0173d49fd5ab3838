package venue

import (
	"encoding/json"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    ID
		wantErr bool
	}{
		{name: "string", raw: "V1", want: "V1"},
		{name: "trimmed string", raw: "  V2 ", want: "V2"},
		{name: "blank string", raw: "  ", wantErr: true},
		{name: "integral float", raw: float64(12), want: "12"},
		{name: "large integral float", raw: float64(1e15), want: "1000000000000000"},
		{name: "fractional float", raw: 12.5, wantErr: true},
		{name: "json number", raw: json.Number("42"), want: "42"},
		{name: "json number with fraction zero", raw: json.Number("42.0"), want: "42"},
		{name: "json number fractional", raw: json.Number("4.2"), wantErr: true},
		{name: "json number beyond int64", raw: json.Number("12345678901234567890"), want: "12345678901234567890"},
		{name: "negative json number beyond int64", raw: json.Number("-92233720368547758090"), want: "-92233720368547758090"},
		{name: "int", raw: 7, want: "7"},
		{name: "int64", raw: int64(9), want: "9"},
		{name: "nil", raw: nil, wantErr: true},
		{name: "bool", raw: true, wantErr: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseID(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseID(%v) expected error, got %q", tc.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%v): %v", tc.raw, err)
			}
			if got != tc.want {
				t.Fatalf("ParseID(%v) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestIDUnmarshalJSON(t *testing.T) {
	var payload struct {
		A ID `json:"a"`
		B ID `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a":"V1","b":12}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.A != "V1" || payload.B != "12" {
		t.Fatalf("payload = %+v", payload)
	}
	if err := json.Unmarshal([]byte(`{"a":12345678901234567890,"b":9007199254740993}`), &payload); err != nil {
		t.Fatalf("unmarshal large ids: %v", err)
	}
	if payload.A != "12345678901234567890" || payload.B != "9007199254740993" {
		t.Fatalf("large ids = %+v", payload)
	}
	if err := json.Unmarshal([]byte(`{"a":1.5}`), &payload); err == nil {
		t.Fatal("expected fractional id to fail")
	}
}

func TestParseFacilityKind(t *testing.T) {
	if kind, err := ParseFacilityKind(" Court "); err != nil || kind != FacilityCourt {
		t.Fatalf("ParseFacilityKind(Court) = %q, %v", kind, err)
	}
	if _, err := ParseFacilityKind("garage"); err == nil {
		t.Fatal("expected unknown kind error")
	}
}
