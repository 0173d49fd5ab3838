package geofence

import "testing"

func TestTypeCode(t *testing.T) {
	if got := Radius.TypeCode(); got != 1 {
		t.Fatalf("Radius.TypeCode() = %d, want 1", got)
	}
	if got := Polygon.TypeCode(); got != 2 {
		t.Fatalf("Polygon.TypeCode() = %d, want 2", got)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "radius", want: Radius},
		{in: " Polygon ", want: Polygon},
		{in: "1", want: Radius},
		{in: "2", want: Polygon},
		{in: "3", wantErr: true},
		{in: "circle", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseMode(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseMode(%q) expected error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseMode(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestModeFromTypeCodeRoundTrip(t *testing.T) {
	for _, mode := range []Mode{Radius, Polygon} {
		got, err := ModeFromTypeCode(mode.TypeCode())
		if err != nil {
			t.Fatalf("ModeFromTypeCode(%d): %v", mode.TypeCode(), err)
		}
		if got != mode {
			t.Fatalf("round trip = %v, want %v", got, mode)
		}
	}
}

func TestSelectorDefaultsToRadius(t *testing.T) {
	var s Selector
	if s.Mode() != Radius {
		t.Fatalf("zero selector mode = %v, want radius", s.Mode())
	}
	s.Set(Polygon)
	if s.Mode() != Polygon {
		t.Fatalf("mode after Set = %v, want polygon", s.Mode())
	}
	s.Reset()
	if s.Mode() != Radius {
		t.Fatalf("mode after Reset = %v, want radius", s.Mode())
	}
}
