package branding

import "testing"

func TestAppName(t *testing.T) {
	if AppName != "Venuedesk" {
		t.Fatalf("AppName = %q, want %q", AppName, "Venuedesk")
	}
}
