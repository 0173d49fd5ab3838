package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestSupportedTagsReturnsCopy(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	if len(tags) != 2 {
		t.Fatalf("len(tags) = %d, want 2", len(tags))
	}
	tags[0] = language.Japanese
	if SupportedTags()[0] != language.AmericanEnglish {
		t.Fatal("SupportedTags exposed internal slice")
	}
	if DefaultTag() != language.AmericanEnglish {
		t.Fatalf("DefaultTag = %v", DefaultTag())
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value  string
		want   language.Tag
		wantOK bool
	}{
		{value: "en-US", want: language.AmericanEnglish, wantOK: true},
		{value: "pt-BR", want: language.BrazilianPortuguese, wantOK: true},
		{value: "pt", want: language.BrazilianPortuguese, wantOK: true},
		{value: "en-GB", want: language.AmericanEnglish, wantOK: true},
		{value: "ja", wantOK: false},
		{value: "", wantOK: false},
		{value: "not a tag", wantOK: false},
	}
	for _, tc := range tests {
		got, ok := ParseTag(tc.value)
		if ok != tc.wantOK {
			t.Fatalf("ParseTag(%q) ok = %v, want %v", tc.value, ok, tc.wantOK)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseTag(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestMatchTags(t *testing.T) {
	t.Parallel()

	if got := MatchTags(nil); got != language.AmericanEnglish {
		t.Fatalf("MatchTags(nil) = %v", got)
	}
	if got := MatchTags([]language.Tag{language.BrazilianPortuguese}); got != language.BrazilianPortuguese {
		t.Fatalf("MatchTags(pt-BR) = %v", got)
	}
	if got := MatchTags([]language.Tag{language.Korean}); got != language.AmericanEnglish {
		t.Fatalf("MatchTags(ko) = %v", got)
	}
}
