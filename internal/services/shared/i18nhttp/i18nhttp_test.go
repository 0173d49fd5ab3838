package i18nhttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "http://example.com/?lang=pt-BR", nil)
	tag, persist := ResolveTag(req)
	if tag != language.BrazilianPortuguese {
		t.Fatalf("tag = %v, want %v", tag, language.BrazilianPortuguese)
	}
	if !persist {
		t.Fatal("persist = false, want true")
	}
}

func TestBuildLanguageOptions(t *testing.T) {
	t.Parallel()

	options := BuildLanguageOptions(
		[]language.Tag{language.AmericanEnglish, language.BrazilianPortuguese},
		"pt-BR",
		func(tag language.Tag) string { return tag.String() + "-label" },
	)
	if len(options) != 2 {
		t.Fatalf("len(options) = %d, want 2", len(options))
	}
	if !options[1].Active {
		t.Fatalf("options[1].Active = false, want true")
	}
}

func TestLanguageURL(t *testing.T) {
	t.Parallel()

	got := LanguageURL("/venues", "page=2", "en-US")
	if got == "" {
		t.Fatal("LanguageURL returned empty string")
	}
	if got != "/venues?lang=en-US&page=2" {
		t.Fatalf("LanguageURL = %q", got)
	}
}

func TestResolveTagFallsBackToCookieThenHeader(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "http://example.com/", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "pt-BR"})
	req.Header.Set("Accept-Language", "en-US")
	if tag, persist := ResolveTag(req); tag != language.BrazilianPortuguese || persist {
		t.Fatalf("cookie ResolveTag = %v/%v", tag, persist)
	}

	req = httptest.NewRequest("GET", "http://example.com/?lang=xx-invalid", nil)
	req.Header.Set("Accept-Language", "ja;q=0.8, pt-BR;q=0.9")
	if tag, _ := ResolveTag(req); tag != language.BrazilianPortuguese {
		t.Fatalf("header ResolveTag = %v", tag)
	}

	if tag, _ := ResolveTag(nil); tag != language.AmericanEnglish {
		t.Fatalf("nil ResolveTag = %v", tag)
	}
}

func TestLanguageKeyLabel(t *testing.T) {
	t.Parallel()

	if got := LanguageKeyLabel(language.BrazilianPortuguese); got != "nav.lang_pt_br" {
		t.Fatalf("pt-BR label = %q", got)
	}
	if got := LanguageKeyLabel(language.AmericanEnglish); got != "nav.lang_en" {
		t.Fatalf("en-US label = %q", got)
	}
}

func TestSetLanguageCookieRemembersChoice(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, language.BrazilianPortuguese)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != LangCookieName || cookie.Value != "pt-BR" || !cookie.HttpOnly || cookie.MaxAge <= 0 {
		t.Fatalf("cookie = %+v", cookie)
	}

	SetLanguageCookie(nil, language.AmericanEnglish)
}

func TestBuildLanguageOptionsUnknownActiveMarksDefault(t *testing.T) {
	t.Parallel()

	options := BuildLanguageOptions(
		[]language.Tag{language.AmericanEnglish, language.BrazilianPortuguese},
		"xx-invalid",
		func(language.Tag) string { return " " },
	)
	if !options[0].Active || options[1].Active {
		t.Fatalf("options = %+v, want en-US active", options)
	}
	if options[0].Label != "en-US" {
		t.Fatalf("blank label fallback = %q", options[0].Label)
	}
}
