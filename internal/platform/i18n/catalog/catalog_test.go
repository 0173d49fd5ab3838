package catalog

import (
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("pt-BR") {
		t.Fatal("expected locale pt-BR")
	}
	if got := len(bundle.NamespaceMessages("en-US", "errors")); got == 0 {
		t.Fatal("expected en-US errors namespace messages")
	}
}

func TestEmbeddedLocalesAreComplete(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range bundle.Locales() {
		if missing := bundle.MissingKeys(locale); len(missing) > 0 {
			t.Fatalf("locale %s is missing keys: %v", locale, missing)
		}
	}
}

func TestLoadFromFSRejectsErrorKeyOutsideErrorsNamespace(t *testing.T) {
	catalogFS := fstest.MapFS{
		"locales/en-US/admin.yaml": {Data: []byte("locale: en-US\nnamespace: admin\nmessages:\n  error.bad: nope\n")},
	}
	if _, err := LoadFromFS(catalogFS); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	catalogFS := fstest.MapFS{
		"locales/en-US/core.yaml":  {Data: []byte("locale: en-US\nnamespace: core\nmessages:\n  a.key: a\n")},
		"locales/en-US/admin.yaml": {Data: []byte("locale: en-US\nnamespace: admin\nmessages:\n  a.key: b\n")},
	}
	if _, err := LoadFromFS(catalogFS); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	catalogFS := fstest.MapFS{
		"locales/en-US/core.yaml": {Data: []byte("locale: pt-BR\nnamespace: core\nmessages:\n  a.key: a\n")},
	}
	if _, err := LoadFromFS(catalogFS); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	catalogFS := fstest.MapFS{
		"locales/pt-BR/core.yaml": {Data: []byte("locale: pt-BR\nnamespace: core\nmessages:\n  a.key: a\n")},
	}
	if _, err := LoadFromFS(catalogFS); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	catalogFS := fstest.MapFS{
		"locales/en-US/core.yaml": {Data: []byte("locale: en-US\nnamespace: core\nmessages:\n  a.key: hello\n  b.key: bye\n")},
		"locales/pt-BR/core.yaml": {Data: []byte("locale: pt-BR\nnamespace: core\nmessages:\n  a.key: olá\n")},
	}
	bundle, err := LoadFromFS(catalogFS)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, _ := bundle.Message("pt-BR", "a.key"); got != "olá" {
		t.Fatalf("Message(pt-BR, a.key) = %q", got)
	}
	if got, ok := bundle.Message("pt-BR", "b.key"); !ok || got != "bye" {
		t.Fatalf("Message(pt-BR, b.key) = %q, %v", got, ok)
	}
	if missing := bundle.MissingKeys("pt-BR"); len(missing) != 1 || missing[0] != "b.key" {
		t.Fatalf("MissingKeys = %v", missing)
	}
}

func TestDefaultRegistersPrinterMessages(t *testing.T) {
	Default()
	printer := message.NewPrinter(language.English)
	if got := printer.Sprintf("error.VENUE_NAME_EMPTY"); got == "error.VENUE_NAME_EMPTY" {
		t.Fatalf("expected translated message, got key %q", got)
	}
}
