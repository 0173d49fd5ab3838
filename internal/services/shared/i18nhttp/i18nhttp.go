// Package i18nhttp picks the console language for a request and renders the
// language switcher in the page header.
//
// A language chosen with ?lang= sticks in the vd_lang cookie; otherwise the
// cookie, then Accept-Language, then en-US decide.
package i18nhttp

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	platformi18n "github.com/louisbranch/venuedesk/internal/platform/i18n"
	_ "github.com/louisbranch/venuedesk/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam switches the console language for one request and remembers it.
	LangParam = "lang"
	// LangCookieName holds the operator's remembered console language.
	LangCookieName = "vd_lang"

	languageCookieMaxAge = 365 * 24 * time.Hour
)

// LanguageOption is one entry of the header language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

// Printer returns the catalog printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag picks the console language for r. remember is true only when
// the choice came from ?lang= and should be written to LangCookieName.
func ResolveTag(r *http.Request) (tag language.Tag, remember bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}
	if tag, ok := queryLanguage(r); ok {
		return tag, true
	}
	if tag, ok := cookieLanguage(r); ok {
		return tag, false
	}
	if tag, ok := headerLanguage(r); ok {
		return tag, false
	}
	return platformi18n.DefaultTag(), false
}

func queryLanguage(r *http.Request) (language.Tag, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(LangParam))
	if raw == "" {
		return language.Und, false
	}
	return platformi18n.ParseTag(raw)
}

func cookieLanguage(r *http.Request) (language.Tag, bool) {
	cookie, err := r.Cookie(LangCookieName)
	if err != nil {
		return language.Und, false
	}
	return platformi18n.ParseTag(cookie.Value)
}

func headerLanguage(r *http.Request) (language.Tag, bool) {
	accept := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if accept == "" {
		return language.Und, false
	}
	preferred, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(preferred) == 0 {
		return language.Und, false
	}
	return platformi18n.MatchTags(preferred), true
}

// SetLanguageCookie remembers tag for later console requests.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int(languageCookieMaxAge / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// BuildLanguageOptions lists the switcher entries in supported order and marks
// activeLang. Unknown active values mark the default language. label may be
// nil or return "" to fall back to the tag itself.
func BuildLanguageOptions(supported []language.Tag, activeLang string, label func(tag language.Tag) string) []LanguageOption {
	active, ok := platformi18n.ParseTag(activeLang)
	if !ok {
		active = platformi18n.DefaultTag()
	}
	options := make([]LanguageOption, len(supported))
	for i, tag := range supported {
		name := ""
		if label != nil {
			name = strings.TrimSpace(label(tag))
		}
		if name == "" {
			name = tag.String()
		}
		options[i] = LanguageOption{Tag: tag.String(), Label: name, Active: tag == active}
	}
	return options
}

// LanguageURL links back to path with LangParam set to tag, keeping the rest
// of the query so filters and page tokens survive a language switch.
func LanguageURL(path string, rawQuery string, tag string) string {
	if path = strings.TrimSpace(path); path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	target := url.URL{Path: path, RawQuery: query.Encode()}
	return target.String()
}

// LanguageKeyLabel returns the catalog key naming tag in the switcher.
func LanguageKeyLabel(tag language.Tag) string {
	base, _ := tag.Base()
	switch base {
	case language.MustParseBase("pt"):
		return "nav.lang_pt_br"
	case language.MustParseBase("en"):
		return "nav.lang_en"
	}
	return tag.String()
}
