// Package i18n lists the console locales and resolves requested language tags
// against them.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var supportedTags = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var tagMatcher = language.NewMatcher(supportedTags)

// SupportedTags returns the locales the catalogs translate, default first.
func SupportedTags() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// DefaultTag returns the fallback locale.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag resolves value to a supported tag. A bare language ("pt") or a
// regional variant ("en-GB") resolves to the supported tag sharing its base.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	for _, tag := range supportedTags {
		if tag == parsed {
			return tag, true
		}
	}
	base, confidence := parsed.Base()
	if confidence == language.No {
		return language.Tag{}, false
	}
	for _, tag := range supportedTags {
		if supportedBase, _ := tag.Base(); supportedBase == base {
			return tag, true
		}
	}
	return language.Tag{}, false
}

// MatchTags picks the best supported tag for a preference list such as a
// parsed Accept-Language header.
func MatchTags(preferred []language.Tag) language.Tag {
	if len(preferred) == 0 {
		return DefaultTag()
	}
	_, index, confidence := tagMatcher.Match(preferred...)
	if confidence == language.No || index < 0 || index >= len(supportedTags) {
		return DefaultTag()
	}
	return supportedTags[index]
}
