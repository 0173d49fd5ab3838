package templates

import (
	platformi18n "github.com/louisbranch/venuedesk/internal/platform/i18n"
	sharedi18n "github.com/louisbranch/venuedesk/internal/services/shared/i18nhttp"
	sharedtemplates "github.com/louisbranch/venuedesk/internal/services/shared/templates"
	"golang.org/x/text/language"
)

// LanguageOption represents a supported language option in the admin UI.
type LanguageOption = sharedi18n.LanguageOption

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext) []LanguageOption {
	return sharedi18n.BuildLanguageOptions(platformi18n.SupportedTags(), page.Lang, func(tag language.Tag) string {
		return T(page.Loc, sharedi18n.LanguageKeyLabel(tag))
	})
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(page PageContext, tag string) string {
	return sharedi18n.LanguageURL(page.CurrentPath, page.CurrentQuery, tag)
}

func languageLinks(page PageContext) []sharedtemplates.LanguageLink {
	options := LanguageOptions(page)
	links := make([]sharedtemplates.LanguageLink, 0, len(options))
	for _, option := range options {
		links = append(links, sharedtemplates.LanguageLink{
			Label:  option.Label,
			URL:    LanguageURL(page, option.Tag),
			Active: option.Active,
		})
	}
	return links
}
