// Package branding holds product naming shared by rendered pages.
package branding

// AppName is the product name shown in page titles and headers.
const AppName = "Venuedesk"
