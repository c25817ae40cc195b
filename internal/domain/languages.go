package domain

import "sort"

// deepLLanguages maps the display names accepted by the dedicated translation
// API to its two-letter target codes. English is the source language and is
// deliberately absent.
var deepLLanguages = map[string]string{
	"Bulgarian":          "BG",
	"Czech":              "CS",
	"Danish":             "DA",
	"German":             "DE",
	"Greek":              "EL",
	"Spanish":            "ES",
	"Estonian":           "ET",
	"Finnish":            "FI",
	"French":             "FR",
	"Hungarian":          "HU",
	"Indonesian":         "ID",
	"Italian":            "IT",
	"Japanese":           "JA",
	"Korean":             "KO",
	"Lithuanian":         "LT",
	"Latvian":            "LV",
	"Norwegian (Bokmål)": "NB",
	"Dutch":              "NL",
	"Polish":             "PL",
	"Portuguese":         "PT",
	"Romanian":           "RO",
	"Russian":            "RU",
	"Slovak":             "SK",
	"Slovenian":          "SL",
	"Swedish":            "SV",
	"Turkish":            "TR",
	"Ukrainian":          "UK",
	"Chinese":            "ZH",
}

// LanguageCode returns the target code for a supported display name.
func LanguageCode(name string) (string, bool) {
	code, ok := deepLLanguages[name]
	return code, ok
}

// SupportedLanguages returns the supported display names in sorted order.
func SupportedLanguages() []string {
	names := make([]string, 0, len(deepLLanguages))
	for name := range deepLLanguages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SelectableLanguages is the list offered to users: English (no-op) first.
func SelectableLanguages() []string {
	return append([]string{SourceLanguage}, SupportedLanguages()...)
}
