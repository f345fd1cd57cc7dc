package discovery

import (
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// supportedLanguageCodes are the original-language ISO 639-1 codes offered as
// filters. Display names come from x/text so the option list matches what the
// codes actually mean.
var supportedLanguageCodes = []string{"en", "hi", "te", "ta", "ml"}

// supportedLanguages maps an English display name to its ISO code.
var supportedLanguages = buildLanguageTable(supportedLanguageCodes)

func buildLanguageTable(codes []string) map[string]string {
	namer := display.English.Languages()
	table := make(map[string]string, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		table[namer.Name(tag)] = code
	}
	return table
}

// LanguageOptions returns the language filter choices: the Any sentinel
// followed by the supported display names, sorted.
func LanguageOptions() []string {
	names := make([]string, 0, len(supportedLanguages))
	for name := range supportedLanguages {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{LanguageAny}, names...)
}
