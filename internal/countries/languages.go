package countries

import "golang.org/x/text/language"

// DefaultLanguage is the label every record is guaranteed to carry.
const DefaultLanguage = "English"

// SupportedLanguages returns the language labels the menu surface offers,
// in menu order. The dataset may carry more labels than these.
func SupportedLanguages() []string {
	return []string{
		"English",
		"Arabic",
		"Chinese",
		"French",
		"Hindi",
		"Korean",
		"Japanese",
		"Russian",
	}
}

// LanguageTag maps a label to its BCP 47 tag. Labels are the dataset's
// human-readable keys, not codes, so the mapping is a fixed table.
func LanguageTag(label string) (language.Tag, bool) {
	switch label {
	case "English":
		return language.English, true
	case "Arabic":
		return language.Arabic, true
	case "Chinese":
		return language.Chinese, true
	case "French":
		return language.French, true
	case "Hindi":
		return language.Hindi, true
	case "Korean":
		return language.Korean, true
	case "Japanese":
		return language.Japanese, true
	case "Russian":
		return language.Russian, true
	}
	return language.Und, false
}
