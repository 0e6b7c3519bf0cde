package i18n

import (
	"strings"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language identifies one of the supported translation sets
type Language string

// Supported languages. Other carries the English fallback strings.
const (
	EnglishUS          Language = "en-US"
	Russian            Language = "ru-RU"
	ChineseSimplified  Language = "zh-CN"
	ChineseTraditional Language = "zh-TW"
	Spanish            Language = "es-ES"
	French             Language = "fr-FR"
	German             Language = "de-DE"
	Japanese           Language = "ja-JP"
	Korean             Language = "ko-KR"
	Portuguese         Language = "pt-BR"
	Other              Language = "other"
)

// DefaultLocale is used when the OS locale cannot be read
const DefaultLocale = "en-US"

// SystemLanguage asks for OS locale detection
const SystemLanguage = "system"

// supported lists the matchable languages in matcher order
var supported = []Language{
	EnglishUS,
	Russian,
	ChineseSimplified,
	ChineseTraditional,
	Spanish,
	French,
	German,
	Japanese,
	Korean,
	Portuguese,
}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, 0, len(supported))
	for _, lang := range supported {
		tags = append(tags, language.MustParse(string(lang)))
	}
	return tags
}

// Languages returns the supported languages, fallback excluded
func Languages() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// DisplayName returns the language name written in that language
func (l Language) DisplayName() string {
	if l == Other {
		return display.Self.Name(language.AmericanEnglish)
	}
	tag, err := language.Parse(string(l))
	if err != nil {
		return string(l)
	}
	return display.Self.Name(tag)
}

// LocaleSource returns the OS locale string
type LocaleSource func() (string, error)

// Detect reads the OS locale and resolves it to a supported language.
// A failed read behaves like DefaultLocale.
func Detect() Language {
	return DetectWith(locale.GetLocale)
}

// DetectWith resolves the locale reported by source
func DetectWith(source LocaleSource) Language {
	tag, err := source()
	if err != nil || strings.TrimSpace(tag) == "" {
		tag = DefaultLocale
	}
	return Resolve(tag)
}

// Resolve maps a locale string such as "ru-RU" or "ja_JP.UTF-8" to a
// supported language, or Other when nothing fits
func Resolve(tag string) Language {
	normalized := normalizeLocale(tag)
	if normalized == "" {
		return Other
	}

	for _, lang := range supported {
		if strings.EqualFold(string(lang), normalized) {
			return lang
		}
	}

	parsed, err := language.Parse(normalized)
	if err != nil {
		return Other
	}

	_, index, confidence := matcher.Match(parsed)
	if confidence < language.High || index < 0 || index >= len(supported) {
		return Other
	}
	return supported[index]
}

// normalizeLocale turns POSIX locale names into BCP 47 form
func normalizeLocale(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	if tag == "C" || tag == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(tag, "_", "-")
}
