package domain

import "golang.org/x/text/language"

// ReferenceLang - референсный язык: geosearch всегда выполняется только
// по нему, чтобы набор кандидатов не зависел от языка пользователя
const ReferenceLang = "en"

// SupportedLanguages - поддерживаемые языки ответа (ISO 639-1 -> название)
var SupportedLanguages = map[string]string{
	"en": "English",
	"de": "German",
	"fr": "French",
	"es": "Spanish",
	"it": "Italian",
	"ar": "Arabic",
	"zh": "Chinese",
	"ja": "Japanese",
	"ru": "Russian",
	"nl": "Dutch",
	"pt": "Portuguese",
	"fa": "Persian",
	"ur": "Urdu",
	"bn": "Bengali",
	"pl": "Polish",
	"sv": "Swedish",
	"no": "Norwegian",
	"da": "Danish",
	"fi": "Finnish",
	"hu": "Hungarian",
	"tr": "Turkish",
	"hi": "Hindi",
}

// NormalizeLang приводит языковой код к базовому ISO 639-1 коду.
// Пустой код заменяется на defaultLang, неизвестный или неподдерживаемый -
// на референсный язык.
func NormalizeLang(code, defaultLang string) string {
	if code == "" {
		code = defaultLang
	}

	tag, err := language.Parse(code)
	if err != nil {
		return ReferenceLang
	}

	base, _ := tag.Base()
	normalized := base.String()

	if _, ok := SupportedLanguages[normalized]; !ok {
		return ReferenceLang
	}
	return normalized
}
