package repository

import "context"

// TranslatorRepository определяет генеративного коллаборатора для
// суммаризации и перевода. Любой его отказ поглощается пайплайном:
// ответ деградирует к экстрактивной выжимке и референсному языку.
type TranslatorRepository interface {
	// Enabled сообщает, сконфигурирован ли коллаборатор
	Enabled() bool

	// Summarize сжимает текст примерно до sentences строк-предложений
	// на языке lang, не превышая maxChars символов
	Summarize(ctx context.Context, text, lang string, sentences, maxChars int) (string, error)

	// Translate переводит текст на язык targetLang
	Translate(ctx context.Context, text, targetLang string) (string, error)
}
