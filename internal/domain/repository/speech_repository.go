package repository

import "context"

// SpeechRepository определяет синтез речи из текста
type SpeechRepository interface {
	// Synthesize озвучивает текст на языке lang.
	// Возвращает аудио и MIME-тип.
	Synthesize(ctx context.Context, text, lang string) ([]byte, string, error)
}
