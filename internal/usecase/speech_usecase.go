package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tourist-guide/internal/config"
	"github.com/tourist-guide/internal/domain"
	"github.com/tourist-guide/internal/domain/repository"
	"github.com/tourist-guide/internal/pkg/errors"
	"github.com/tourist-guide/internal/usecase/dto"
)

// SpeechUseCase - озвучивание текста (обычно short_summary места)
type SpeechUseCase struct {
	speechRepo  repository.SpeechRepository
	logger      *zap.Logger
	defaultLang string
}

// NewSpeechUseCase - создание нового SpeechUseCase
func NewSpeechUseCase(speechRepo repository.SpeechRepository, cfg *config.LookupConfig, logger *zap.Logger) *SpeechUseCase {
	return &SpeechUseCase{
		speechRepo:  speechRepo,
		logger:      logger,
		defaultLang: cfg.DefaultLang,
	}
}

// Speak синтезирует аудио для текста на целевом языке.
// Возвращает аудио и MIME-тип.
func (uc *SpeechUseCase) Speak(ctx context.Context, req dto.SpeakRequest) ([]byte, string, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, "", errors.ErrInvalidRequest
	}

	lang := domain.NormalizeLang(req.Lang, uc.defaultLang)

	audio, mime, err := uc.speechRepo.Synthesize(ctx, text, lang)
	if err != nil {
		uc.logger.Error("Speech synthesis failed",
			zap.String("lang", lang),
			zap.Error(err))
		return nil, "", errors.ErrSpeechFailed
	}
	if len(audio) == 0 {
		return nil, "", errors.ErrSpeechFailed
	}

	return audio, mime, nil
}
