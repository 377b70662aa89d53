package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/tourist-guide/internal/pkg/errors"
	"github.com/tourist-guide/internal/usecase"
	"github.com/tourist-guide/internal/usecase/dto"
)

func TestSpeechUseCase_Speak(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	cfg := testLookupConfig()

	t.Run("successful synthesis", func(t *testing.T) {
		mockSpeech := &MockSpeechRepository{}
		mockSpeech.On("Synthesize", mock.Anything, "Hello there.", "en").
			Return([]byte{0xFF, 0xF3}, "audio/mpeg", nil)

		uc := usecase.NewSpeechUseCase(mockSpeech, &cfg, logger)

		audio, mime, err := uc.Speak(ctx, dto.SpeakRequest{Text: "Hello there.", Lang: "en"})
		require.NoError(t, err)
		assert.Equal(t, "audio/mpeg", mime)
		assert.NotEmpty(t, audio)
	})

	t.Run("whitespace text rejected", func(t *testing.T) {
		uc := usecase.NewSpeechUseCase(&MockSpeechRepository{}, &cfg, logger)

		_, _, err := uc.Speak(ctx, dto.SpeakRequest{Text: "   "})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})

	t.Run("unsupported language normalized to reference", func(t *testing.T) {
		mockSpeech := &MockSpeechRepository{}
		mockSpeech.On("Synthesize", mock.Anything, "Hola.", "en").
			Return([]byte{0xFF}, "audio/mpeg", nil)

		uc := usecase.NewSpeechUseCase(mockSpeech, &cfg, logger)

		_, _, err := uc.Speak(ctx, dto.SpeakRequest{Text: "Hola.", Lang: "xx"})
		require.NoError(t, err)
		mockSpeech.AssertCalled(t, "Synthesize", mock.Anything, "Hola.", "en")
	})

	t.Run("synthesis failure", func(t *testing.T) {
		mockSpeech := &MockSpeechRepository{}
		mockSpeech.On("Synthesize", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, "", errors.New("upstream refused"))

		uc := usecase.NewSpeechUseCase(mockSpeech, &cfg, logger)

		_, _, err := uc.Speak(ctx, dto.SpeakRequest{Text: "Hello.", Lang: "en"})
		assert.ErrorIs(t, err, apperrors.ErrSpeechFailed)
	})

	t.Run("empty audio treated as failure", func(t *testing.T) {
		mockSpeech := &MockSpeechRepository{}
		mockSpeech.On("Synthesize", mock.Anything, mock.Anything, mock.Anything).
			Return([]byte{}, "audio/mpeg", nil)

		uc := usecase.NewSpeechUseCase(mockSpeech, &cfg, logger)

		_, _, err := uc.Speak(ctx, dto.SpeakRequest{Text: "Hello.", Lang: "en"})
		assert.ErrorIs(t, err, apperrors.ErrSpeechFailed)
	})
}
