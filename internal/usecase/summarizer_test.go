package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/tourist-guide/internal/usecase"
)

func newTestSummarizer(translator *MockTranslatorRepository) *usecase.Summarizer {
	cfg := testLookupConfig()
	return usecase.NewSummarizer(translator, &cfg, zap.NewNop())
}

func TestSummarizer_Summarize(t *testing.T) {
	ctx := context.Background()

	source := "One. Two. Three. Four. Five. Six. Seven. Eight. Nine. Ten. " +
		"Eleven. Twelve. Thirteen. Fourteen. Fifteen. Sixteen. Seventeen."

	t.Run("extractive when translator disabled", func(t *testing.T) {
		translator := &MockTranslatorRepository{}
		translator.On("Enabled").Return(false)

		sum := newTestSummarizer(translator).Summarize(ctx, source, "en", false)

		assert.Equal(t, "One. Two. Three. Four. Five.", sum.Short)
		assert.True(t, strings.HasPrefix(sum.More, sum.Short))
		assert.Contains(t, sum.More, "Fifteen.")
		assert.NotContains(t, sum.More, "Sixteen.")
		assert.True(t, sum.Translated)
	})

	t.Run("generative path produces both summaries", func(t *testing.T) {
		translator := &MockTranslatorRepository{}
		translator.On("Enabled").Return(true)
		translator.On("Summarize", mock.Anything, source, "fr", 5, 700).
			Return("Résumé court. En cinq phrases.", nil)
		translator.On("Summarize", mock.Anything, source, "fr", 15, 3000).
			Return("Résumé long. Avec plus de détails. Et encore.", nil)

		sum := newTestSummarizer(translator).Summarize(ctx, source, "fr", true)

		assert.Equal(t, "Résumé court. En cinq phrases.", sum.Short)
		assert.Equal(t, "Résumé long. Avec plus de détails. Et encore.", sum.More)
		assert.True(t, sum.Translated)
		translator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("generative failure degrades to extractive with translation", func(t *testing.T) {
		translator := &MockTranslatorRepository{}
		translator.On("Enabled").Return(true)
		translator.On("Summarize", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("model overloaded"))
		translator.On("Translate", mock.Anything, "One. Two. Three. Four. Five.", "fr").
			Return("Un. Deux. Trois. Quatre. Cinq.", nil)
		translator.On("Translate", mock.Anything, mock.Anything, "fr").
			Return("Texte long traduit.", nil)

		sum := newTestSummarizer(translator).Summarize(ctx, source, "fr", true)

		assert.Equal(t, "Un. Deux. Trois. Quatre. Cinq.", sum.Short)
		assert.True(t, sum.Translated)
	})

	t.Run("translation failure keeps reference text", func(t *testing.T) {
		translator := &MockTranslatorRepository{}
		translator.On("Enabled").Return(true)
		translator.On("Summarize", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("model overloaded"))
		translator.On("Translate", mock.Anything, mock.Anything, "fr").
			Return("", errors.New("quota exceeded"))

		sum := newTestSummarizer(translator).Summarize(ctx, source, "fr", true)

		assert.Equal(t, "One. Two. Three. Four. Five.", sum.Short)
		assert.False(t, sum.Translated)
	})

	t.Run("no translation needed for native source", func(t *testing.T) {
		translator := &MockTranslatorRepository{}
		translator.On("Enabled").Return(false)

		sum := newTestSummarizer(translator).Summarize(ctx, source, "fr", false)

		assert.Equal(t, "One. Two. Three. Four. Five.", sum.Short)
		assert.True(t, sum.Translated)
		translator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("generative output clamped to sentence budget", func(t *testing.T) {
		translator := &MockTranslatorRepository{}
		translator.On("Enabled").Return(true)
		translator.On("Summarize", mock.Anything, source, "en", 5, 700).
			Return("A. B. C. D. E. F. G. H.", nil)
		translator.On("Summarize", mock.Anything, source, "en", 15, 3000).
			Return("A. B. C.", nil)

		sum := newTestSummarizer(translator).Summarize(ctx, source, "en", false)

		assert.Equal(t, "A. B. C. D. E.", sum.Short)
		assert.Equal(t, "A. B. C.", sum.More)
	})

	t.Run("empty source yields empty summary", func(t *testing.T) {
		translator := &MockTranslatorRepository{}

		sum := newTestSummarizer(translator).Summarize(ctx, "", "en", false)

		assert.Empty(t, sum.Short)
		assert.Empty(t, sum.More)
	})
}
