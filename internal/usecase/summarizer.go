package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tourist-guide/internal/config"
	"github.com/tourist-guide/internal/domain/repository"
	"github.com/tourist-guide/internal/pkg/utils"
)

// Summary - короткая и длинная выжимки, построенные из одного источника
type Summary struct {
	Short      string
	More       string
	Translated bool // true, если текст приведён к целевому языку
}

// Summarizer - движок выжимок с двумя взаимозаменяемыми стратегиями:
// генеративной (переводчик-коллаборатор пишет сразу на целевом языке)
// и экстрактивной (обрезка по границам предложений). Любой отказ
// генеративной стратегии деградирует к экстрактивной; отказ перевода
// деградирует к непереведённому референсному тексту.
type Summarizer struct {
	translator     repository.TranslatorRepository
	logger         *zap.Logger
	shortSentences int
	moreSentences  int
	shortMaxChars  int
	moreMaxChars   int
}

// NewSummarizer - создание нового Summarizer
func NewSummarizer(translator repository.TranslatorRepository, cfg *config.LookupConfig, logger *zap.Logger) *Summarizer {
	return &Summarizer{
		translator:     translator,
		logger:         logger,
		shortSentences: cfg.ShortSentences,
		moreSentences:  cfg.MoreSentences,
		shortMaxChars:  cfg.ShortMaxChars,
		moreMaxChars:   cfg.MoreMaxChars,
	}
}

// Summarize строит обе выжимки из одного источника source.
// needsTranslation = true, когда источник на референсном языке, а целевой
// язык другой (fallback-путь). Выжимки никогда не пустые при непустом
// источнике.
func (s *Summarizer) Summarize(ctx context.Context, source, lang string, needsTranslation bool) Summary {
	if source == "" {
		return Summary{}
	}

	if s.translator.Enabled() {
		if sum, ok := s.generative(ctx, source, lang); ok {
			return sum
		}
		s.logger.Warn("Generative summarization failed, degrading to extractive",
			zap.String("lang", lang))
	}

	return s.extractive(ctx, source, lang, needsTranslation)
}

// generative просит коллаборатора написать обе выжимки сразу на целевом
// языке. Длины дополнительно зажимаются по границам предложений.
func (s *Summarizer) generative(ctx context.Context, source, lang string) (Summary, bool) {
	short, err := s.translator.Summarize(ctx, source, lang, s.shortSentences, s.shortMaxChars)
	if err != nil || short == "" {
		return Summary{}, false
	}

	more, err := s.translator.Summarize(ctx, source, lang, s.moreSentences, s.moreMaxChars)
	if err != nil || more == "" {
		return Summary{}, false
	}

	return Summary{
		Short:      utils.CondenseSentences(short, s.shortSentences, s.shortMaxChars),
		More:       utils.CondenseSentences(more, s.moreSentences, s.moreMaxChars),
		Translated: true,
	}, true
}

// extractive обрезает источник по границам предложений; короткая выжимка -
// префикс длинной. На fallback-пути пытается перевести результат, при
// отказе возвращает непереведённый референсный текст.
func (s *Summarizer) extractive(ctx context.Context, source, lang string, needsTranslation bool) Summary {
	sum := Summary{
		Short: utils.CondenseSentences(source, s.shortSentences, s.shortMaxChars),
		More:  utils.CondenseSentences(source, s.moreSentences, s.moreMaxChars),
	}

	if !needsTranslation {
		sum.Translated = true
		return sum
	}

	if !s.translator.Enabled() {
		return sum
	}

	short, errShort := s.translator.Translate(ctx, sum.Short, lang)
	more, errMore := s.translator.Translate(ctx, sum.More, lang)
	if errShort != nil || errMore != nil || short == "" || more == "" {
		s.logger.Warn("Translation failed, returning reference-language summaries",
			zap.String("lang", lang))
		return sum
	}

	sum.Short = short
	sum.More = more
	sum.Translated = true
	return sum
}
