package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tourist-guide/internal/config"
	"github.com/tourist-guide/internal/domain"
	"github.com/tourist-guide/internal/domain/repository"
	"github.com/tourist-guide/internal/pkg/errors"
	"github.com/tourist-guide/internal/pkg/utils"
	"github.com/tourist-guide/internal/usecase/dto"
)

// LookupUseCase - основной пайплайн: координаты -> кандидаты референсного
// языка -> каноническая идентичность -> локализованный контент ->
// fallback и выжимки. Пайплайн не падает из-за отказа локализации:
// каждый этап деградирует к референсному языку.
type LookupUseCase struct {
	geoRepo      repository.GeoRepository
	identityRepo repository.IdentityRepository
	registryRepo repository.RegistryRepository
	contentRepo  repository.ContentRepository
	translator   repository.TranslatorRepository
	cacheRepo    repository.CacheRepository
	streamRepo   repository.StreamRepository // nil - prefetch отключён
	summarizer   *Summarizer
	logger       *zap.Logger
	cfg          config.LookupConfig
	cacheTTL     time.Duration
	prefetchLang []string
}

// NewLookupUseCase - создание нового LookupUseCase.
// streamRepo может быть nil: тогда prefetch-задачи не публикуются
// (так сконфигурирован сам prefetch-воркер, чтобы не зациклиться).
func NewLookupUseCase(
	geoRepo repository.GeoRepository,
	identityRepo repository.IdentityRepository,
	registryRepo repository.RegistryRepository,
	contentRepo repository.ContentRepository,
	translator repository.TranslatorRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
	cfg config.LookupConfig,
	cacheTTL time.Duration,
	prefetchLangs []string,
) *LookupUseCase {
	return &LookupUseCase{
		geoRepo:      geoRepo,
		identityRepo: identityRepo,
		registryRepo: registryRepo,
		contentRepo:  contentRepo,
		translator:   translator,
		cacheRepo:    cacheRepo,
		streamRepo:   streamRepo,
		summarizer:   NewSummarizer(translator, &cfg, logger),
		logger:       logger,
		cfg:          cfg,
		cacheTTL:     cacheTTL,
		prefetchLang: prefetchLangs,
	}
}

// Lookup выполняет поиск места рядом с координатой на целевом языке
func (uc *LookupUseCase) Lookup(ctx context.Context, req dto.LookupRequest) (*dto.LookupResponse, error) {
	// Установка значений по умолчанию
	if req.Radius == 0 {
		req.Radius = uc.cfg.DefaultRadius
	}
	if req.Limit == 0 {
		req.Limit = uc.cfg.DefaultLimit
	}
	if req.Limit > uc.cfg.MaxLimit {
		req.Limit = uc.cfg.MaxLimit
	}

	// Валидация
	if !utils.ValidateCoordinates(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateRadius(req.Radius) {
		return nil, errors.ErrInvalidRadius
	}
	if req.Limit < 1 {
		return nil, errors.ErrInvalidLimit
	}

	lang := domain.NormalizeLang(req.Lang, uc.cfg.DefaultLang)

	// Кеш готовых ответов. Ключ включает язык; сам набор кандидатов от
	// языка не зависит, т.к. geosearch всегда референсный.
	cacheKey := lookupCacheKey(req.Lat, req.Lng, req.Radius, req.Limit, lang)
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	coord := domain.Coordinate{Lat: req.Lat, Lng: req.Lng}
	candidates, err := uc.geoRepo.FindNearby(ctx, coord, req.Radius, req.Limit)
	if err != nil {
		uc.logger.Error("Geosearch failed", zap.Error(err))
		return nil, errors.ErrSourceUnavailable
	}
	if len(candidates) == 0 {
		// "Ничего нет в радиусе" - не ошибка
		return &dto.LookupResponse{Candidates: []dto.PlaceDTO{}}, nil
	}

	// Источник иногда не отдаёт dist; тогда расстояние считается по
	// haversine от точки запроса
	for i := range candidates {
		if candidates[i].DistanceMeters == 0 {
			candidates[i].DistanceMeters = utils.HaversineDistance(
				coord.Lat, coord.Lng, candidates[i].Lat, candidates[i].Lng) * 1000
		}
	}

	// Fan-out по кандидатам, fan-in с сохранением порядка geosearch.
	// Этапы - чистые функции своих входов, общего изменяемого
	// состояния между горутинами нет.
	places := make([]*dto.PlaceDTO, len(candidates))
	failures := make([]error, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.FanOutLimit)
	for i, cand := range candidates {
		g.Go(func() error {
			place, err := uc.resolvePlace(gctx, cand, lang)
			if err != nil {
				uc.logger.Warn("Failed to resolve candidate",
					zap.String("title", cand.Title),
					zap.Int64("pageid", cand.PageID),
					zap.Error(err))
				failures[i] = err
				return nil
			}
			places[i] = place
			return nil
		})
	}
	_ = g.Wait()

	resolved := make([]dto.PlaceDTO, 0, len(places))
	for _, p := range places {
		if p != nil {
			resolved = append(resolved, *p)
		}
	}

	if len(resolved) == 0 {
		// Все кандидаты отвалились: если хотя бы один упал на
		// референсном фетче - это отказ источника, иначе все
		// страницы просто исчезли
		for _, ferr := range failures {
			if ferr != nil {
				return nil, errors.ErrSourceUnavailable
			}
		}
		return &dto.LookupResponse{Candidates: []dto.PlaceDTO{}}, nil
	}

	// Лучшее место: первый кандидат с картинкой, иначе просто первый
	best := resolved[0]
	for _, p := range resolved {
		if p.ThumbnailURL != "" {
			best = p
			break
		}
	}

	response := &dto.LookupResponse{
		Best:       &best,
		Candidates: resolved,
	}

	uc.toCache(ctx, cacheKey, response)
	uc.publishPrefetch(ctx, req)

	return response, nil
}

// resolvePlace прогоняет одного кандидата через пайплайн:
// identity -> локализованный контент -> fallback -> выжимки.
// (nil, nil) - страница сущности исчезла из источника (не ошибка);
// ошибка возвращается только при отказе референсного фетча.
func (uc *LookupUseCase) resolvePlace(ctx context.Context, cand domain.Candidate, lang string) (*dto.PlaceDTO, error) {
	// 1. Каноническая идентичность. Отказ реестра поглощается:
	// кандидат остаётся пригодным, просто все языки кроме
	// референсного считаются недоступными.
	var qid domain.CanonicalID
	if id, ok, err := uc.identityRepo.ResolveIdentity(ctx, cand.PageID); err != nil {
		uc.logger.Warn("Identity resolution failed, treating as absent",
			zap.Int64("pageid", cand.PageID),
			zap.Error(err))
	} else if ok {
		qid = id
	}

	// 2. Заголовок страницы на целевом языке
	nativeTitle := ""
	if lang == domain.ReferenceLang {
		nativeTitle = cand.Title
	} else if !qid.IsZero() {
		if title, ok, err := uc.registryRepo.TitleInLanguage(ctx, qid, lang); err != nil {
			uc.logger.Warn("Sitelink lookup failed, treating as absent",
				zap.String("qid", string(qid)),
				zap.String("lang", lang),
				zap.Error(err))
		} else if ok {
			nativeTitle = title
		}
	}

	// 3. Контент: нативный, иначе референсный fallback
	var content *domain.LocalizedContent
	if nativeTitle != "" {
		c, found, err := uc.contentRepo.GetSummary(ctx, nativeTitle, lang)
		if err != nil {
			uc.logger.Warn("Native content fetch failed, falling back to reference",
				zap.String("title", nativeTitle),
				zap.String("lang", lang),
				zap.Error(err))
		} else if found {
			content = c
		}
	}

	fallback := false
	if content == nil {
		c, found, err := uc.contentRepo.GetSummary(ctx, cand.Title, domain.ReferenceLang)
		if err != nil {
			// Референсный фетч - последний рубеж
			return nil, fmt.Errorf("reference fetch: %w", err)
		}
		if !found {
			// Страница удалена или переименована в источнике
			return nil, nil
		}
		content = c
		fallback = lang != domain.ReferenceLang
	}
	content.Fallback = fallback

	// 4. Один источник для обеих выжимок: полный текст статьи,
	// иначе extract из summary, иначе заголовок с описанием
	source, sourceLang := uc.summarySource(ctx, cand, content, nativeTitle, lang, fallback)
	summary := uc.summarizer.Summarize(ctx, source, lang, sourceLang != lang)

	// 5. Перевод заголовка и описания на fallback-пути; отказ
	// перевода оставляет референсный текст
	if fallback && uc.translator.Enabled() {
		if tr, err := uc.translator.Translate(ctx, content.Title, lang); err == nil && tr != "" {
			content.Title = tr
		}
		if content.Description != "" {
			if tr, err := uc.translator.Translate(ctx, content.Description, lang); err == nil && tr != "" {
				content.Description = tr
			}
		}
	}

	short := summary.Short
	if short == "" {
		short = content.Extract
	}
	more := summary.More
	if more == "" {
		more = short
	}

	return &dto.PlaceDTO{
		Title:            content.Title,
		NormalizedTitle:  content.NormalizedTitle,
		Description:      content.Description,
		Coordinates:      dto.CoordinatesDTO{Lat: cand.Lat, Lng: cand.Lng},
		PageURL:          content.PageURL,
		ThumbnailURL:     content.ThumbnailURL,
		OriginalImageURL: content.OriginalImageURL,
		PageID:           cand.PageID,
		QID:              string(qid),
		Lang:             lang,
		DistanceMeters:   cand.DistanceMeters,
		IsFallback:       content.Fallback,
		ShortSummary:     short,
		MoreSummary:      more,
	}, nil
}

// summarySource выбирает текст-источник выжимок и его язык.
// Обе выжимки всегда строятся из одного и того же источника.
func (uc *LookupUseCase) summarySource(
	ctx context.Context,
	cand domain.Candidate,
	content *domain.LocalizedContent,
	nativeTitle, lang string,
	fallback bool,
) (string, string) {
	if !fallback && nativeTitle != "" {
		if txt, ok, err := uc.contentRepo.GetExtract(ctx, nativeTitle, lang); err == nil && ok {
			return txt, lang
		}
	}

	if txt, ok, err := uc.contentRepo.GetExtract(ctx, cand.Title, domain.ReferenceLang); err == nil && ok {
		return txt, domain.ReferenceLang
	}

	if content.Extract != "" {
		return content.Extract, content.Lang
	}

	parts := make([]string, 0, 2)
	if content.Title != "" {
		parts = append(parts, content.Title+".")
	}
	if content.Description != "" {
		parts = append(parts, content.Description+".")
	}
	return strings.Join(parts, " "), content.Lang
}

// fromCache пытается достать готовый ответ; ошибки кеша поглощаются
func (uc *LookupUseCase) fromCache(ctx context.Context, key string) *dto.LookupResponse {
	if uc.cacheRepo == nil {
		return nil
	}

	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var cached dto.LookupResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		uc.logger.Warn("Failed to unmarshal cached lookup response", zap.Error(err))
		return nil
	}
	return &cached
}

// toCache сохраняет ответ; ошибки кеша поглощаются
func (uc *LookupUseCase) toCache(ctx context.Context, key string, response *dto.LookupResponse) {
	if uc.cacheRepo == nil {
		return
	}

	data, err := json.Marshal(response)
	if err != nil {
		uc.logger.Warn("Failed to marshal lookup response for cache", zap.Error(err))
		return
	}
	_ = uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL)
}

// publishPrefetch публикует задачу на прогрев кеша для других языков
func (uc *LookupUseCase) publishPrefetch(ctx context.Context, req dto.LookupRequest) {
	if uc.streamRepo == nil || len(uc.prefetchLang) == 0 {
		return
	}

	task := domain.PrefetchTask{
		TaskID:       uuid.New(),
		Lat:          req.Lat,
		Lng:          req.Lng,
		RadiusMeters: req.Radius,
		Limit:        req.Limit,
		Langs:        uc.prefetchLang,
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamLookupPrefetch, task); err != nil {
		uc.logger.Warn("Failed to publish prefetch task", zap.Error(err))
	}
}

// lookupCacheKey - ключ кеша ответов lookup
func lookupCacheKey(lat, lng float64, radius, limit int, lang string) string {
	return fmt.Sprintf("lookup:%.5f:%.5f:%d:%d:%s", lat, lng, radius, limit, lang)
}
