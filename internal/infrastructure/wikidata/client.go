package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tourist-guide/internal/config"
	"github.com/tourist-guide/internal/domain"
	"github.com/tourist-guide/internal/domain/repository"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://www.wikidata.org"

// client - клиент кросс-языкового реестра Wikidata (sitelinks)
type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// NewClient создает новый клиент Wikidata EntityData API
func NewClient(cfg *config.WikiConfig, logger *zap.Logger) repository.RegistryRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:   defaultBaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// NewClientWithBaseURL создает клиент с кастомным базовым URL (для тестов)
func NewClientWithBaseURL(cfg *config.WikiConfig, baseURL string, logger *zap.Logger) repository.RegistryRepository {
	c := NewClient(cfg, logger).(*client)
	c.baseURL = baseURL
	return c
}

type entityDataResponse struct {
	Entities map[string]struct {
		Sitelinks map[string]struct {
			Title string `json:"title"`
		} `json:"sitelinks"`
	} `json:"entities"`
}

// TitleInLanguage возвращает заголовок страницы сущности на языке lang
// через sitelinks. false - sitelink для этого языка отсутствует.
func (c *client) TitleInLanguage(ctx context.Context, id domain.CanonicalID, lang string) (string, bool, error) {
	if id.IsZero() {
		return "", false, nil
	}

	endpoint := fmt.Sprintf("%s/wiki/Special:EntityData/%s.json", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Wikidata request failed", zap.String("qid", string(id)), zap.Error(err))
		return "", false, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// Сущность удалена или переименована
		return "", false, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Wikidata API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return "", false, fmt.Errorf("wikidata API error: status %d", resp.StatusCode)
	}

	var data entityDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", false, fmt.Errorf("failed to decode response: %w", err)
	}

	entity, ok := data.Entities[string(id)]
	if !ok {
		return "", false, nil
	}

	link, ok := entity.Sitelinks[lang+"wiki"]
	if !ok || link.Title == "" {
		return "", false, nil
	}

	c.logger.Debug("Sitelink resolved",
		zap.String("qid", string(id)),
		zap.String("lang", lang),
		zap.String("title", link.Title))

	return link.Title, true, nil
}
