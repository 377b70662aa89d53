package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tourist-guide/internal/config"
	"github.com/tourist-guide/internal/domain"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://%s.wikipedia.org"

// Client - клиент Wikipedia API. Реализует GeoRepository (geosearch),
// IdentityRepository (pageprops -> QID) и ContentRepository (REST summary,
// extracts). Geosearch всегда ходит только в референсный языковой раздел.
type Client struct {
	httpClient *http.Client
	baseURL    string // формат с %s для языкового поддомена
	userAgent  string
	maxRetries int
	logger     *zap.Logger
}

// NewClient создает новый клиент Wikipedia API
func NewClient(cfg *config.WikiConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:    defaultBaseURL,
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

// WithBaseURL заменяет шаблон базового URL (используется в тестах)
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

type geosearchResponse struct {
	Query struct {
		Geosearch []struct {
			PageID int64   `json:"pageid"`
			Title  string  `json:"title"`
			Lat    float64 `json:"lat"`
			Lon    float64 `json:"lon"`
			Dist   float64 `json:"dist"`
		} `json:"geosearch"`
	} `json:"query"`
}

// FindNearby ищет страницы рядом с точкой через geosearch API референсного
// языка. Порядок результата - порядок источника (по близости).
func (c *Client) FindNearby(ctx context.Context, coord domain.Coordinate, radiusMeters, limit int) ([]domain.Candidate, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "geosearch")
	params.Set("gscoord", fmt.Sprintf("%f|%f", coord.Lat, coord.Lng))
	params.Set("gsradius", strconv.Itoa(radiusMeters))
	params.Set("gslimit", strconv.Itoa(limit))
	params.Set("format", "json")

	endpoint := fmt.Sprintf(c.baseURL, domain.ReferenceLang) + "/w/api.php?" + params.Encode()

	c.logger.Debug("Calling Wikipedia geosearch API",
		zap.Float64("lat", coord.Lat),
		zap.Float64("lng", coord.Lng),
		zap.Int("radius", radiusMeters),
		zap.Int("limit", limit))

	var resp geosearchResponse
	if err := c.getJSON(ctx, endpoint, "", &resp); err != nil {
		c.logger.Error("Geosearch request failed", zap.Error(err))
		return nil, fmt.Errorf("geosearch: %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(resp.Query.Geosearch))
	for _, row := range resp.Query.Geosearch {
		candidates = append(candidates, domain.Candidate{
			PageID:         row.PageID,
			Title:          row.Title,
			Lat:            row.Lat,
			Lng:            row.Lon,
			DistanceMeters: row.Dist,
		})
	}

	c.logger.Debug("Geosearch completed", zap.Int("candidates", len(candidates)))
	return candidates, nil
}

type pagepropsResponse struct {
	Query struct {
		Pages map[string]struct {
			PageProps struct {
				WikibaseItem string `json:"wikibase_item"`
			} `json:"pageprops"`
		} `json:"pages"`
	} `json:"query"`
}

// ResolveIdentity возвращает Wikidata QID для pageID референсного языка.
// false - у страницы нет записи в реестре (легитимный случай).
func (c *Client) ResolveIdentity(ctx context.Context, pageID int64) (domain.CanonicalID, bool, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "pageprops")
	params.Set("pageids", strconv.FormatInt(pageID, 10))
	params.Set("ppprop", "wikibase_item")
	params.Set("format", "json")

	endpoint := fmt.Sprintf(c.baseURL, domain.ReferenceLang) + "/w/api.php?" + params.Encode()

	var resp pagepropsResponse
	if err := c.getJSON(ctx, endpoint, "", &resp); err != nil {
		return "", false, fmt.Errorf("pageprops: %w", err)
	}

	for _, page := range resp.Query.Pages {
		if page.PageProps.WikibaseItem != "" {
			return domain.CanonicalID(page.PageProps.WikibaseItem), true, nil
		}
	}
	return "", false, nil
}

type summaryResponse struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Titles struct {
		Normalized string `json:"normalized"`
	} `json:"titles"`
	Description string `json:"description"`
	Extract     string `json:"extract"`
	Thumbnail   struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
	OriginalImage struct {
		Source string `json:"source"`
	} `json:"originalimage"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// GetSummary возвращает REST summary страницы на языке lang.
// (nil, false, nil) - страницы на этом языке нет.
func (c *Client) GetSummary(ctx context.Context, title, lang string) (*domain.LocalizedContent, bool, error) {
	endpoint := fmt.Sprintf(c.baseURL, lang) + "/api/rest_v1/page/summary/" + url.PathEscape(title)

	status, body, err := c.get(ctx, endpoint, lang)
	if err != nil {
		return nil, false, fmt.Errorf("summary: %w", err)
	}
	if status == http.StatusNotFound {
		return nil, false, nil
	}
	if status != http.StatusOK {
		return nil, false, fmt.Errorf("summary: unexpected status %d", status)
	}

	var resp summaryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, false, fmt.Errorf("summary: decode: %w", err)
	}

	// REST API может вернуть problem+json со статусом 200
	if resp.Title == "" || isProblem(resp.Type) {
		return nil, false, nil
	}

	normalized := resp.Titles.Normalized
	if normalized == "" {
		normalized = resp.Title
	}

	return &domain.LocalizedContent{
		Title:            resp.Title,
		NormalizedTitle:  normalized,
		Description:      resp.Description,
		Extract:          resp.Extract,
		PageURL:          resp.ContentURLs.Desktop.Page,
		ThumbnailURL:     resp.Thumbnail.Source,
		OriginalImageURL: resp.OriginalImage.Source,
		Lang:             lang,
	}, true, nil
}

type extractResponse struct {
	Query struct {
		Pages map[string]struct {
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// GetExtract возвращает полный текст статьи без разметки через extracts API
func (c *Client) GetExtract(ctx context.Context, title, lang string) (string, bool, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("explaintext", "1")
	params.Set("redirects", "1")
	params.Set("titles", title)
	params.Set("format", "json")

	endpoint := fmt.Sprintf(c.baseURL, lang) + "/w/api.php?" + params.Encode()

	var resp extractResponse
	if err := c.getJSON(ctx, endpoint, lang, &resp); err != nil {
		return "", false, fmt.Errorf("extract: %w", err)
	}

	for _, page := range resp.Query.Pages {
		if page.Extract != "" {
			return page.Extract, true, nil
		}
	}
	return "", false, nil
}

func isProblem(mediaType string) bool {
	return strings.HasSuffix(mediaType, "problem+json")
}

// getJSON выполняет GET и декодирует JSON-ответ, ожидая статус 200
func (c *Client) getJSON(ctx context.Context, endpoint, lang string, out interface{}) error {
	status, body, err := c.get(ctx, endpoint, lang)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("unexpected status %d", status)
	}
	return json.Unmarshal(body, out)
}

// get выполняет GET с ретраями на сетевые ошибки и 5xx.
// Количество попыток ограничено maxRetries, между попытками пауза.
func (c *Client) get(ctx context.Context, endpoint, lang string) (int, []byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return 0, nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		if lang != "" {
			req.Header.Set("Accept-Language", lang)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return 0, nil, ctx.Err()
			}
			c.logger.Warn("Request failed, retrying",
				zap.String("url", endpoint),
				zap.Int("attempt", attempt+1),
				zap.Error(err))
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			lastErr = fmt.Errorf("server error: status %d", resp.StatusCode)
			c.logger.Warn("Upstream returned server error, retrying",
				zap.String("url", endpoint),
				zap.Int("status", resp.StatusCode),
				zap.Int("attempt", attempt+1))
			continue
		}

		return resp.StatusCode, body, nil
	}

	return 0, nil, fmt.Errorf("failed to execute request: %w", lastErr)
}
