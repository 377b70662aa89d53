package gtts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/tourist-guide/internal/config"
	"github.com/tourist-guide/internal/domain/repository"
	"github.com/tourist-guide/internal/pkg/utils"
	"go.uber.org/zap"
)

// Google Translate TTS принимает ограниченную длину текста за запрос,
// поэтому текст режется на куски по границам предложений
const maxChunkLen = 200

const mimeMPEG = "audio/mpeg"

// client - клиент синтеза речи через Google Translate TTS
type client struct {
	httpClient *http.Client
	baseURL    string
	maxTextLen int
	logger     *zap.Logger
}

// NewClient создает новый TTS-клиент
func NewClient(cfg *config.TTSConfig, logger *zap.Logger) repository.SpeechRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:    cfg.BaseURL,
		maxTextLen: cfg.MaxTextLen,
		logger:     logger,
	}
}

// Synthesize озвучивает текст на языке lang. MP3-фреймы кусков
// конкатенируются в один поток.
func (c *client) Synthesize(ctx context.Context, text, lang string) ([]byte, string, error) {
	if text == "" {
		return nil, "", fmt.Errorf("text cannot be empty")
	}
	if utf8.RuneCountInString(text) > c.maxTextLen {
		return nil, "", fmt.Errorf("text exceeds limit of %d characters", c.maxTextLen)
	}

	var audio bytes.Buffer
	for _, chunk := range chunkText(text) {
		data, err := c.fetchChunk(ctx, chunk, lang)
		if err != nil {
			return nil, "", err
		}
		audio.Write(data)
	}

	c.logger.Debug("Speech synthesized",
		zap.String("lang", lang),
		zap.Int("text_len", len(text)),
		zap.Int("audio_bytes", audio.Len()))

	return audio.Bytes(), mimeMPEG, nil
}

func (c *client) fetchChunk(ctx context.Context, chunk, lang string) ([]byte, error) {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", lang)
	params.Set("q", chunk)

	endpoint := c.baseURL + "/translate_tts?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("TTS request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("TTS service returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("tts error: status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// chunkText режет текст на куски не длиннее maxChunkLen рун, предпочитая
// границы предложений. Лимит сервиса считается в символах, не в байтах.
func chunkText(text string) []string {
	if utf8.RuneCountInString(text) <= maxChunkLen {
		return []string{text}
	}

	var chunks []string
	current := ""
	for _, unit := range utils.SplitSentences(text) {
		switch {
		case current == "":
			current = unit
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(unit) <= maxChunkLen:
			current += " " + unit
		default:
			chunks = append(chunks, current)
			current = unit
		}

		// Одно предложение длиннее лимита режется принудительно
		for runes := []rune(current); len(runes) > maxChunkLen; runes = []rune(current) {
			chunks = append(chunks, string(runes[:maxChunkLen]))
			current = string(runes[maxChunkLen:])
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}
