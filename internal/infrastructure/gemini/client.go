package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/tourist-guide/internal/config"
	"github.com/tourist-guide/internal/domain/repository"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Client - генеративный коллаборатор (Gemini) для суммаризации и перевода.
// Без API-ключа создаётся в выключенном состоянии: Enabled() == false,
// и пайплайн использует экстрактивную выжимку.
type Client struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

var _ repository.TranslatorRepository = (*Client)(nil)

// NewClient создает новый клиент Gemini. Пустой API-ключ - не ошибка,
// клиент просто остаётся выключенным.
func NewClient(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (*Client, error) {
	c := &Client{
		model:  cfg.Model,
		logger: logger,
	}

	if cfg.APIKey == "" {
		logger.Info("Gemini API key is not set, generative summarization disabled")
		return c, nil
	}

	inner, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	c.client = inner
	logger.Info("Gemini client initialized", zap.String("model", cfg.Model))
	return c, nil
}

// Enabled сообщает, сконфигурирован ли коллаборатор
func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// Summarize сжимает текст примерно до sentences строк на языке lang
func (c *Client) Summarize(ctx context.Context, text, lang string, sentences, maxChars int) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("gemini is not configured")
	}
	if text == "" {
		return "", nil
	}

	prompt := fmt.Sprintf(
		"Summarize the passage below for a traveler.\n"+
			"- Write in the language with ISO code: %s.\n"+
			"- Aim for about %d lines (short, sentence-like lines).\n"+
			"- Keep total length under %d characters.\n"+
			"- Be factual; do not add new facts.\n\n"+
			"PASSAGE:\n%s",
		lang, sentences, maxChars, text,
	)

	out, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return out, nil
}

// Translate переводит текст на язык targetLang
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("gemini is not configured")
	}
	if text == "" {
		return "", nil
	}

	prompt := fmt.Sprintf(
		"Translate into language with ISO code '%s'. "+
			"Preserve meaning and names; no extra commentary.\n\n"+
			"TEXT:\n%s",
		targetLang, text,
	)

	out, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", fmt.Errorf("empty translation")
	}
	return out, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		c.logger.Warn("Gemini generation failed", zap.Error(err))
		return "", fmt.Errorf("generate content: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}
