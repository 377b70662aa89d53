package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourist-guide/internal/config"
	"github.com/tourist-guide/internal/domain"
	"github.com/tourist-guide/internal/pkg/utils"
	"github.com/tourist-guide/internal/usecase/dto"
)

// ConfigHandler - обработчик публичной конфигурации сервиса
type ConfigHandler struct {
	cfg *config.Config
}

// NewConfigHandler - создание нового ConfigHandler
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// GetConfig godoc
// @Summary Публичная конфигурация
// @Description Возвращает язык по умолчанию, список поддерживаемых языков и флаги доступных коллабораторов
// @Tags Config
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ConfigResponse}
// @Router /api/v1/config [get]
func (h *ConfigHandler) GetConfig(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.ConfigResponse{
		DefaultLang:    h.cfg.Lookup.DefaultLang,
		SupportedLangs: domain.SupportedLanguages,
		GeminiEnabled:  h.cfg.Gemini.APIKey != "",
	}, nil)
}
