package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourist-guide/internal/pkg/utils"
	"github.com/tourist-guide/internal/pkg/validator"
	"github.com/tourist-guide/internal/usecase"
	"github.com/tourist-guide/internal/usecase/dto"
	"go.uber.org/zap"
)

// SpeechHandler - обработчик синтеза речи
type SpeechHandler struct {
	speechUC *usecase.SpeechUseCase
	logger   *zap.Logger
}

// NewSpeechHandler - создание нового SpeechHandler
func NewSpeechHandler(speechUC *usecase.SpeechUseCase, logger *zap.Logger) *SpeechHandler {
	return &SpeechHandler{
		speechUC: speechUC,
		logger:   logger,
	}
}

// Speak godoc
// @Summary Озвучивание текста
// @Description Синтезирует аудио (MP3) для переданного текста на целевом языке. Обычно озвучивается short_summary карточки места.
// @Tags TTS
// @Accept json
// @Produce audio/mpeg
// @Param request body dto.SpeakRequest true "Текст и язык"
// @Success 200 {file} binary "MP3 аудио"
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/tts [post]
func (h *SpeechHandler) Speak(c *fiber.Ctx) error {
	var req dto.SpeakRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	audio, mime, err := h.speechUC.Speak(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, mime)
	return c.Send(audio)
}
