package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourist-guide/internal/pkg/errors"
	"github.com/tourist-guide/internal/pkg/utils"
	"github.com/tourist-guide/internal/pkg/validator"
	"github.com/tourist-guide/internal/usecase"
	"github.com/tourist-guide/internal/usecase/dto"
	"go.uber.org/zap"
)

// LookupHandler - обработчик запросов поиска мест
type LookupHandler struct {
	lookupUC *usecase.LookupUseCase
	logger   *zap.Logger
}

// NewLookupHandler - создание нового LookupHandler
func NewLookupHandler(lookupUC *usecase.LookupUseCase, logger *zap.Logger) *LookupHandler {
	return &LookupHandler{
		lookupUC: lookupUC,
		logger:   logger,
	}
}

// Lookup godoc
// @Summary Поиск туристического места рядом с координатой
// @Description Выполняет геопоиск по референсному языку и возвращает карточки мест на целевом языке. Набор и порядок кандидатов не зависят от выбранного языка; при отсутствии нативной статьи контент деградирует к референсному языку с переводом.
// @Tags Lookup
// @Accept json
// @Produce json
// @Param lat query number true "Широта (WGS84)"
// @Param lng query number true "Долгота (WGS84)"
// @Param radius query int false "Радиус поиска в метрах (100-30000)" default(8000)
// @Param limit query int false "Максимальное количество кандидатов" default(8)
// @Param lang query string false "Целевой язык (ISO 639-1)" default(en)
// @Success 200 {object} utils.SuccessResponse{data=dto.LookupResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/lookup [get]
func (h *LookupHandler) Lookup(c *fiber.Ctx) error {
	// lat и lng обязательны: пустой запрос не должен превращаться в
	// геопоиск вокруг точки (0, 0)
	if c.Query("lat") == "" || c.Query("lng") == "" {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"lat": "required",
			"lng": "required",
		}))
	}

	var req dto.LookupRequest
	req.Lat = c.QueryFloat("lat")
	req.Lng = c.QueryFloat("lng")
	req.Radius = c.QueryInt("radius")
	req.Limit = c.QueryInt("limit")
	req.Lang = c.Query("lang")

	// Валидация
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	// Выполнение use case
	result, err := h.lookupUC.Lookup(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Candidates),
	})
}
