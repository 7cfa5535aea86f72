package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/store"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// YoungProHandler serves the Young Professional quiz
type YoungProHandler struct {
	youngProUC usecase.YoungProUsecase
}

// NewYoungProHandler is the constructor for YoungProHandler
func NewYoungProHandler(youngProUC usecase.YoungProUsecase) *YoungProHandler {
	return &YoungProHandler{youngProUC: youngProUC}
}

func (h *YoungProHandler) SetAnswers(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var patch store.AnswersPatch
	if err := bind(c, &patch); err != nil {
		return response.HandleAppError(c, err)
	}

	answers, err := h.youngProUC.SetAnswers(c.Request().Context(), id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, answers)
}

func (h *YoungProHandler) Results(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results, err := h.youngProUC.Results(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results)
}
