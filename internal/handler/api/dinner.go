package api

import (
	"errors"
	"net/http"

	resdto "mine-dine/internal/handler/dto/response"
	"mine-dine/internal/handler/httperr"
	"mine-dine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DinnerHandler struct {
	dinnerQueries queries.DinnerQueries
}

func NewDinnerHandler(dinnerQueries queries.DinnerQueries) *DinnerHandler {
	return &DinnerHandler{dinnerQueries: dinnerQueries}
}

// @Summary Get dinner
// @Description Get a dinner with its add-ons and remaining capacity
// @Tags dinners
// @Produce json
// @Param id path string true "Dinner ID"
// @Success 200 {object} resdto.DinnerResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /dinners/{id} [get]
func (h *DinnerHandler) GetDinner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dinner ID format", nil)
		return
	}

	view, err := h.dinnerQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrDinnerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Dinner not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDinnerView(view))
}

// @Summary List dinners
// @Description List upcoming published dinners
// @Tags dinners
// @Produce json
// @Success 200 {array} resdto.DinnerResponse
// @Router /dinners [get]
func (h *DinnerHandler) ListDinners(c *gin.Context) {
	views, err := h.dinnerQueries.ListPublished(c.Request.Context(), 50)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.DinnerResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromDinnerView(v)
	}
	c.JSON(http.StatusOK, response)
}
