package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/handler/httperr"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/queries"
)

type SpotHandler struct {
	q queries.SpotQueries
}

func NewSpotHandler(q queries.SpotQueries) *SpotHandler {
	return &SpotHandler{q: q}
}

// @Summary List parking spots
// @Description Active parking spots with their free capacity
// @Tags parking-spots
// @Produce json
// @Success 200 {array} resdto.SpotResponse
// @Failure 500 {object} map[string]string
// @Router /parking-spots [get]
func (h *SpotHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	resp, err := resdto.FromSpotViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get parking spot
// @Tags parking-spots
// @Produce json
// @Param id path int true "Parking spot ID"
// @Success 200 {object} resdto.SpotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /parking-spots/{id} [get]
func (h *SpotHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid parking spot id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrSpotNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Parking spot not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	resp, err := resdto.FromSpotView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}
