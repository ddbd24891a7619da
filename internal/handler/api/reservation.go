package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "parkspot/internal/handler/dto/request"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/handler/httperr"
	"parkspot/internal/handler/middleware"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Reserve a parking spot
// @Description Books one unit of capacity on an active spot
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReserveRequest true "Reservation request"
// @Success 200 {object} resdto.ReserveResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /reserve [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Token required", nil)
		return
	}

	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		switch {
		case commands.IsSpotUnavailable(err):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Parking spot not available", nil)
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, errs.Cause(err).Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Reservation failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReserveResult(result))
}

// @Summary List my reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Token required", nil)
		return
	}

	var page reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination parameters", nil)
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	resp, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Token required", nil)
		return
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		if errs.Is(err, queries.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	resp, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary End reservation
// @Description Completes an active reservation and frees its capacity
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.EndReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/end [post]
func (h *ReservationHandler) End(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Token required", nil)
		return
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	if err := h.cmds.End(c.Request.Context(), userID, id); err != nil {
		switch {
		case errs.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errs.Is(err, commands.ErrReservationNotActive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation already ended", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.EndReservationResponse{
		Message:       "Reservation ended",
		ReservationID: id,
	})
}
