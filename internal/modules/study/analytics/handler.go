package analytics

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/routein/core/internal/middleware"
	"github.com/routein/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/study-sessions", authMW)

	g.GET("/today", h.today)
	g.GET("/analytics", h.analytics)
	g.GET("/daily-summary", h.dailySummary)
}

func (h *Handler) today(c *gin.Context) {
	uid, ok := middleware.CurrentUserObjectID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	summary, err := h.svc.Today(c.Request.Context(), uid)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, summary)
}

func (h *Handler) analytics(c *gin.Context) {
	uid, ok := middleware.CurrentUserObjectID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	summary, err := h.svc.Analytics(c.Request.Context(), uid, c.Query("period"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, summary)
}

func (h *Handler) dailySummary(c *gin.Context) {
	var filter DailySummaryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	uid, ok := middleware.CurrentUserObjectID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	days, err := h.svc.DailySummary(c.Request.Context(), uid, filter)
	if err != nil {
		if errors.Is(err, ErrBadDateRange) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}
