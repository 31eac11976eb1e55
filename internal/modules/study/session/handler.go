package session

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

	g.POST("/start", h.start)
	g.POST("/end", h.end)
	g.GET("/active", h.active)
	g.GET("", h.list)
	g.DELETE("/:sessionId", h.delete)
}

func (h *Handler) start(c *gin.Context) {
	var dto StartSessionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	uid, ok := middleware.CurrentUserObjectID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	doc, err := h.svc.Start(c.Request.Context(), uid, dto.Subject)
	if err != nil {
		switch {
		case errors.Is(err, errInvalidSubject):
			response.BadRequest(c, "Invalid subject")
		case errors.Is(err, errActiveExists):
			response.BadRequest(c, "You already have an active study session. Please end it first.")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, doc)
}

func (h *Handler) end(c *gin.Context) {
	var dto EndSessionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	uid, ok := middleware.CurrentUserObjectID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	doc, err := h.svc.End(c.Request.Context(), uid, dto.SessionID, dto.Notes)
	if err != nil {
		if errors.Is(err, errNoActiveToFinish) {
			response.NotFoundMsg(c, "Active study session not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, doc)
}

func (h *Handler) active(c *gin.Context) {
	uid, ok := middleware.CurrentUserObjectID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	doc, err := h.svc.Active(c.Request.Context(), uid)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	// null when nothing is running, matching the client contract.
	response.OK(c, doc)
}

func (h *Handler) list(c *gin.Context) {
	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	uid, ok := middleware.CurrentUserObjectID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	sessions, err := h.svc.List(c.Request.Context(), uid, filter)
	if err != nil {
		if errors.Is(err, errBadDateFilter) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *Handler) delete(c *gin.Context) {
	uid, ok := middleware.CurrentUserObjectID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), uid, c.Param("sessionId")); err != nil {
		if errors.Is(err, errSessionNotFound) {
			response.NotFoundMsg(c, "Study session not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Study session deleted successfully"})
}
