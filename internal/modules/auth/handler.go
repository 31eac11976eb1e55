package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/routein/core/internal/middleware"
	"github.com/routein/core/internal/pkg/response"
	sessionpkg "github.com/routein/core/internal/pkg/session"
	"go.mongodb.org/mongo-driver/mongo"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/auth")

	a.POST("/register", h.register)
	a.POST("/login", h.login)
	a.GET("/profile", authMW, h.profile)
	a.POST("/logout", authMW, h.logout)
	a.GET("/sessions", authMW, h.listSessions)
	a.POST("/revoke-other-sessions", authMW, h.revokeOtherSessions)
}

func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, token, err := h.svc.Register(c.Request.Context(), &dto, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, errUserExists) {
			response.BadRequest(c, "User already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, authResponse{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Token: token,
	})
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, token, err := h.svc.Login(c.Request.Context(), dto.Email, dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, errInvalidLogin) {
			response.UnauthorizedMsg(c, "Invalid email or password")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, authResponse{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Token: token,
	})
}

func (h *Handler) profile(c *gin.Context) {
	uid, ok := middleware.CurrentUserObjectID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	u, err := h.svc.Profile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, errAuthUserNotFound) {
			response.NotFoundMsg(c, "User not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, profileResponse{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	})
}

func (h *Handler) logout(c *gin.Context) {
	uid, ok := middleware.CurrentUserObjectID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	sid := middleware.CurrentSessionID(c)
	if sid != "" {
		if err := sessionpkg.Revoke(c.Request.Context(), h.svc.db, uid, sid); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			response.InternalError(c, err)
			return
		}
	}
	response.OK(c, gin.H{"success": true})
}

func (h *Handler) listSessions(c *gin.Context) {
	uid, ok := middleware.CurrentUserObjectID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	sessions, err := sessionpkg.ListActive(c.Request.Context(), h.svc.db, uid)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	items := make([]gin.H, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, gin.H{
			"id":        s.ID.Hex(),
			"ipAddress": s.IP,
			"userAgent": s.UA,
			"expiresAt": s.ExpiresAt,
			"createdAt": s.CreatedAt,
			"updatedAt": s.UpdatedAt,
			"current":   s.ID.Hex() == middleware.CurrentSessionID(c),
		})
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) revokeOtherSessions(c *gin.Context) {
	uid, ok := middleware.CurrentUserObjectID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	if err := sessionpkg.RevokeAllExcept(c.Request.Context(), h.svc.db, uid, middleware.CurrentSessionID(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"status": true})
}
