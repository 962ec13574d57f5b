package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the employee dashboard's notification endpoints
type Handler struct {
	repo Repository
}

// NewHandler creates a new notification Handler
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// GetUnread returns a user's unread notifications
// GET /api/notifications/:userId
func (h *Handler) GetUnread(c *gin.Context) {
	notifications, err := h.repo.FindUnread(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if notifications == nil {
		notifications = []*Notification{}
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkRead marks one notification as read
// PATCH /api/notifications/:id/read
func (h *Handler) MarkRead(c *gin.Context) {
	if err := h.repo.MarkRead(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// RegisterToken registers a device token for push delivery
// POST /api/notifications/tokens
func (h *Handler) RegisterToken(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
		Token  string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token := &DeviceToken{UserID: req.UserID, Token: req.Token}
	if err := h.repo.SaveToken(token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, token)
}
