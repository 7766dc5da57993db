package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/services"
	"github.com/campuscore/campuscore/internal/middleware"
)

// NotificationController handles the caller's notification endpoints
type NotificationController struct {
	notificationService *services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// ListNotifications godoc
// @Summary List the caller's notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread (default true)"
// @Success 200 {object} dto.APIResponse{data=[]dto.NotificationResponse}
// @Router /notifications [get]
func (ctrl *NotificationController) ListNotifications(c *gin.Context) {
	unreadOnly := c.DefaultQuery("unread", "true") == "true"

	notifications, err := ctrl.notificationService.ListNotifications(c.Request.Context(), middleware.GetIdentity(c), unreadOnly)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(notifications))
}

// CountUnread godoc
// @Summary Count the caller's unread notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UnreadCountResponse}
// @Router /notifications/unread-count [get]
func (ctrl *NotificationController) CountUnread(c *gin.Context) {
	count, err := ctrl.notificationService.CountUnread(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.UnreadCountResponse{Count: count}))
}

// MarkRead godoc
// @Summary Mark one notification read
// @Description Idempotent; another user's notification id is a silent no-op
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} dto.MessageResponse
// @Router /notifications/{id}/read [post]
func (ctrl *NotificationController) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.notificationService.MarkRead(c.Request.Context(), middleware.GetIdentity(c), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "notification marked read"})
}

// MarkAllRead godoc
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Router /notifications/read-all [post]
func (ctrl *NotificationController) MarkAllRead(c *gin.Context) {
	if err := ctrl.notificationService.MarkAllRead(c.Request.Context(), middleware.GetIdentity(c)); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "all notifications marked read"})
}
