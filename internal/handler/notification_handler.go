package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"supercopa.app/backend/internal/dto"
	"supercopa.app/backend/internal/push"
	"supercopa.app/backend/internal/service"
	"supercopa.app/backend/pkg/apperror"
	"supercopa.app/backend/pkg/response"
	"supercopa.app/backend/pkg/validator"
)

type NotificationHandler struct {
	service  service.NotificationService
	gateway  *push.Gateway
	upgrader websocket.Upgrader
}

func NewNotificationHandler(service service.NotificationService, gateway *push.Gateway) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		gateway: gateway,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// REST Endpoints

func (h *NotificationHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	notifications, err := h.service.History(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, notifications)
}

func (h *NotificationHandler) Send(c *gin.Context) {
	var req dto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	sender := c.GetString("admin_username")
	notification, err := h.service.Broadcast(c.Request.Context(), req, sender)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, notification)
}

func (h *NotificationHandler) SendTest(c *gin.Context) {
	if err := h.service.SendTest(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": "notificação de teste enviada"})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrBadRequest)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": "notificação removida"})
}

// WebSocket Endpoint

// Stream upgrades the connection and forwards broadcast payloads from the
// push gateway until either side goes away.
func (h *NotificationHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("failed to upgrade websocket: %v", err)
		return
	}
	defer conn.Close()

	pubsub, err := h.gateway.Subscribe(c.Request.Context())
	if err != nil {
		log.Printf("failed to subscribe for push delivery: %v", err)
		return
	}
	defer pubsub.Close()

	ch := pubsub.Channel()

	clientClosed := make(chan struct{})
	go func() {
		defer close(clientClosed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			// Payload is already the JSON display notification.
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		case <-clientClosed:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
