package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/speakgrade/speakgrade/internal/notify"
)

type NotifyHandler struct {
	Hub *notify.Hub
}

func NewNotifyHandler(hub *notify.Hub) *NotifyHandler {
	return &NotifyHandler{Hub: hub}
}

func (h *NotifyHandler) WebSocketMiddleware(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleNotifications registers the page with the status hub and holds the
// connection open. Pages only listen; inbound frames are discarded.
func (h *NotifyHandler) HandleNotifications(c *websocket.Conn) {
	defer func() {
		_ = c.Close()
	}()

	id := h.Hub.Register(c)
	defer h.Hub.Unregister(id)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
