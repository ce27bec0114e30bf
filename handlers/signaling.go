package handlers

import (
	"net/http"

	"lexhub/services/signaling"
	"lexhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Restricted by CORS at the proxy in production.
	},
}

// SignalingSocket upgrades the connection and attaches the caller to the
// room's relay. The room ID is the consultation's meeting room.
func (h *HandlerBundle) SignalingSocket(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	roomID := c.Param("roomId")
	if roomID == "" {
		utils.JSONError(c, http.StatusBadRequest, "room id is required", "")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		getLogger(c).Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	client := signaling.NewClient(h.Hub, conn, roomID, userID)
	h.Hub.Join(client)

	go client.WritePump()
	go client.ReadPump()
}
