package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// WSHandler mantiene el canal de refresco del estudio. Después de cada
// mutación el handler correspondiente publica qué páginas quedaron
// desactualizadas y los tableros conectados las vuelven a pedir. Es
// fire-and-forget: una invalidación perdida se arregla sola en la
// próxima navegación.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024 * 1024

	// Keep-Alive (crítico en hostings cloud que cortan conexiones mudas)
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleConnect(func(s *melody.Session) {
		log.Printf("✅ Dashboard connected: %s", s.Request.RemoteAddr)
	})

	m.HandleDisconnect(func(s *melody.Session) {
		log.Printf("🔌 Dashboard disconnected: %s", s.Request.RemoteAddr)
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("❌ WebSocket Error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS sube la conexión del tablero a WebSocket.
func (h *WSHandler) HandleWS(c *gin.Context) {
	if err := h.M.HandleRequest(c.Writer, c.Request); err != nil {
		log.Printf("❌ Failed to upgrade websocket: %v", err)
	}
}

type invalidateMessage struct {
	Type  string   `json:"type"`
	Paths []string `json:"paths"`
}

// Invalidate avisa a todos los tableros conectados que estas rutas
// tienen datos viejos.
func (h *WSHandler) Invalidate(paths ...string) {
	if h == nil || h.M == nil {
		return
	}

	msg, err := json.Marshal(invalidateMessage{Type: "invalidate", Paths: paths})
	if err != nil {
		return
	}

	if err := h.M.Broadcast(msg); err != nil {
		log.Printf("⚠️ Error broadcasting invalidation: %v", err)
	}
}
