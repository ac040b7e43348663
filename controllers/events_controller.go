package controllers

import (
	"net/http"
	"time"

	"github.com/Uviii9p/Health-Hub/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type EventsController struct {
	hub *services.EventHub
}

func NewEventsController(hub *services.EventHub) *EventsController {
	return &EventsController{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // local single-user app
}

// Stream upgrades to websocket and keeps the connection registered until
// the client goes away.
func (ctl *EventsController) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	ctl.hub.Register(conn)

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				ctl.hub.Unregister(conn)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			ctl.hub.Unregister(conn)
			return
		}
	}
}
