package server

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/zucenko/antroute/model"
)

type WalkServer struct {
	Route    *model.Route
	Interval time.Duration
	Upgrader *websocket.Upgrader
}

type WalkSessionState int

const (
	WS_NEW WalkSessionState = iota
	WS_WALK
	WS_OVER
	WS_ERR
)

// WalkSession streams one world to one websocket. State is owned by Loop.
type WalkSession struct {
	State    WalkSessionState
	World    *model.World
	Conn     *websocket.Conn
	Interval time.Duration

	MessagesToSend chan model.ServerMessage
	Written        chan struct{}

	DebugOutMessages int
	DebugLastMessage time.Time
}
