package server

import (
	"context"
	"encoding/gob"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/antroute/model"
)

const DefaultInterval = 200 * time.Millisecond

func NewWalkServer(route *model.Route, interval time.Duration) *WalkServer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &WalkServer{
		Route:    route,
		Interval: interval,
		Upgrader: &websocket.Upgrader{},
	}
}

func (s *WalkServer) HandleRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(HTTP_SUCCESS)
		w.Write([]byte(Format(s.Route) + "\n"))
	}
}

func (s *WalkServer) HandleHttpCall() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleHttpCall - Conection received from %s", r.RemoteAddr)

		ant, err := startPosition(s.Route, r.URL.Query().Get("at"))
		if err != nil {
			log.Warnf("HandleHttpCall bad start position: %v", err)
			http.Error(w, err.Error(), HTTP_BAD_REQUEST)
			return
		}

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already answered the client
			log.Printf("HandleHttpCall websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		ws := &WalkSession{
			State:          WS_NEW,
			World:          model.NewWorldAt(s.Route.Steps, ant),
			Conn:           con,
			Interval:       s.Interval,
			MessagesToSend: make(chan model.ServerMessage, 10),
			Written:        make(chan struct{}),
		}
		go ws.LoopChannelRead(cancel)
		go ws.LoopChannelWrite(cancel)
		ws.Loop(ctx)
		<-ws.Written

		if ws.State == WS_OVER {
			err = con.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "finish"),
				time.Now().Add(time.Second))
			if err != nil {
				log.Warnf("HandleHttpCall close frame err %v", err)
			}
		}
		log.Infof("HandleHttpCall session ended state:%s out:%d", ws.State.Name(), ws.DebugOutMessages)
	}
}

func startPosition(r *model.Route, at string) (model.AntPosition, error) {
	if at == "" {
		return model.Start(), nil
	}
	n, err := strconv.Atoi(at)
	if err != nil {
		return model.AntPosition{}, model.ErrBadPosition
	}
	ant := model.At(n)
	if err := model.CheckPosition(r, ant); err != nil {
		return model.AntPosition{}, err
	}
	return ant, nil
}

// Loop advances the world once per interval until Finish, then closes
// MessagesToSend.
func (ws *WalkSession) Loop(ctx context.Context) {
	defer close(ws.MessagesToSend)
	ticker := time.NewTicker(ws.Interval)
	defer ticker.Stop()

	ws.State = WS_WALK
	tick := 0
	if !ws.send(ctx, model.ServerMessage{Tick: tick, Snapshot: ws.World.Snapshot()}) {
		return
	}
	for !ws.World.Finished() {
		select {
		case <-ctx.Done():
			log.Warn("WalkSession.Loop cancelled")
			ws.State = WS_ERR
			return
		case <-ticker.C:
			t := ws.World.Advance()
			tick++
			log.Debugf("WalkSession.Loop tick %d %v", tick, t)
			if !ws.send(ctx, model.ServerMessage{
				Tick:       tick,
				Teleported: t.Teleported,
				Snapshot:   ws.World.Snapshot(),
			}) {
				return
			}
		}
	}
	ws.State = WS_OVER
}

func (ws *WalkSession) send(ctx context.Context, mes model.ServerMessage) bool {
	select {
	case ws.MessagesToSend <- mes:
		return true
	case <-ctx.Done():
		log.Warn("WalkSession.send cancelled")
		ws.State = WS_ERR
		return false
	}
}

// LoopChannelRead only drains the socket so close and ping frames get
// handled. Viewers have nothing to say.
func (ws *WalkSession) LoopChannelRead(cancel context.CancelFunc) {
	log.Printf("LoopChannelRead STARTED")
	for {
		if _, _, err := ws.Conn.NextReader(); err != nil {
			log.Printf("LoopChannelRead err reading message from Conn %v", err)
			cancel()
			break
		}
	}
	log.Printf("LoopChannelRead ENDED")
}

// this function only consumes, Loop never gets stuck on a full buffer
func (ws *WalkSession) LoopChannelWrite(cancel context.CancelFunc) {
	log.Printf("WalkSession.LoopChannelWrite STARTED")
	defer close(ws.Written)
	failed := false
	for mes := range ws.MessagesToSend {
		if failed {
			continue
		}
		if err := ws.write(mes); err != nil {
			log.Warnf("WalkSession.LoopChannelWrite %v", err)
			failed = true
			cancel()
			continue
		}
		ws.DebugOutMessages++
		ws.DebugLastMessage = time.Now()
	}
	log.Printf("LoopChannelWrite ENDED")
}

func (ws *WalkSession) write(mes model.ServerMessage) error {
	w, err := ws.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(w).Encode(mes); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
