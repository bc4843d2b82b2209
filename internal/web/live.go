package web

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"pokedex/internal/view"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Live message types.
const (
	MsgWelcome  = "welcome"
	MsgState    = "state"
	MsgError    = "error"
	MsgSearch   = "search"
	MsgCategory = "category"
	MsgSelect   = "select"
	MsgClose    = "close"
)

// LiveRequest is what the browser sends on every input change.
type LiveRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// LiveReply carries either a full state snapshot or an error.
type LiveReply struct {
	Type    string `json:"type"`
	Session string `json:"session"`
	Error   string `json:"error,omitempty"`
	*view.Snapshot
}

// live mounts one index view per websocket connection. The page is fetched
// in the background while input messages are applied as they arrive; every
// input message gets exactly one reply.
func (h *Handler) live(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.Log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	s := &session{id: uuid.NewString(), ws: ws}
	log := h.Log.With(zap.String("session", s.id))
	h.Hub.add(s)
	log.Info("live session opened")

	idx := view.NewIndex(h.API, h.IndexLimit, log)

	// the session, not the hijacked request, owns the fetch
	ctx, cancel := context.WithCancel(context.WithoutCancel(c.Request.Context()))
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
		h.Hub.remove(s)
		log.Info("live session closed")
	}()

	_ = s.send(LiveReply{Type: MsgWelcome, Session: s.id})

	wg.Add(1)
	go func() {
		defer wg.Done()
		idx.Activate(ctx)
		if ctx.Err() != nil {
			return
		}
		_ = s.send(stateReply(s, idx))
	}()

	for {
		_, payload, err := ws.ReadMessage()
		if err != nil {
			return
		}

		var req LiveRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			_ = s.send(LiveReply{Type: MsgError, Session: s.id, Error: "invalid json"})
			continue
		}

		if err := apply(idx, req); err != nil {
			_ = s.send(LiveReply{Type: MsgError, Session: s.id, Error: err.Error()})
			continue
		}
		if err := s.send(stateReply(s, idx)); err != nil {
			return
		}
	}
}

type liveError string

func (e liveError) Error() string { return string(e) }

func apply(idx *view.Index, req LiveRequest) error {
	switch strings.ToLower(strings.TrimSpace(req.Type)) {
	case MsgSearch:
		idx.SetSearch(req.Value)
	case MsgCategory:
		idx.SetCategory(strings.TrimSpace(req.Value))
	case MsgSelect:
		id, ok := parseID(req.Value)
		if !ok {
			return liveError("select needs a numeric id")
		}
		// unknown ids leave the selection alone
		idx.Select(id)
	case MsgClose:
		idx.ClearSelection()
	default:
		return liveError("unknown message type " + req.Type)
	}
	return nil
}

func stateReply(s *session, idx *view.Index) LiveReply {
	snap := idx.Snapshot()
	return LiveReply{Type: MsgState, Session: s.id, Snapshot: &snap}
}
