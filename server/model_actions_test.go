package server

import (
	"bytes"
	"encoding/gob"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/antroute/model"
)

func testServer(t *testing.T, route string) *httptest.Server {
	r, err := Parse(route)
	require.NoError(t, err)
	ws := NewWalkServer(r, time.Millisecond)
	router := way.NewRouter()
	router.HandleFunc("GET", "/play", ws.HandleHttpCall())
	router.HandleFunc("GET", "/route", ws.HandleRoute())
	return httptest.NewServer(router)
}

func dial(t *testing.T, srv *httptest.Server, query string) (*websocket.Conn, *http.Response, error) {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/play" + query
	return websocket.DefaultDialer.Dial(url, nil)
}

func readAll(t *testing.T, con *websocket.Conn) ([]model.ServerMessage, error) {
	messages := make([]model.ServerMessage, 0)
	for {
		messageType, data, err := con.ReadMessage()
		if err != nil {
			return messages, err
		}
		require.Equal(t, websocket.BinaryMessage, messageType)
		var mes model.ServerMessage
		require.NoError(t, gob.NewDecoder(bytes.NewReader(data)).Decode(&mes))
		messages = append(messages, mes)
	}
}

func TestPlayStreamsWalkUntilFinish(t *testing.T) {
	srv := testServer(t, ". >1 .")
	defer srv.Close()

	con, _, err := dial(t, srv, "")
	require.NoError(t, err)
	defer con.Close()

	messages, err := readAll(t, con)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "%v", err)

	positions := make([]model.AntPosition, 0)
	for i, mes := range messages {
		assert.Equal(t, i, mes.Tick)
		positions = append(positions, mes.Snapshot.Ant)
	}
	assert.Equal(t, []model.AntPosition{
		model.Start(),
		model.At(1),
		model.At(1),
		model.At(2),
		model.At(3),
		model.Finish(),
	}, positions)

	assert.False(t, messages[1].Teleported)
	assert.True(t, messages[2].Teleported)
	assert.True(t, messages[1].Snapshot.Steps[1].IsOpen())
	assert.Equal(t, model.ClosedPortal(1), messages[2].Snapshot.Steps[1])
}

func TestPlayFromPosition(t *testing.T) {
	srv := testServer(t, ". . .")
	defer srv.Close()

	con, _, err := dial(t, srv, "?at=3")
	require.NoError(t, err)
	defer con.Close()

	messages, _ := readAll(t, con)
	require.Len(t, messages, 2)
	assert.Equal(t, model.At(3), messages[0].Snapshot.Ant)
	assert.Equal(t, model.Finish(), messages[1].Snapshot.Ant)
}

func TestPlayRejectsBadPosition(t *testing.T) {
	srv := testServer(t, ". . .")
	defer srv.Close()

	for _, q := range []string{"?at=4", "?at=-1", "?at=first"} {
		_, res, err := dial(t, srv, q)
		require.Error(t, err, q)
		require.NotNil(t, res, q)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, q)
	}
}

func TestEachConnectionGetsItsOwnWorld(t *testing.T) {
	srv := testServer(t, ". >1 .")
	defer srv.Close()

	for i := 0; i < 2; i++ {
		con, _, err := dial(t, srv, "")
		require.NoError(t, err)
		messages, _ := readAll(t, con)
		con.Close()
		require.True(t, len(messages) > 2)
		assert.True(t, messages[2].Teleported)
	}
}

func TestNewWalkServerDefaultsInterval(t *testing.T) {
	r, err := Parse(DefaultRoute)
	require.NoError(t, err)
	assert.Equal(t, DefaultInterval, NewWalkServer(r, 0).Interval)
}
