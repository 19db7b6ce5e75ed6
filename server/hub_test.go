package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"beercool/calculator"
	"beercool/model"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	c := calculator.NewCalculator(calculator.Grid{End: 240, Samples: 50}, calculator.DefaultLimits())
	h := NewHub(c, 2)
	h.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return h
}

func TestHubSetEnv(t *testing.T) {
	h := newTestHub()
	reply := h.handle(model.Msg{Type: model.TypeEnv, Content: `{"k": 0.2, "start_temperature": 8}`})
	assert.Equal(t, model.TypeEnvSet, reply.Type)
	assert.Equal(t, 0.2, h.env.K)
	assert.Equal(t, 8.0, h.env.StartTemperature)
	// 未传入的字段保持不变
	assert.Equal(t, 22.0, h.env.AmbientTemperature)

	reply = h.handle(model.Msg{Type: model.TypeEnv, Content: `{"ambient_temperature": 99}`})
	assert.Equal(t, model.TypeError, reply.Type)
	assert.Contains(t, reply.Content, "ambient_temperature")
	assert.Equal(t, 22.0, h.env.AmbientTemperature)

	reply = h.handle(model.Msg{Type: model.TypeEnv, Content: `not json`})
	assert.Equal(t, model.TypeError, reply.Type)
}

func TestHubSimulate(t *testing.T) {
	h := newTestHub()
	reply := h.handle(model.Msg{Type: model.TypeSimulate})
	require.Equal(t, model.TypeResult, reply.Type, reply.Content)

	var payload resultPayload
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &payload))
	assert.Len(t, payload.Result.Temperature, 50)
	assert.Equal(t, 5.0, payload.Result.Temperature[0])
	assert.Contains(t, payload.Svg, "<svg")
	assert.Equal(t, 1, h.history.Size())
}

func TestHubHistory(t *testing.T) {
	h := newTestHub()
	for _, k := range []string{"0.1", "0.2", "0.3"} {
		require.Equal(t, model.TypeEnvSet, h.handle(model.Msg{Type: model.TypeEnv, Content: `{"k": ` + k + `}`}).Type)
		require.Equal(t, model.TypeResult, h.handle(model.Msg{Type: model.TypeSimulate}).Type)
	}
	reply := h.handle(model.Msg{Type: model.TypeHistory})
	require.Equal(t, model.TypeHistory, reply.Type)

	var snapshots []model.Snapshot
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &snapshots))
	require.Len(t, snapshots, 2)
	assert.Equal(t, 0.3, snapshots[0].K)
	assert.Equal(t, 0.2, snapshots[1].K)
}

func TestHubCompare(t *testing.T) {
	h := newTestHub()
	reply := h.handle(model.Msg{Type: model.TypeCompare})
	assert.Equal(t, model.TypeError, reply.Type)

	require.Equal(t, model.TypeEnvSet, h.handle(model.Msg{Type: model.TypeEnv, Content: `{"mode": "derived", "material": "plastic"}`}).Type)
	reply = h.handle(model.Msg{Type: model.TypeCompare})
	require.Equal(t, model.TypeCompared, reply.Type, reply.Content)

	var payload comparePayload
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &payload))
	assert.Len(t, payload.Results, 3)
	assert.Contains(t, payload.Svg, "aluminum")
}

func TestHubStaticReplies(t *testing.T) {
	h := newTestHub()
	assert.Contains(t, h.handle(model.Msg{Type: model.TypeMaterials}).Content, `"aluminum"`)
	assert.Contains(t, h.handle(model.Msg{Type: model.TypeLimits}).Content, `"thickness"`)
	assert.Equal(t, Theory, h.handle(model.Msg{Type: model.TypeTheory}).Content)

	reply := h.handle(model.Msg{Type: "start"})
	assert.Equal(t, model.TypeError, reply.Type)
	assert.Contains(t, reply.Content, "no such type")
}

func TestServeWs(t *testing.T) {
	s := NewServer(":0", websocket.Upgrader{}, calculator.NewCalculator(calculator.Grid{End: 240, Samples: 20}, calculator.DefaultLimits()), 5)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(10*time.Second)))

	require.NoError(t, conn.WriteJSON(model.Msg{Type: model.TypeEnv, Content: `{"k": 0.05}`}))
	require.NoError(t, conn.WriteJSON(model.Msg{Type: model.TypeSimulate}))

	var reply model.Msg
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, model.TypeEnvSet, reply.Type)

	require.NoError(t, conn.ReadJSON(&reply))
	require.Equal(t, model.TypeResult, reply.Type, reply.Content)
	var payload resultPayload
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &payload))
	assert.Equal(t, 0.05, payload.Result.K)
	assert.Len(t, payload.Result.Time, 20)
}
