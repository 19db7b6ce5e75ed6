package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"beercool/calculator"
	"beercool/chart"
	"beercool/deque"
	"beercool/material"
	"beercool/model"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Hub 维护一个 websocket 会话：当前输入参数和最近的模拟历史
type Hub struct {
	c       calculator.Calculator
	conn    *websocket.Conn
	env     model.Env
	history deque.Deque
	now     func() time.Time
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}
}

type resultPayload struct {
	Result *calculator.Result `json:"result"`
	Svg    string             `json:"svg"`
}

type comparePayload struct {
	Results []*calculator.Result `json:"results"`
	Svg     string               `json:"svg"`
}

func NewHub(c calculator.Calculator, historySize int) *Hub {
	return &Hub{
		c:       c,
		env:     model.DefaultEnv(),
		history: deque.NewArrDeque(historySize),
		now:     time.Now,
		msg:     make(chan model.Msg, 10),
		reply:   make(chan model.Msg, 10),
		done:    make(chan struct{}),
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithField("type", reply.Type).Warn("err: ", err)
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			reply := h.handle(msg)
			select {
			case h.reply <- reply:
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

// handle 处理一条请求并生成回复，每次输入变化都完整地重新计算
func (h *Hub) handle(msg model.Msg) model.Msg {
	switch msg.Type {
	case model.TypeEnv:
		return h.setEnv(msg.Content)
	case model.TypeSimulate:
		return h.simulate()
	case model.TypeCompare:
		return h.compare()
	case model.TypeHistory:
		return jsonReply(model.TypeHistory, h.history.Items())
	case model.TypeMaterials:
		return jsonReply(model.TypeMaterials, material.Infos())
	case model.TypeLimits:
		return jsonReply(model.TypeLimits, h.c.Limits())
	case model.TypeTheory:
		return model.Msg{Type: model.TypeTheory, Content: Theory}
	default:
		log.WithField("type", msg.Type).Warn("no such type")
		return errorReply(errors.New("no such type: " + msg.Type))
	}
}

func (h *Hub) setEnv(content string) model.Msg {
	// 未出现的字段保留当前值
	env := h.env
	if err := json.Unmarshal([]byte(content), &env); err != nil {
		return errorReply(err)
	}
	if err := h.c.Limits().Check(env); err != nil {
		return errorReply(err)
	}
	h.env = env
	log.WithFields(log.Fields{
		"mode":    env.Mode,
		"start":   env.StartTemperature,
		"ambient": env.AmbientTemperature,
	}).Debug("设置输入参数")
	return model.Msg{Type: model.TypeEnvSet, Content: "env is set"}
}

func (h *Hub) simulate() model.Msg {
	res, err := h.c.Run(h.env)
	if err != nil {
		return errorReply(err)
	}
	var svg bytes.Buffer
	if err := chart.Render(&svg, res, chart.Options{}); err != nil {
		return errorReply(err)
	}
	h.history.AddFirst(model.Snapshot{
		Env:     h.env,
		K:       res.K,
		HTotal:  res.HTotal,
		Final:   res.Final,
		Created: h.now(),
	})
	return jsonReply(model.TypeResult, resultPayload{Result: res, Svg: svg.String()})
}

func (h *Hub) compare() model.Msg {
	results, err := h.c.Compare(h.env)
	if err != nil {
		return errorReply(err)
	}
	var svg bytes.Buffer
	if err := chart.RenderCompare(&svg, results, chart.Options{Title: "Beverage temperature by vessel material"}); err != nil {
		return errorReply(err)
	}
	return jsonReply(model.TypeCompared, comparePayload{Results: results, Svg: svg.String()})
}

func jsonReply(typ string, v interface{}) model.Msg {
	data, err := json.Marshal(v)
	if err != nil {
		return errorReply(err)
	}
	return model.Msg{Type: typ, Content: string(data)}
}

func errorReply(err error) model.Msg {
	return model.Msg{Type: model.TypeError, Content: err.Error()}
}
