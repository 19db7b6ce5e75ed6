package server

import (
	"net/http"
	"time"

	"beercool/calculator"
	"beercool/model"
	"beercool/web"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	addr        string
	upgrader    websocket.Upgrader
	calc        calculator.Calculator
	historySize int
}

func NewServer(addr string, upgrader websocket.Upgrader, calc calculator.Calculator, historySize int) *Server {
	return &Server{
		addr:        addr,
		upgrader:    upgrader,
		calc:        calc,
		historySize: historySize,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("upgrade: ", err)
		return
	}
	defer conn.Close()

	hub := NewHub(s.calc, s.historySize)
	hub.conn = conn
	defer close(hub.done)
	go hub.handleRequest()
	go hub.handleResponse()

	log.WithField("remote", r.RemoteAddr).Info("会话建立")
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithField("remote", r.RemoteAddr).Warn("err: ", err)
			}
			break
		}
		hub.msg <- msg
	}
	log.WithField("remote", r.RemoteAddr).Info("会话结束")
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	mux.HandleFunc("/api/simulate", method(http.MethodPost, s.handleSimulate))
	mux.HandleFunc("/api/plot", method(http.MethodPost, s.handlePlot))
	mux.HandleFunc("/api/export", method(http.MethodPost, s.handleExport))
	mux.HandleFunc("/api/materials", method(http.MethodGet, s.handleMaterials))
	mux.HandleFunc("/api/limits", method(http.MethodGet, s.handleLimits))
	mux.HandleFunc("/api/theory", method(http.MethodGet, s.handleTheory))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(web.Index)
	})
	return logRequests(mux)
}

func (s *Server) Serve() error {
	log.WithFields(log.Fields{
		"addr":    s.addr,
		"grid":    s.calc.Grid(),
		"history": s.historySize,
	}).Info("服务启动")
	return http.ListenAndServe(s.addr, s.Handler())
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Debug("request")
	})
}
