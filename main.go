package main

import (
	"flag"
	"net/http"

	"beercool/calculator"
	"beercool/config"
	"beercool/server"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	path := flag.String("config", config.DefaultPath, "path of config.ini")
	flag.Parse()

	cfg := config.Load(*path)
	cfg.SetupLogging()

	if !cfg.Server.CheckOrigin {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	}
	calc := calculator.NewCalculator(cfg.Simulation, cfg.Limits)
	s := server.NewServer(cfg.Server.Addr, upgrader, calc, cfg.Server.HistorySize)
	if err := s.Serve(); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
