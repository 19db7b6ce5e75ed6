package server

import (
	"encoding/json"
	"net/http"

	"beercool/chart"
	"beercool/export"
	"beercool/material"
	"beercool/model"

	log "github.com/sirupsen/logrus"
)

func method(m string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != m {
			w.Header().Set("Allow", m)
			writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
			return
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("err: ", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeEnv 请求体中缺省的字段使用界面默认值
func decodeEnv(r *http.Request) (model.Env, error) {
	env := model.DefaultEnv()
	if r.Body == nil || r.ContentLength == 0 {
		return env, nil
	}
	err := json.NewDecoder(r.Body).Decode(&env)
	return env, err
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	env, err := decodeEnv(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := s.calc.Run(env)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	contentType, err := chart.ContentType(format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	env, err := decodeEnv(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := s.calc.Run(env)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.Header().Set("Content-Type", contentType)
	if err := chart.Render(w, res, chart.Options{Format: format}); err != nil {
		log.Warn("render: ", err)
	}
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	env, err := decodeEnv(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := s.calc.Run(env)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="beercool.csv"`)
	if err := export.WriteCSV(w, res); err != nil {
		log.Warn("export: ", err)
	}
}

func (s *Server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, material.Infos())
}

func (s *Server) handleLimits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.calc.Limits())
}

func (s *Server) handleTheory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(Theory))
}
