// SPDX-License-Identifier: EPL-2.0

package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ik5/noisewatch/chart"
	"github.com/ik5/noisewatch/export"
	"github.com/ik5/noisewatch/gate"
	"github.com/ik5/noisewatch/monitor"
)

// ActiveReporter exposes the scheduler's pulse to status responses.
type ActiveReporter interface {
	Active() bool
}

// Server is the browser-facing boundary of the monitor. It consumes
// the pipeline strictly read-only (record snapshots, config
// snapshots, the active pulse) and forwards operator adjustments to
// Settings. All monitoring endpoints sit behind the access gate; the
// gate is cosmetic, so the session token exists to model the original
// flow, not to secure anything.
type Server struct {
	store    *monitor.Store
	settings *monitor.Settings
	active   ActiveReporter
	gate     *gate.Gate
	hub      *hub
	log      *slog.Logger

	upgrader websocket.Upgrader

	mtx   sync.Mutex
	token string
}

func NewServer(store *monitor.Store, settings *monitor.Settings, active ActiveReporter, g *gate.Gate, log *slog.Logger) *Server {
	return &Server{
		store:    store,
		settings: settings,
		active:   active,
		gate:     g,
		hub:      newHub(log),
		log:      log,
		upgrader: websocket.Upgrader{
			// The monitor is a single-operator tool; cross-origin
			// browsing of it is fine.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// PushLevel streams one loudness sample to live clients. Wire it to
// monitor.Scheduler.OnSample.
func (s *Server) PushLevel(level float64, active bool) {
	s.hub.broadcast(levelEvent{Type: "level", Level: level, Active: active})
}

// PushRecord announces a stored record to live clients. Wire it to
// monitor.Recorder.OnRecord.
func (s *Server) PushRecord(rec monitor.Record) {
	s.hub.broadcast(recordEvent{Type: "record", Record: rec})
}

// Handler returns the routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/gate", s.handleGate)
	mux.HandleFunc("GET /api/status", s.authed(s.handleStatus))
	mux.HandleFunc("GET /api/records", s.authed(s.handleRecords))
	mux.HandleFunc("GET /api/chart", s.authed(s.handleChart))
	mux.HandleFunc("GET /api/export.csv", s.authed(s.handleExportCSV))
	mux.HandleFunc("POST /api/config/{field}/{action}", s.authed(s.handleConfig))
	mux.HandleFunc("GET /api/live", s.authed(s.handleLive))

	return mux
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", "error", err)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

type noticeBody struct {
	Notice string `json:"notice"`
}

// sessionToken returns the token handed out on gate grant, or "".
func (s *Server) sessionToken() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.token
}

func (s *Server) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := s.sessionToken()
		if token == "" {
			s.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "gate not passed"})
			return
		}

		got := r.Header.Get("X-Session-Token")
		if got == "" {
			got = r.URL.Query().Get("token")
		}

		if got != token {
			s.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid session token"})
			return
		}

		next(w, r)
	}
}

type gateRequest struct {
	Code string `json:"code"`
}

type gateResponse struct {
	Result   string `json:"result"`
	Attempts int    `json:"attempts"`
	Token    string `json:"token,omitempty"`
	DelayMs  int64  `json:"delayMs,omitempty"`
}

func (s *Server) handleGate(w http.ResponseWriter, r *http.Request) {
	var req gateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	result := s.gate.Submit(req.Code)

	resp := gateResponse{
		Result:   result.String(),
		Attempts: s.gate.Attempts(),
	}

	if result == gate.Granted {
		token := uuid.NewString()

		s.mtx.Lock()
		s.token = token
		s.mtx.Unlock()

		resp.Token = token
		resp.DelayMs = gate.UnlockDelay.Milliseconds()

		s.log.Info("gate passed", "attempts", resp.Attempts)
	}

	s.writeJSON(w, http.StatusOK, resp)
}

type statusResponse struct {
	Active  bool           `json:"active"`
	Records int            `json:"records"`
	Clients int            `json:"clients"`
	Config  monitor.Config `json:"config"`
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, statusResponse{
		Active:  s.active.Active(),
		Records: s.store.Len(),
		Clients: s.hub.count(),
		Config:  s.settings.Snapshot(),
	})
}

func (s *Server) handleRecords(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handleChart(w http.ResponseWriter, _ *http.Request) {
	cfg := s.settings.Snapshot()

	points, err := chart.Project(s.store.Snapshot(), cfg.Threshold, cfg.YAxisMax)
	if err != nil {
		// Misconfiguration is local to the chart: report it inline,
		// records and sampling are unaffected.
		s.writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, points)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, _ *http.Request) {
	text, err := export.CSVAction(s.store.Snapshot())
	if errors.Is(err, export.ErrNoRecords) {
		s.writeJSON(w, http.StatusOK, noticeBody{Notice: "nothing to export"})
		return
	}

	if err != nil {
		s.writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="noise-records.csv"`)

	if _, err := w.Write([]byte(text)); err != nil {
		s.log.Error("writing csv response", "error", err)
	}
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	field := r.PathValue("field")
	action := r.PathValue("action")

	var (
		cfg monitor.Config
		err error
	)

	switch field + "/" + action {
	case "threshold/inc":
		cfg = s.settings.IncThreshold()
	case "threshold/dec":
		cfg = s.settings.DecThreshold()
	case "ymax/inc":
		cfg = s.settings.IncYAxisMax()
	case "ymax/dec":
		cfg, err = s.settings.DecYAxisMax()
	case "capacity/inc":
		cfg = s.settings.IncCapacity()
	case "capacity/dec":
		cfg = s.settings.DecCapacity()
	case "capacity/unbounded":
		cfg = s.settings.SetUnbounded()
	default:
		s.writeJSON(w, http.StatusNotFound, errorBody{Error: "unknown adjustment"})
		return
	}

	if errors.Is(err, monitor.ErrStepRejected) {
		s.writeJSON(w, http.StatusConflict, errorBody{Error: "adjustment rejected: chart range would collapse"})
		return
	}

	s.log.Info("config adjusted", "field", field, "action", action,
		"threshold", cfg.Threshold, "ymax", cfg.YAxisMax, "capacity", cfg.RecordCapacity)

	s.writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}

	id := s.hub.add(conn)
	defer s.hub.remove(id)

	// Live clients only listen; drain until the peer goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
