package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"i4.energy/across/smsport/at"
	"i4.energy/across/smsport/modem"
)

// Messenger is the set of modem operations exposed over HTTP and MQTT.
// *modem.Modem implements it.
type Messenger interface {
	IsOpen() bool
	CountMessages(ctx context.Context) (int, error)
	ReadMessages(ctx context.Context, listCmd string) ([]modem.SMS, error)
	SendMessage(ctx context.Context, recipient, message string) (bool, error)
	DeleteMessage(ctx context.Context, deleteCmd string) (bool, error)
}

var _ Messenger = (*modem.Modem)(nil)

// Server handles incoming HTTP requests for interacting with the
// configured modem instance
type Server struct {
	Logger *slog.Logger
	Modem  Messenger

	once   sync.Once
	router http.Handler
}

// ServeHTTP implements the http.Handler interface for the Server struct
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.once.Do(func() {
		s.router = s.routes()
	})
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Route("/sms", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleSend)
		r.Get("/count", s.handleCount)
		r.Delete("/{index}", s.handleDelete)
	})
	return r
}

// sendRequest is the payload accepted by POST /sms and the MQTT topic.
type sendRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

func (req sendRequest) validate() error {
	if req.To == "" || req.Message == "" {
		return errors.New("both 'to' and 'message' fields are required")
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Warn("Failed to write response", "error", err)
	}
}

func (s *Server) sendError(w http.ResponseWriter, message string, statusCode int) {
	if message == "" {
		w.WriteHeader(statusCode)
		return
	}

	type ErrorResponse struct {
		Message string `json:"message"`
	}
	s.writeJSON(w, statusCode, ErrorResponse{Message: message})
}

// modemError maps an error from a modem workflow to a response.
func (s *Server) modemError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, modem.ErrNoData), errors.Is(err, modem.ErrIncompleteResponse):
		status = http.StatusGatewayTimeout
	case errors.Is(err, modem.ErrNoSuccess), errors.Is(err, modem.ErrUnexpectedResponse):
		status = http.StatusBadGateway
	case errors.Is(err, modem.ErrPortClosed),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	}
	s.sendError(w, err.Error(), status)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	open := s.Modem.IsOpen()
	status := http.StatusOK
	if !open {
		status = http.StatusServiceUnavailable
	}
	s.writeJSON(w, status, map[string]any{"status": "ok", "open": open})
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.Modem.CountMessages(r.Context())
	if err != nil {
		s.Logger.Error("Failed to count messages", "error", err)
		s.modemError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

var listFilters = map[string]bool{
	at.FilterAll:    true,
	at.FilterUnread: true,
	at.FilterRead:   true,
	at.FilterUnsent: true,
	at.FilterSent:   true,
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = at.FilterAll
	}
	if !listFilters[status] {
		s.sendError(w, "unknown message status "+strconv.Quote(status), http.StatusBadRequest)
		return
	}

	messages, err := s.Modem.ReadMessages(r.Context(), at.ListCommand(status))
	if err != nil {
		s.Logger.Error("Failed to read messages", "error", err, "status", status)
		s.modemError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messages)
}

// handleSend processes incoming HTTP POST requests to send SMS messages
func (s *Server) handleSend(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		s.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sent, err := s.Modem.SendMessage(r.Context(), req.To, req.Message)
	if err != nil {
		s.Logger.Error("Failed to send SMS", "error", err, "to", req.To)
		s.modemError(w, err)
		return
	}
	if !sent {
		s.Logger.Warn("SMS rejected by modem", "to", req.To)
		s.writeJSON(w, http.StatusBadGateway, map[string]bool{"sent": false})
		return
	}

	s.Logger.Info("SMS sent successfully", "to", req.To, "message_length", len(req.Message))
	s.writeJSON(w, http.StatusOK, map[string]bool{"sent": true})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	index := chi.URLParam(r, "index")
	if n, err := strconv.Atoi(index); err != nil || n < 0 {
		s.sendError(w, "index must be a non-negative integer", http.StatusBadRequest)
		return
	}

	args := index
	if flag := r.URL.Query().Get("flag"); flag != "" {
		if n, err := strconv.Atoi(flag); err != nil || n < 0 || n > 4 {
			s.sendError(w, "flag must be between 0 and 4", http.StatusBadRequest)
			return
		}
		args += "," + flag
	}

	deleted, err := s.Modem.DeleteMessage(r.Context(), at.DeleteCommand(args))
	if err != nil {
		s.Logger.Error("Failed to delete SMS", "error", err, "index", index)
		s.modemError(w, err)
		return
	}

	s.Logger.Info("SMS delete requested", "index", index, "deleted", deleted)
	s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}
