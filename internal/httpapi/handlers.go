package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.uber.org/zap"

	"github.com/keivanh/keepwarm/internal/domain"
)

type targetPayload struct {
	URL string `json:"url"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleListTargets(w http.ResponseWriter, r *http.Request) {
	urls, err := s.State.Targets(r.Context())
	if err != nil {
		s.Logger.Warn("list_targets_error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "list error")
		return
	}
	if urls == nil {
		urls = []string{}
	}
	writeJSON(w, http.StatusOK, urls)
}

func (s *Server) handleAddTarget(w http.ResponseWriter, r *http.Request) {
	var p targetPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.URL == "" {
		writeError(w, http.StatusBadRequest, "bad payload")
		return
	}
	if err := validation.Validate(p.URL, validation.Required, is.URL); err != nil {
		writeError(w, http.StatusBadRequest, "invalid url")
		return
	}

	urls, err := s.State.Targets(r.Context())
	if err != nil {
		s.Logger.Warn("add_target_load_error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "store error")
		return
	}
	for _, u := range urls {
		if u == p.URL {
			writeError(w, http.StatusConflict, "duplicate target")
			return
		}
	}
	urls = append(urls, p.URL)
	if err := s.State.SaveTargets(r.Context(), urls); err != nil {
		s.Logger.Warn("add_target_save_error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "store error")
		return
	}

	s.Logger.Info("added_target", zap.String("url", p.URL), zap.Int("total", len(urls)))
	writeJSON(w, http.StatusOK, urls)
}

func (s *Server) handleDeleteTarget(w http.ResponseWriter, r *http.Request) {
	var p targetPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.URL == "" {
		writeError(w, http.StatusBadRequest, "bad payload")
		return
	}

	urls, err := s.State.Targets(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store error")
		return
	}
	kept := urls[:0]
	for _, u := range urls {
		if u != p.URL {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(urls) {
		writeError(w, http.StatusNotFound, "unknown target")
		return
	}
	if err := s.State.SaveTargets(r.Context(), kept); err != nil {
		s.Logger.Warn("delete_target_save_error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "store error")
		return
	}

	s.Logger.Info("removed_target", zap.String("url", p.URL), zap.Int("total", len(kept)))
	writeJSON(w, http.StatusOK, kept)
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	policy, err := s.State.Policy(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store error")
		return
	}
	writeJSON(w, http.StatusOK, policy)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var p domain.RetryPolicy
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "bad payload")
		return
	}
	p = p.Sanitized()
	if err := s.State.SavePolicy(r.Context(), p); err != nil {
		s.Logger.Warn("put_settings_save_error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "store error")
		return
	}
	s.Logger.Info("updated_settings",
		zap.Int("max_retries", p.MaxRetries),
		zap.Int("delay_seconds", p.DelaySeconds),
	)
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleListLogs(w http.ResponseWriter, r *http.Request) {
	history, err := s.State.History(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store error")
		return
	}
	if history == nil {
		history = []domain.LogEntry{}
	}
	writeJSON(w, http.StatusOK, history)
}

type runResponse struct {
	Ran   bool             `json:"ran"`
	Entry *domain.LogEntry `json:"entry,omitempty"`
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	// the run is detached from the request context: probes keep going
	// even if the caller hangs up mid-execution
	entry, err := s.Engine.Run(context.WithoutCancel(r.Context()), domain.TriggerManual)
	if err != nil {
		s.Logger.Warn("manual_run_error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "run failed")
		return
	}
	if entry == nil {
		writeJSON(w, http.StatusOK, runResponse{Ran: false})
		return
	}
	writeJSON(w, http.StatusOK, runResponse{Ran: true, Entry: entry})
}
