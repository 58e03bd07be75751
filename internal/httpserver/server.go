// internal/httpserver/server.go
//
// HTTP wiring for the solver assist API.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Assist sessions: POST /session/new, GET /session/{id},
//     POST /session/{id}/feedback — a thin surface over game.Game.
//   - Self-play: POST /simulate (full transcript for a chosen secret),
//     GET /daily (transcript for today's deterministic word).
//   - Auth and benchmark routes live in auth.go / bench.go.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Error bodies are small JSON objects; MalformedWord input maps to 400
//     and an emptied candidate pool (contradictory feedback) maps to 409.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/wardle/solver/internal/daily"
	"github.com/wardle/solver/internal/game"
	"github.com/wardle/solver/internal/simulation"
	"github.com/wardle/solver/internal/store"
	"github.com/wardle/solver/internal/words"
)

// defaultSuggestions is the number of ranked candidates returned when the
// caller does not ask for a specific n.
const defaultSuggestions = 5

// Server bundles router, session store, dictionary, and DB handle.
type Server struct {
	r     *chi.Mux
	store store.Store
	dict  words.Dictionary
	db    *sql.DB
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, dict words.Dictionary, db *sql.DB) *Server {
	s := &Server{r: chi.NewRouter(), store: st, dict: dict, db: db}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(60 * time.Second)) // bound handler time (bench runs are slow)
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wardle-solver","endpoints":["/health","POST /session/new","POST /session/{id}/feedback","POST /simulate","/auth/*","/bench/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": len(s.dict)})
	})

	// Assist sessions — open to guests
	s.r.Post("/session/new", s.handleNewSession)
	s.r.Get("/session/{id}", s.handleGetSession)
	s.r.Post("/session/{id}/feedback", s.handleFeedback)

	// Self-play
	s.r.Post("/simulate", s.handleSimulate)
	s.r.Get("/daily", s.handleDaily)

	// Auth + benchmark (bench run is gated)
	s.mountAuthRoutes()
	s.mountBenchRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ----------------------------- SESSIONS ------------------------------------

// roundJSON is the wire form of one applied guess/feedback round.
type roundJSON struct {
	Guess    string            `json:"guess"`
	Feedback words.FeedbackRow `json:"feedback"`
}

// sessionRes is the common session snapshot payload.
type sessionRes struct {
	SessionID   string      `json:"sessionId"`
	Remaining   int         `json:"remaining"`
	Suggestions []string    `json:"suggestions"`
	History     []roundJSON `json:"history,omitempty"`
}

// snapshot renders a session into its wire form with n suggestions.
func snapshot(sess *store.Session, n int) sessionRes {
	res := sessionRes{
		SessionID: sess.ID,
		Remaining: len(sess.Game.Words()),
	}
	for _, w := range sess.Game.SuggestedWords(n) {
		res.Suggestions = append(res.Suggestions, w.String())
	}
	for _, r := range sess.History {
		res.History = append(res.History, roundJSON{Guess: r.Guess.String(), Feedback: r.Feedback})
	}
	return res
}

// handleNewSession starts a fresh solver session over the full dictionary.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess := store.NewSession(game.New(s.dict))
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	sess.Lock()
	res := snapshot(sess, suggestN(r))
	sess.Unlock()
	_ = json.NewEncoder(w).Encode(res)
}

// handleGetSession returns the current pool size, top suggestions, and the
// round history of a session.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	sess.Lock()
	res := snapshot(sess, suggestN(r))
	sess.Unlock()
	_ = json.NewEncoder(w).Encode(res)
}

// feedbackReq is the payload for POST /session/{id}/feedback. Feedback is a
// pointer so an absent field is distinguishable from an all-Black row.
type feedbackReq struct {
	Guess    string             `json:"guess"`
	Feedback *words.FeedbackRow `json:"feedback"`
}

// handleFeedback applies one guess/feedback round to a session.
// Malformed guesses are recoverable (400, session untouched); an emptied
// candidate pool means the feedback so far is contradictory (409).
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if req.Feedback == nil {
		http.Error(w, `{"error":"missing_feedback"}`, http.StatusBadRequest)
		return
	}
	guess, err := words.ParseWord(req.Guess)
	if err != nil {
		http.Error(w, `{"error":"malformed_word"}`, http.StatusBadRequest)
		return
	}

	sess.Lock()
	remaining := sess.Game.ApplyFeedback(guess, *req.Feedback)
	sess.History = append(sess.History, simulation.Round{Guess: guess, Feedback: *req.Feedback})
	res := snapshot(sess, suggestN(r))
	sess.Unlock()

	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	if remaining == 0 {
		w.WriteHeader(http.StatusConflict)
	}
	_ = json.NewEncoder(w).Encode(res)
}

// ----------------------------- SELF-PLAY -----------------------------------

// simulateReq/Res payloads for POST /simulate.
type simulateReq struct {
	Secret string `json:"secret"`
}
type simulateRes struct {
	Secret string      `json:"secret"`
	Rounds []roundJSON `json:"rounds"`
	Solved bool        `json:"solved"`
}

// handleSimulate runs the solve loop against a caller-supplied secret and
// returns the full transcript. A contradiction (secret outside the
// dictionary) is reported as 409 with the partial transcript.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	secret, err := words.ParseWord(req.Secret)
	if err != nil {
		http.Error(w, `{"error":"malformed_word"}`, http.StatusBadRequest)
		return
	}
	s.writeTranscript(w, secret)
}

// handleDaily solves today's deterministic word (see internal/daily).
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	salt := os.Getenv("DAILY_SALT")
	s.writeTranscript(w, daily.Word(time.Now(), salt, s.dict))
}

// writeTranscript runs a Simulation for secret and encodes the transcript.
func (s *Server) writeTranscript(w http.ResponseWriter, secret words.Word) {
	sim := simulation.New(secret, s.dict)
	rounds, err := sim.Run()
	res := simulateRes{Secret: secret.String(), Solved: err == nil}
	for _, round := range rounds {
		res.Rounds = append(res.Rounds, roundJSON{Guess: round.Guess.String(), Feedback: round.Feedback})
	}
	if err != nil {
		if !errors.Is(err, simulation.ErrContradiction) {
			http.Error(w, `{"error":"simulation_failed"}`, http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusConflict)
	}
	_ = json.NewEncoder(w).Encode(res)
}

// ------------------------------- small util --------------------------------

// suggestN reads the ?n= query parameter, defaulting and clamping it.
func suggestN(r *http.Request) int {
	n := defaultSuggestions
	if v := r.URL.Query().Get("n"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			n = parsed
		}
	}
	if n > 50 {
		n = 50
	}
	return n
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
