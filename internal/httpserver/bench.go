// internal/httpserver/bench.go
//
// Benchmark routes: run the whole-dictionary self-play benchmark and serve
// past results. Running is gated behind auth (it is CPU-heavy); reading the
// latest summary is public. Runs and per-word round counts are persisted to
// SQLite so solver changes can be compared across deployments.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wardle/solver/internal/simulation"
)

// mountBenchRoutes registers /bench/run (gated) and /bench/latest (public).
func (s *Server) mountBenchRoutes() {
	s.r.With(s.requireAuth()).Post("/bench/run", s.handleBenchRun)
	s.r.Get("/bench/latest", s.handleBenchLatest)
}

// benchRunRes is the payload returned by POST /bench/run.
type benchRunRes struct {
	RunID   string             `json:"runId"`
	Summary simulation.Summary `json:"summary"`
}

// handleBenchRun solves every dictionary word, persists the run, and returns
// the aggregate summary. Worker count comes from ?workers= or BENCH_WORKERS.
func (s *Server) handleBenchRun(w http.ResponseWriter, r *http.Request) {
	workers := 0
	if v := r.URL.Query().Get("workers"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			workers = n
		}
	} else if v := getEnv("BENCH_WORKERS", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			workers = n
		}
	}

	runner := &simulation.Runner{Dict: s.dict, Workers: workers}
	started := time.Now().UTC()
	results, err := runner.Run(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("bench run")
		http.Error(w, `{"error":"bench_failed"}`, http.StatusInternalServerError)
		return
	}
	sum := simulation.Summarize(results)

	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	runID := genID()
	if err := s.persistBenchRun(runID, me, started, results, sum); err != nil {
		// Persistence is best effort; the caller still gets the summary.
		log.Warn().Err(err).Str("runId", runID).Msg("persist bench run")
	}

	_ = json.NewEncoder(w).Encode(benchRunRes{RunID: runID, Summary: sum})
}

// persistBenchRun writes one bench_runs row plus a bench_results row per word.
func (s *Server) persistBenchRun(runID string, me *authUser, started time.Time, results []simulation.Result, sum simulation.Summary) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	userID := ""
	if me != nil {
		userID = me.ID
	}
	if _, err := tx.Exec(`INSERT INTO bench_runs
	        (id, user_id, started_at, finished_at, words, failures, mean_rounds, max_rounds)
	        VALUES (?,?,?,?,?,?,?,?)`,
		runID, userID,
		started.Format(time.RFC3339), time.Now().UTC().Format(time.RFC3339),
		sum.Words, sum.Failures, sum.MeanRound, sum.MaxRound); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO bench_results (run_id, word, rounds, failed) VALUES (?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, res := range results {
		failed := 0
		if res.Err != nil {
			failed = 1
		}
		if _, err := stmt.Exec(runID, res.Word.String(), res.Rounds, failed); err != nil {
			return err
		}
	}
	if userID != "" {
		if _, err := tx.Exec(`UPDATE users SET bench_runs = bench_runs + 1 WHERE id=?`, userID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// benchRow mirrors a bench_runs row for JSON output.
type benchRow struct {
	RunID      string  `json:"runId"`
	StartedAt  string  `json:"startedAt"`
	FinishedAt string  `json:"finishedAt"`
	Words      int     `json:"words"`
	Failures   int     `json:"failures"`
	MeanRounds float64 `json:"meanRounds"`
	MaxRounds  int     `json:"maxRounds"`
}

// handleBenchLatest returns the most recent persisted run summary.
func (s *Server) handleBenchLatest(w http.ResponseWriter, r *http.Request) {
	row := s.db.QueryRow(`SELECT id, started_at, finished_at, words, failures, mean_rounds, max_rounds
	                      FROM bench_runs ORDER BY started_at DESC LIMIT 1`)
	var b benchRow
	if err := row.Scan(&b.RunID, &b.StartedAt, &b.FinishedAt, &b.Words, &b.Failures, &b.MeanRounds, &b.MaxRounds); err != nil {
		http.Error(w, `{"error":"no_runs"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(b)
}
