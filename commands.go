// commands.go
//
// CLI subcommands for the solver:
//   serve    — run the assist HTTP server (sessions, simulate, auth, bench).
//   suggest  — one-shot ranking: apply guess:feedback rounds, print the
//              remaining candidates and top suggestions.
//   simulate — self-play a single secret and print the transcript.
//   bench    — whole-dictionary self-play benchmark, summary on stdout.
//
// All commands load the dictionary once at startup; a malformed word list is
// fatal before any work begins.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wardle/solver/internal/game"
	"github.com/wardle/solver/internal/httpserver"
	"github.com/wardle/solver/internal/simulation"
	"github.com/wardle/solver/internal/store"
	"github.com/wardle/solver/internal/words"
)

var rootCmd = &cobra.Command{
	Use:           "solver",
	Short:         "Wordle solver: candidate narrowing, suggestions, and self-play",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, suggestCmd, simulateCmd, benchCmd)

	simulateCmd.Flags().String("secret", "", "secret word to solve for (required)")
	_ = simulateCmd.MarkFlagRequired("secret")
	benchCmd.Flags().Int("workers", 0, "worker goroutines (default GOMAXPROCS)")
}

// loadDict loads the dictionary or exits; every subcommand needs it.
func loadDict() words.Dictionary {
	dict, err := words.LoadDictionary()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Debug().Int("words", len(dict)).Msg("dictionary loaded")
	return dict
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the assist HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		dict := loadDict()

		db, err := openDB(getEnv("DB_PATH", "./data/solver.db"))
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer db.Close()
		if err := migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		srv := httpserver.New(store.NewMemoryStore(), dict, db)
		port := getEnv("PORT", "5175")
		log.Info().Str("port", port).Int("words", len(dict)).Msg("starting solver server")
		return srv.Start(":" + port)
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest [guess:feedback ...]",
	Short: "Rank remaining candidates after zero or more rounds",
	Long: `Each argument is a played round in the form guess:feedback, where
feedback is five of b/y/g (black/yellow/green), e.g.

  solver suggest ready:ybygb crane:bbbgb`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dict := loadDict()
		g := game.New(dict)

		for _, arg := range args {
			guessStr, fbStr, ok := strings.Cut(arg, ":")
			if !ok {
				return fmt.Errorf("round %q: want guess:feedback", arg)
			}
			guess, err := words.ParseWord(guessStr)
			if err != nil {
				return fmt.Errorf("round %q: %w", arg, err)
			}
			row, err := words.ParseFeedbackRow(fbStr)
			if err != nil {
				return fmt.Errorf("round %q: %w", arg, err)
			}
			g.ApplyFeedback(guess, row)
		}

		remaining := g.Words()
		fmt.Printf("%d candidate(s) remain\n", len(remaining))
		if len(remaining) == 0 {
			return fmt.Errorf("no candidate is consistent with the supplied feedback")
		}
		for _, w := range g.SuggestedWords(10) {
			fmt.Println(w)
		}
		return nil
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Self-play one secret word and print the transcript",
	RunE: func(cmd *cobra.Command, args []string) error {
		dict := loadDict()
		secretStr, _ := cmd.Flags().GetString("secret")
		secret, err := words.ParseWord(secretStr)
		if err != nil {
			return err
		}

		sim := simulation.New(secret, dict)
		n := 0
		for round, err := range sim.Rounds() {
			if err != nil {
				return err
			}
			n++
			fmt.Printf("%d. %s  %s\n", n, round.Guess, round.Feedback)
		}
		fmt.Printf("solved %q in %d round(s)\n", secret, n)
		return nil
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Self-play every dictionary word and print aggregate statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dict := loadDict()
		workers, _ := cmd.Flags().GetInt("workers")

		runner := &simulation.Runner{Dict: dict, Workers: workers}
		results, err := runner.Run(context.Background())
		if err != nil {
			return err
		}
		sum := simulation.Summarize(results)
		for _, res := range results {
			if res.Err != nil {
				log.Warn().Stringer("word", res.Word).Err(res.Err).Msg("unsolved")
			}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	},
}
