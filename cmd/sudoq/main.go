// Command sudoq solves, batch-solves, and generates 9x9 Sudoku puzzles from
// the command line. It is a thin cobra front end over the sudoku and batch
// packages; all search semantics live there.
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sudoq/backtrack"
	"github.com/katalvlaran/sudoq/batch"
	"github.com/katalvlaran/sudoq/sudoku"
)

var log = logrus.New()

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// newRootCmd wires the subcommands plus the flags every one of them
// shares: logging verbosity and optional profiling.
func newRootCmd() *cobra.Command {
	var (
		verbose     bool
		profileMode string
		prof        interface{ Stop() }
	)

	root := &cobra.Command{
		Use:           "sudoq",
		Short:         "Deterministic 9x9 Sudoku solving, batching and generation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			switch profileMode {
			case "":
			case "cpu":
				prof = profile.Start(profile.ProfilePath("."))
			case "mem":
				prof = profile.Start(profile.MemProfile, profile.ProfilePath("."))
			default:
				return fmt.Errorf("unknown --profile mode %q (want cpu or mem)", profileMode)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if prof != nil {
				prof.Stop()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine diagnostics")
	root.PersistentFlags().StringVar(&profileMode, "profile", "", "write a cpu or mem profile to the current directory")

	root.AddCommand(newSolveCmd(), newSumCmd(), newGenerateCmd())

	return root
}

// newSolveCmd solves a single puzzle given inline, as a file, or on stdin.
func newSolveCmd() *cobra.Command {
	var (
		text     bool
		unique   bool
		maxNodes uint64
	)

	cmd := &cobra.Command{
		Use:   "solve [puzzle|file|-]",
		Short: "Solve one puzzle (inline board, file path, or stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readPuzzleInput(args)
			if err != nil {
				return err
			}
			board, err := sudoku.Parse(input)
			if err != nil {
				return err
			}

			var st backtrack.Stats
			opts := []backtrack.Option{
				backtrack.WithContext(cmd.Context()),
				backtrack.WithStats(&st),
			}
			if maxNodes > 0 {
				opts = append(opts, backtrack.WithMaxNodes(maxNodes))
			}

			solution, err := solveBoard(board, unique, opts)
			if err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"clues":    board.Clues(),
				"visited":  st.Visited,
				"rejected": st.Rejected,
			}).Debug("solved")

			printBoard(cmd.OutOrStdout(), solution, text)

			return nil
		},
	}

	cmd.Flags().BoolVar(&text, "text", false, "print the solution as one 81-character line")
	cmd.Flags().BoolVar(&unique, "unique", false, "fail unless the puzzle has exactly one solution")
	cmd.Flags().Uint64Var(&maxNodes, "max-nodes", 0, "abandon the search after this many candidates (0 = unlimited)")

	return cmd
}

// newSumCmd batch-solves a collection and prints the Euler 96 checksum.
func newSumCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "sum <file|->",
		Short: "Solve a puzzle collection and print the sum of top-left numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			boards, err := readCollection(args[0])
			if err != nil {
				return err
			}
			log.WithField("puzzles", len(boards)).Info("collection loaded")

			results, err := batch.Run(cmd.Context(), boards,
				batch.WithWorkers(workers),
				batch.WithProgress(func(r batch.Result) {
					entry := log.WithFields(logrus.Fields{
						"board":   r.Index,
						"visited": r.Stats.Visited,
					})
					if r.Err != nil {
						entry.WithError(r.Err).Warn("board failed")

						return
					}
					entry.Debug("board solved")
				}))
			if err != nil {
				return err
			}

			sum, err := batch.SumTopLeft(results)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)

			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent solvers (0 = one per CPU)")

	return cmd
}

// newGenerateCmd produces a fresh puzzle with a unique solution.
func newGenerateCmd() *cobra.Command {
	var (
		difficulty string
		seed       int64
		solution   bool
		text       bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with exactly one solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := sudoku.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}

			var rng *rand.Rand
			if seed != 0 {
				rng = rand.New(rand.NewSource(seed))
			}

			puzzle, err := sudoku.Generate(rng, d)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"difficulty": d.String(),
				"clues":      puzzle.Clues(),
			}).Debug("generated")

			printBoard(cmd.OutOrStdout(), puzzle, text)

			if solution {
				solved, serr := sudoku.SolveUnique(puzzle, backtrack.WithContext(cmd.Context()))
				if serr != nil {
					return serr
				}
				fmt.Fprintln(cmd.OutOrStdout())
				printBoard(cmd.OutOrStdout(), solved, text)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", sudoku.Medium.String(), "easy, medium, hard or expert")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().BoolVar(&solution, "solution", false, "also print the solution")
	cmd.Flags().BoolVar(&text, "text", false, "print boards as 81-character lines")

	return cmd
}

// solveBoard dispatches between the plain and properness-checking solves.
func solveBoard(b sudoku.Board, unique bool, opts []backtrack.Option) (sudoku.Board, error) {
	if unique {
		return sudoku.SolveUnique(b, opts...)
	}

	return sudoku.Solve(b, opts...)
}

// readPuzzleInput resolves the solve argument: no argument or "-" reads
// stdin; an existing path reads that file; anything else is the board
// itself.
func readPuzzleInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}

		return string(data), nil
	}

	if _, err := os.Stat(args[0]); err == nil {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}

		return string(data), nil
	}

	return args[0], nil
}

// readCollection loads a puzzle collection from a path or stdin.
func readCollection(arg string) ([]sudoku.Board, error) {
	if arg == "-" {
		return batch.Read(os.Stdin)
	}

	return batch.ReadFile(arg)
}

// printBoard writes a board in the chosen format.
func printBoard(w io.Writer, b sudoku.Board, text bool) {
	if text {
		fmt.Fprintln(w, b.Text())

		return
	}
	fmt.Fprint(w, b.String())
}
