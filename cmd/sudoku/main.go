package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/fuzzyray/sudoku-solver/internal/solver"
	"github.com/fuzzyray/sudoku-solver/internal/usecase"
	"github.com/fuzzyray/sudoku-solver/internal/validator"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sudoku",
		Short:         "Solve and check 9x9 Sudoku puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCommand(), newCheckCommand())
	return root
}

func service() *usecase.Service {
	return usecase.NewService(solver.New(), validator.New())
}

func newSolveCommand() *cobra.Command {
	var cpuprofile bool
	cmd := &cobra.Command{
		Use:   "solve <puzzle>",
		Short: "Solve an 81-character puzzle string ('.' for empty cells)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cpuprofile {
				defer profile.Start(profile.ProfilePath(".")).Stop()
			}
			solution, st, err := service().SolvePuzzle(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), solution)
			fmt.Fprintf(cmd.ErrOrStderr(), "solved in %v, %d placements\n",
				st.Duration.Round(time.Microsecond), st.Nodes)
			return nil
		},
	}
	cmd.Flags().BoolVar(&cpuprofile, "cpuprofile", false, "write a CPU profile to the current directory")
	return cmd
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <puzzle> <coordinate> <value>",
		Short: "Check a single placement, e.g. check <puzzle> A1 7",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := service().CheckPlacement(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if res.Valid {
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "invalid: conflicts with %s\n",
				strings.Join(res.Conflicts, ", "))
			return nil
		},
	}
}
