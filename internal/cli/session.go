package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeperm"
)

func newSessionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage persisted cube sessions",
		Long: `A session is a named cube state kept as a log of moves in the database.
Commands that take a session id use the active session when none is given.`,
	}

	cmd.AddCommand(
		newSessionNewCmd(a),
		newSessionApplyCmd(a),
		newSessionShowCmd(a),
		newSessionListCmd(a),
		newSessionUndoCmd(a),
		newSessionResetCmd(a),
		newSessionDeleteCmd(a),
		newSessionUseCmd(a),
	)
	return cmd
}

// resolveSession returns the id given by --id, or the active session.
func (a *app) resolveSession(id string) (string, error) {
	if id != "" {
		return id, nil
	}
	sf, err := a.stateFile()
	if err != nil {
		return "", err
	}
	if sf.ActiveSessionID() == "" {
		return "", errors.New("no active session (use 'cubeperm session new' or pass --id)")
	}
	return sf.ActiveSessionID(), nil
}

func newSessionNewCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new solved session and make it active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.openRecorder(cmd.Context())
			if err != nil {
				return err
			}
			id, err := rec.Start(cmd.Context(), name)
			if err != nil {
				return err
			}

			sf, err := a.stateFile()
			if err != nil {
				return err
			}
			if err := sf.SetActiveSession(id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Session started: %s\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Session name")
	return cmd
}

func newSessionApplyCmd(a *app) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "apply <moves...>",
		Short: "Apply moves to a session",
		Long: `Apply a move sequence to a session and print its net.
The whole sequence is rejected if any move is invalid.

Example:
  cubeperm session apply R U "R'" "U'"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID, err := a.resolveSession(id)
			if err != nil {
				return err
			}
			rec, err := a.openRecorder(cmd.Context())
			if err != nil {
				return err
			}
			tr, err := rec.Apply(cmd.Context(), sessionID, joinArgs(args))
			if err != nil {
				return err
			}
			return printTracker(cmd, a, tr)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Session ID (default: active session)")
	return cmd
}

func newSessionShowCmd(a *app) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a session's moves and net",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID, err := a.resolveSession(id)
			if err != nil {
				return err
			}
			rec, err := a.openRecorder(cmd.Context())
			if err != nil {
				return err
			}
			s, err := rec.Get(cmd.Context(), sessionID)
			if err != nil {
				return err
			}
			tr, err := rec.Load(cmd.Context(), sessionID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Session: %s\n", s.SessionID)
			if s.Name != "" {
				fmt.Fprintf(out, "Name:    %s\n", s.Name)
			}
			fmt.Fprintf(out, "Created: %s\n", s.CreatedAt.Local().Format(time.RFC3339))
			return printTracker(cmd, a, tr)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Session ID (default: active session)")
	return cmd
}

func newSessionListCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.openRecorder(cmd.Context())
			if err != nil {
				return err
			}
			sessions, err := rec.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintln(out, "No sessions")
				return nil
			}

			active := ""
			if sf, err := a.stateFile(); err == nil {
				active = sf.ActiveSessionID()
			}
			for _, s := range sessions {
				marker := " "
				if s.SessionID == active {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s  %s  %s\n", marker, s.SessionID, s.UpdatedAt.Local().Format("2006-01-02 15:04"), s.Name)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of sessions to list")
	return cmd
}

func newSessionUndoCmd(a *app) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Remove the last move of a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID, err := a.resolveSession(id)
			if err != nil {
				return err
			}
			rec, err := a.openRecorder(cmd.Context())
			if err != nil {
				return err
			}
			m, tr, err := rec.Undo(cmd.Context(), sessionID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Undid %s\n", m)
			return printTracker(cmd, a, tr)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Session ID (default: active session)")
	return cmd
}

func newSessionResetCmd(a *app) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear a session's moves, returning it to solved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID, err := a.resolveSession(id)
			if err != nil {
				return err
			}
			rec, err := a.openRecorder(cmd.Context())
			if err != nil {
				return err
			}
			if err := rec.Reset(cmd.Context(), sessionID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session %s reset\n", sessionID)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Session ID (default: active session)")
	return cmd
}

func newSessionDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.openRecorder(cmd.Context())
			if err != nil {
				return err
			}
			if err := rec.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			sf, err := a.stateFile()
			if err != nil {
				return err
			}
			if sf.ActiveSessionID() == args[0] {
				if err := sf.ClearActiveSession(); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session %s deleted\n", args[0])
			return nil
		},
	}
}

func newSessionUseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use <session-id>",
		Short: "Make a session active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.openRecorder(cmd.Context())
			if err != nil {
				return err
			}
			if _, err := rec.Get(cmd.Context(), args[0]); err != nil {
				return err
			}
			sf, err := a.stateFile()
			if err != nil {
				return err
			}
			if err := sf.SetActiveSession(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active session: %s\n", args[0])
			return nil
		},
	}
}

// printTracker prints a session's move log, solved flag and net.
func printTracker(cmd *cobra.Command, a *app, tr *cubeperm.Tracker) error {
	out := cmd.OutOrStdout()
	moves := tr.Moves()
	fmt.Fprintf(out, "Moves (%d): %s\n", len(moves), cubeperm.FormatMoves(moves))
	fmt.Fprintf(out, "Solved: %v\n", tr.IsSolved())
	fmt.Fprintln(out)
	return printNet(out, tr.State(), a.cfg.Color)
}
