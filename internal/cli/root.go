// Package cli implements the command-line interface for cubeperm.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubeperm"
	"github.com/SeamusWaldron/cubeperm/internal/config"
	"github.com/SeamusWaldron/cubeperm/internal/logging"
	"github.com/SeamusWaldron/cubeperm/internal/recorder"
	"github.com/SeamusWaldron/cubeperm/internal/storage"
)

const version = "0.1.0"

// app carries what commands share once the root command has resolved
// configuration.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg    *config.Config
	logger *zap.Logger
	db     *storage.DB
}

// NewRootCmd builds the full command tree. The returned cleanup closes the
// database and flushes the logger; call it after Execute whether or not the
// command failed.
func NewRootCmd() (*cobra.Command, func()) {
	a := &app{}
	return newRootCmd(a), a.close
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cubeperm",
		Short: "Cube facelet permutation toolkit",
		Long: `cubeperm models a 3x3x3 cube as permutations of its 54 facelets.

Verify the quarter-turn generators, render the facelet net after a move
sequence, compute the order of a sequence, and keep named sessions whose
move logs are stored in SQLite.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.v = config.New(a.cfgFile)
			if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			a.logger.Debug("configuration loaded",
				zap.String("db", cfg.DBPath),
				zap.String("config", a.v.ConfigFileUsed()))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file (default: ~/.cubeperm.yaml)")
	cmd.PersistentFlags().String("db", "", "Database file path (default: ~/.cubeperm/sessions.db)")
	cmd.PersistentFlags().String("state", "", "State file path (default: next to the database)")
	cmd.PersistentFlags().Bool("color", false, "Colour the net by home face")
	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newVerifyCmd(a),
		newRenderCmd(a),
		newOrderCmd(a),
		newSessionCmd(a),
	)

	return cmd
}

// Execute runs the root command.
func Execute() {
	cmd, cleanup := NewRootCmd()
	err := cmd.Execute()
	cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// close releases what commands opened. cobra skips post-run hooks when RunE
// fails, so this runs outside the command tree.
func (a *app) close() {
	if a.db != nil {
		_ = a.db.Close()
		a.db = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// openRecorder opens and migrates the database on first use.
func (a *app) openRecorder(ctx context.Context) (*recorder.Recorder, error) {
	if a.db == nil {
		db, err := storage.Open(a.cfg.DBPath, a.logger)
		if err != nil {
			return nil, err
		}
		if err := db.MigrateUp(ctx); err != nil {
			db.Close()
			return nil, err
		}
		a.db = db
	}
	return recorder.New(a.db, cubeperm.Standard(), a.logger), nil
}

func (a *app) stateFile() (*recorder.StateFile, error) {
	return recorder.NewStateFile(a.cfg.StatePath)
}
