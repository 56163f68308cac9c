package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"medtime/internal/auth"
	"medtime/internal/config"
	"medtime/internal/ledger"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	ledger *ledger.Store
	auth   *auth.Service
	config *config.Config
	log    *zap.Logger
}

// NewRootCommand creates the root cobra command and registers all
// subcommands.
func NewRootCommand(ledgerStore *ledger.Store, authService *auth.Service, cfg *config.Config, log *zap.Logger) *RootCommand {
	root := &RootCommand{
		ledger: ledgerStore,
		auth:   authService,
		config: cfg,
		log:    log,
	}

	root.cmd = &cobra.Command{
		Use:   "medtime",
		Short: "Shift tracking for clinical staff",
		Long: `MedTime tracks clock-in/clock-out shifts with a durable local ledger.

EXAMPLES:
  medtime serve                  # Run the HTTP API
  medtime in                     # Clock in now
  medtime out -n "handover ran late"
  medtime status                 # Show the running timer
  medtime export 2025-03         # Write the March 2025 report to a file

CONFIGURATION:
  MEDTIME_SERVER_ADDR            HTTP listen address (default: :8080)
  MEDTIME_DB_DIR                 Database directory (default: ~/.medtime)
  MEDTIME_DB_FILENAME            Database filename (default: medtime.db)
  MEDTIME_LOG_LEVEL              Log level (default: info)
  MEDTIME_LOG_FORMAT             Log format, json or console (default: console)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()
	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.newServeCommand(),
		r.newInCommand(),
		r.newOutCommand(),
		r.newStatusCommand(),
		r.newExportCommand(),
	)
}
