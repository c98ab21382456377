package cmd

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/wintune/internal/logging"
	"github.com/lakshaymaurya-felt/wintune/internal/optimize"
)

// Version info populated from main.
var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

type rootOptions struct {
	cleanTemp       bool
	emptyRecycle    bool
	optimizeTCP     bool
	restartAdapters bool
	showWifi        bool
	all             bool

	dryRun bool
	yes    bool
	debug  bool
}

// selectedActions builds the action set from flags. ok is false when no
// action flag was given, which selects interactive mode. --all wins over
// any individual flags and includes create-godmode.
func (o *rootOptions) selectedActions() (ids []optimize.ID, ok bool) {
	if o.all {
		return slices.Clone(optimize.CanonicalOrder), true
	}
	if o.cleanTemp {
		ids = append(ids, optimize.CleanTemp)
	}
	if o.emptyRecycle {
		ids = append(ids, optimize.EmptyRecycle)
	}
	if o.optimizeTCP {
		ids = append(ids, optimize.OptimizeTCP)
	}
	if o.restartAdapters {
		ids = append(ids, optimize.RestartAdapters)
	}
	if o.showWifi {
		ids = append(ids, optimize.ShowWifi)
	}
	return ids, len(ids) > 0
}

func newRootCmd(interactive *bool) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "wt",
		Short: "Quick Windows maintenance",
		Long: `WinTune - quick Windows maintenance.

Cleans temp files, empties the Recycle Bin, applies conservative TCP
tweaks, restarts network adapters, shows saved Wi-Fi passwords, and can
create a God Mode folder on the Desktop.

With any action flag the selected actions run once and the process exits.
Without flags an interactive menu is shown.`,
		Run: func(cmd *cobra.Command, args []string) {
			logging.Setup(opts.debug)

			cfg := optimize.Config{DryRun: opts.dryRun, AssumeYes: opts.yes}
			orch := optimize.New(optimize.System{})

			if ids, ok := opts.selectedActions(); ok {
				orch.Run(ids, cfg)
				return
			}

			*interactive = true
			runMenuLoop(orch, cfg)
		},
	}

	cmd.Flags().BoolVar(&opts.cleanTemp, "clean-temp", false, "Clean the %TEMP% directory")
	cmd.Flags().BoolVar(&opts.emptyRecycle, "empty-recycle", false, "Empty the Recycle Bin")
	cmd.Flags().BoolVar(&opts.optimizeTCP, "optimize-tcp", false, "Apply conservative TCP/netsh optimizations")
	cmd.Flags().BoolVar(&opts.restartAdapters, "restart-adapters", false, "Restart selected network adapters")
	cmd.Flags().BoolVar(&opts.showWifi, "show-wifi", false, "Show saved Wi-Fi profiles and passwords")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Run all actions")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show what would be done without making changes")
	cmd.Flags().BoolVar(&opts.yes, "yes", false, "Assume yes to all confirmations")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Show detailed operation logs")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and reports whether the interactive menu
// ran, so main can keep a double-click-launched window open.
func Execute() (interactive bool, err error) {
	root := newRootCmd(&interactive)
	err = root.Execute()
	return interactive, err
}
