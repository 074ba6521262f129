package cli

import (
	"os"

	"github.com/rileyhilliard/lcdstat/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	statsOnceFlag      bool
	statsJSONFlag      bool
	initPathFlag       string
	initForceFlag      bool
	initNonInteractive bool
	runNoButtonsFlag   bool
)

// runCmd drives the display
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show host stats on the LCD",
	Long: `Open the gpio chip, initialize the HD44780 display and cycle stats pages
until interrupted. NEXT and PREV buttons step through the pages:

  CPU   usage, temperature, 1-minute load
  RAM   used/total MB and used percentage
  TEMP  CPU temperature and uptime

On SIGINT or SIGTERM the display is cleared and the gpio lines released.

Examples:
  lcdstat run
  lcdstat run --config /etc/lcdstat/config.yaml
  lcdstat run --no-buttons -v`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(cmd.Context(), RunOptions{
			ConfigPath: Config(),
			NoButtons:  runNoButtonsFlag,
		})
	},
}

// simulateCmd previews the pages in the terminal
var simulateCmd = &cobra.Command{
	Use:     "simulate",
	Aliases: []string{"sim"},
	Short:   "Preview the LCD pages in the terminal",
	Long: `Run the display loop against a virtual 16x2 LCD drawn in the terminal,
reading the same metrics 'run' would. No gpio hardware is needed.

Keyboard shortcuts:
  n / → / l   Next page
  p / ← / h   Previous page
  q / Ctrl+C  Quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return simulateCommand(cmd.Context())
	},
}

// statsCmd prints metrics to stdout
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print sampled host stats",
	Long: `Print CPU usage, memory, load averages, uptime and CPU temperature once a
second, the same readings the display pages use. The first reading is taken
a second before the first line so the CPU figure is a real delta.

Examples:
  lcdstat stats
  lcdstat stats --once
  lcdstat stats --json | jq .cpu_percent`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statsCommand(cmd.Context(), cmd.OutOrStdout(), StatsOptions{
			Once: statsOnceFlag,
			JSON: statsJSONFlag,
		})
	},
}

// initCmd writes a config file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create lcdstat.yaml configuration",
	Long: `Write a config file with the gpio chip, display and button wiring and the
metric source. Prompts for each value when run from a terminal.

Examples:
  lcdstat init
  lcdstat init --non-interactive
  lcdstat init --path /etc/lcdstat/config.yaml --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Path:           initPathFlag,
			Overwrite:      initForceFlag,
			NonInteractive: initNonInteractive || !stdinIsTerminal(),
			Out:            cmd.OutOrStdout(),
		})
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for lcdstat.

Examples:
  # Bash
  lcdstat completion bash > /etc/bash_completion.d/lcdstat

  # Zsh
  lcdstat completion zsh > "${fpath[1]}/_lcdstat"

  # Fish
  lcdstat completion fish > ~/.config/fish/completions/lcdstat.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// run command flags
	runCmd.Flags().BoolVar(&runNoButtonsFlag, "no-buttons", false, "don't request the button lines")

	// stats command flags
	statsCmd.Flags().BoolVar(&statsOnceFlag, "once", false, "print a single reading and exit")
	statsCmd.Flags().BoolVar(&statsJSONFlag, "json", false, "print one JSON object per reading")

	// init command flags
	initCmd.Flags().StringVar(&initPathFlag, "path", "", "where to write the config (default: ./lcdstat.yaml)")
	initCmd.Flags().BoolVarP(&initForceFlag, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "write defaults without prompting")

	// Register all commands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
