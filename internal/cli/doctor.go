package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rileyhilliard/lcdstat/internal/config"
	"github.com/rileyhilliard/lcdstat/internal/doctor"
	"github.com/rileyhilliard/lcdstat/internal/errors"
	"github.com/rileyhilliard/lcdstat/internal/gpio"
	"github.com/rileyhilliard/lcdstat/internal/ui"
	"github.com/spf13/cobra"
)

var doctorJSON bool

// doctorCmd runs diagnostics
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check config, gpio lines and metric sources",
	Long: `Run the checks 'lcdstat run' depends on and report what would stop it:

  CONFIG  config file found and valid
  GPIO    chip opens, display and button lines are free
  STATS   metrics readable, a temperature source responds

Exits non-zero when any check fails. Warnings don't change the exit code.

Examples:
  lcdstat doctor
  lcdstat doctor --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(cmd.OutOrStdout(), Config(), gpio.OpenChip, doctorJSON)
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(doctorCmd)
}

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput represents a category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

func doctorCommand(out io.Writer, configPath string, open doctor.ChipOpener, asJSON bool) error {
	// A broken config is reported by the CONFIG checks; hardware is
	// still probed with the defaults.
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}

	checks := doctor.NewConfigChecks(configPath)
	checks = append(checks, doctor.NewHardwareChecks(cfg, open, cfg.NewSource())...)
	results := doctor.RunAll(checks)

	if asJSON {
		if err := outputDoctorJSON(out, results); err != nil {
			return err
		}
	} else {
		outputDoctorText(out, results)
	}

	if doctor.HasFailures(results) {
		return errors.New(errors.ErrConfig,
			doctor.Summary(results),
			"Fix the failed checks above and run 'lcdstat doctor' again")
	}
	return nil
}

func groupResults(results []doctor.CheckResult) []CategoryOutput {
	var cats []CategoryOutput
	index := make(map[string]int)
	for _, r := range results {
		i, ok := index[r.Category]
		if !ok {
			i = len(cats)
			index[r.Category] = i
			cats = append(cats, CategoryOutput{Name: r.Category})
		}
		cats[i].Results = append(cats[i].Results, r)
	}
	return cats
}

func outputDoctorJSON(out io.Writer, results []doctor.CheckResult) error {
	counts := doctor.CountByStatus(results)
	output := DoctorOutput{
		Categories: groupResults(results),
		Summary: SummaryOutput{
			Pass:     counts[doctor.StatusPass],
			Warn:     counts[doctor.StatusWarn],
			Fail:     counts[doctor.StatusFail],
			AllClear: counts[doctor.StatusWarn]+counts[doctor.StatusFail] == 0,
		},
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputDoctorText(out io.Writer, results []doctor.CheckResult) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Label("lcdstat diagnostic report"))
	fmt.Fprintln(out)

	for _, cat := range groupResults(results) {
		fmt.Fprintln(out, ui.Label(cat.Name))
		for _, r := range cat.Results {
			renderCheckResult(out, r)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, strings.Repeat("━", 40))
	symbol, color := ui.SymbolSuccess, ui.ColorSuccess
	if doctor.HasFailures(results) {
		symbol, color = ui.SymbolFail, ui.ColorError
	} else if doctor.CountByStatus(results)[doctor.StatusWarn] > 0 {
		color = ui.ColorWarning
	}
	fmt.Fprintf(out, "%s %s\n", ui.Paint(color, symbol), doctor.Summary(results))
}

func renderCheckResult(out io.Writer, r doctor.CheckResult) {
	symbol, color := ui.SymbolSuccess, ui.ColorSuccess
	switch r.Status {
	case doctor.StatusWarn:
		symbol, color = ui.SymbolPending, ui.ColorWarning
	case doctor.StatusFail:
		symbol, color = ui.SymbolFail, ui.ColorError
	}

	fmt.Fprintf(out, "  %s %s\n", ui.Paint(color, symbol), r.Message)
	if r.Suggestion != "" && r.Status != doctor.StatusPass {
		fmt.Fprintf(out, "    %s\n", ui.Paint(ui.ColorMuted, r.Suggestion))
	}
}
