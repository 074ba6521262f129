package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/lcdstat/internal/config"
	"github.com/rileyhilliard/lcdstat/internal/errors"
	"github.com/rileyhilliard/lcdstat/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string    // Destination, default ./lcdstat.yaml
	Overwrite      bool      // Overwrite existing config without asking
	NonInteractive bool      // Skip prompts, write defaults
	Out            io.Writer // Where progress is reported
}

// Init writes a new lcdstat.yaml configuration file.
func Init(opts InitOptions) error {
	path := opts.Path
	if path == "" {
		path = config.ConfigFileName
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	if _, err := os.Stat(path); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if !opts.NonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Save(cfg, path); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s Created %s\n\n", ui.Paint(ui.ColorSuccess, ui.SymbolSuccess), path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  lcdstat simulate  - Preview the pages in this terminal")
	fmt.Fprintln(out, "  lcdstat run       - Drive the LCD")
	return nil
}

// promptConfig asks for the wiring, starting from cfg's values.
func promptConfig(cfg *config.Config) error {
	lcdPins := formatPinList(cfg.LCD.RS, cfg.LCD.E, cfg.LCD.D4, cfg.LCD.D5, cfg.LCD.D6, cfg.LCD.D7)
	buttonPins := formatPinList(cfg.Buttons.Next, cfg.Buttons.Prev)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("gpio chip").
				Description("Character device the display and buttons are wired to").
				Placeholder(cfg.Chip).
				Value(&cfg.Chip).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("chip path is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Display lines").
				Description("Offsets for RS, E, D4, D5, D6, D7, comma separated").
				Value(&lcdPins).
				Validate(func(s string) error {
					_, err := parsePinList(s, 6)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Are NEXT/PREV buttons wired?").
				Value(&cfg.Buttons.Enabled),
			huh.NewInput().
				Title("Button lines").
				Description("Offsets for NEXT, PREV, comma separated").
				Value(&buttonPins).
				Validate(func(s string) error {
					_, err := parsePinList(s, 2)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Metric source").
				Options(
					huh.NewOption("procfs (read /proc directly)", config.BackendProcfs),
					huh.NewOption("gopsutil", config.BackendGopsutil),
				).
				Value(&cfg.Stats.Backend),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive")
	}

	l, _ := parsePinList(lcdPins, 6)
	cfg.LCD = config.LCDConfig{RS: l[0], E: l[1], D4: l[2], D5: l[3], D6: l[4], D7: l[5]}
	b, _ := parsePinList(buttonPins, 2)
	cfg.Buttons.Next, cfg.Buttons.Prev = b[0], b[1]
	return nil
}

func formatPinList(offsets ...int) string {
	parts := make([]string, len(offsets))
	for i, o := range offsets {
		parts[i] = strconv.Itoa(o)
	}
	return strings.Join(parts, ",")
}

// parsePinList parses exactly n comma-separated line offsets.
func parsePinList(s string, n int) ([]int, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d offsets, got %d", n, len(fields))
	}
	pins := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("'%s' is not a line offset", strings.TrimSpace(f))
		}
		if v < 0 || v > config.MaxOffset {
			return nil, fmt.Errorf("offset %d is out of range 0-%d", v, config.MaxOffset)
		}
		pins[i] = v
	}
	return pins, nil
}
