package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rileyhilliard/lcdstat/internal/config"
	"github.com/rileyhilliard/lcdstat/internal/logger"
	"github.com/rileyhilliard/lcdstat/internal/pages"
	"github.com/rileyhilliard/lcdstat/internal/stats"
	"github.com/rileyhilliard/lcdstat/internal/ui"
)

// StatsOptions holds options for the stats command.
type StatsOptions struct {
	Once bool // Print one reading and exit
	JSON bool // One JSON object per reading instead of the text block
}

// statsInterval is the gap between printed readings.
const statsInterval = time.Second

// StatsJSON is the --json form of one reading.
type StatsJSON struct {
	CPUPercent     float64  `json:"cpu_percent"`
	MemUsedMB      float64  `json:"mem_used_mb"`
	MemTotalMB     float64  `json:"mem_total_mb"`
	MemUsedPercent float64  `json:"mem_used_percent"`
	Load1          float64  `json:"load1"`
	Load5          float64  `json:"load5"`
	Load15         float64  `json:"load15"`
	UptimeSeconds  float64  `json:"uptime_seconds"`
	Uptime         string   `json:"uptime"`
	CPUTempC       *float64 `json:"cpu_temp_c"`
}

func statsCommand(ctx context.Context, out io.Writer, opts StatsOptions) error {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}
	sampler := stats.NewSampler(cfg.NewSource(), logger.NewEnvLogger("stats"))
	return printStats(ctx, out, sampler, statsInterval, opts)
}

// printStats primes the sampler, then prints a reading every interval.
// A failed reading is reported on the output and the next one is tried;
// with Once set it ends the command instead.
func printStats(ctx context.Context, out io.Writer, sampler *stats.Sampler, interval time.Duration, opts StatsOptions) error {
	if _, err := sampler.Sample(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		snap, err := sampler.Sample(ctx)
		if err != nil {
			if opts.Once {
				return err
			}
			fmt.Fprintf(out, "%s reading failed: %v\n", ui.Paint(ui.ColorError, ui.SymbolFail), firstLine(err))
			continue
		}

		if opts.JSON {
			if err := writeStatsJSON(out, snap); err != nil {
				return err
			}
		} else {
			fmt.Fprint(out, formatStats(snap))
		}

		if opts.Once {
			return nil
		}
	}
}

func writeStatsJSON(out io.Writer, s *stats.Snapshot) error {
	return json.NewEncoder(out).Encode(toStatsJSON(s))
}

func toStatsJSON(s *stats.Snapshot) StatsJSON {
	j := StatsJSON{
		CPUPercent:     s.CPUUsagePercent,
		MemUsedMB:      kbToMB(s.MemUsedKB()),
		MemTotalMB:     kbToMB(s.MemTotalKB),
		MemUsedPercent: s.MemUsedPercent(),
		Load1:          s.Load1,
		Load5:          s.Load5,
		Load15:         s.Load15,
		UptimeSeconds:  s.UptimeSeconds,
		Uptime:         pages.FormatUptime(s.UptimeSeconds),
	}
	if s.HasTemp() {
		t := s.CPUTempC
		j.CPUTempC = &t
	}
	return j
}

func kbToMB(kb int64) float64 {
	return float64(kb) / 1024
}

const statsRule = "--------------------------------------------------"

// formatStats renders one reading as a labelled block.
func formatStats(s *stats.Snapshot) string {
	var b strings.Builder

	row := func(label, value string) {
		fmt.Fprintf(&b, "%s: %s\n", ui.Label(fmt.Sprintf("%-12s", label)), value)
	}

	b.WriteString(ui.Paint(ui.ColorMuted, statsRule) + "\n")
	row("CPU Usage", ui.Paint(ui.ThresholdColor(s.CPUUsagePercent), fmt.Sprintf("%5.1f %%", s.CPUUsagePercent)))
	row("Memory", fmt.Sprintf("%6.1f / %6.1f MB (used/total)", kbToMB(s.MemUsedKB()), kbToMB(s.MemTotalKB)))
	row("Load Average", fmt.Sprintf("%.2f  %.2f  %.2f", s.Load1, s.Load5, s.Load15))
	row("Uptime", pages.FormatUptime(s.UptimeSeconds))
	if s.HasTemp() {
		row("CPU Temp", ui.Paint(ui.TempColor(s.CPUTempC), fmt.Sprintf("%.1f C", s.CPUTempC)))
	} else {
		row("CPU Temp", "N/A")
	}
	b.WriteString(ui.Paint(ui.ColorMuted, statsRule) + "\n")

	return b.String()
}

// firstLine trims a structured error to its headline.
func firstLine(err error) string {
	msg := strings.TrimPrefix(err.Error(), "✗ ")
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return msg
}
