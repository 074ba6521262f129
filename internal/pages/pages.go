// Package pages formats a stats snapshot into the two display rows and
// rotates through a fixed ring of three pages: CPU, RAM and TEMP.
package pages

import (
	"fmt"

	"github.com/rileyhilliard/lcdstat/internal/stats"
)

// RenderFunc formats a snapshot as two display rows.
type RenderFunc func(s *stats.Snapshot) (Line, Line)

// Page is an immutable page descriptor.
type Page struct {
	Name   string
	Render RenderFunc
}

// Page names.
const (
	NameCPU  = "CPU"
	NameRAM  = "RAM"
	NameTemp = "TEMP"
)

var (
	CPUPage  = Page{Name: NameCPU, Render: renderCPU}
	RAMPage  = Page{Name: NameRAM, Render: renderRAM}
	TempPage = Page{Name: NameTemp, Render: renderTempUptime}
)

func renderCPU(s *stats.Snapshot) (Line, Line) {
	var l1 string
	if s.HasTemp() {
		l1 = fmt.Sprintf("CPU:%5.1f%% %2.0fC", s.CPUUsagePercent, s.CPUTempC)
	} else {
		l1 = fmt.Sprintf("CPU:%5.1f%%", s.CPUUsagePercent)
	}
	l2 := fmt.Sprintf("Load:%5.2f", s.Load1)
	return NewLine(l1), NewLine(l2)
}

func renderRAM(s *stats.Snapshot) (Line, Line) {
	usedMB := float64(s.MemUsedKB()) / 1024
	totalMB := float64(s.MemTotalKB) / 1024

	l1 := fmt.Sprintf("RAM:%5.0f/%4.0f", usedMB, totalMB)
	l2 := fmt.Sprintf("Used:%6.1f%%", s.MemUsedPercent())
	return NewLine(l1), NewLine(l2)
}

func renderTempUptime(s *stats.Snapshot) (Line, Line) {
	l1 := "CPU TEMP:  N/A "
	if s.HasTemp() {
		l1 = fmt.Sprintf("CPU TEMP:%5.1fC", s.CPUTempC)
	}
	return NewLine(l1), NewLine("UP " + FormatUptime(s.UptimeSeconds))
}

// FormatUptime renders seconds as HH:MM:SS. Hours keep growing past 99.
func FormatUptime(seconds float64) string {
	h := int(seconds / 3600)
	m := int((seconds - float64(h*3600)) / 60)
	sec := int(seconds) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}
