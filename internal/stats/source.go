package stats

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"
)

// Source reads one typed record per metric. A failing read fails as a whole.
type Source interface {
	CPUTimes(ctx context.Context) (CPUTimes, error)
	Memory(ctx context.Context) (Memory, error)
	LoadAvg(ctx context.Context) (LoadAvg, error)
	Uptime(ctx context.Context) (float64, error)
	// Temperature returns degrees Celsius or TempUnavailable. Never fails.
	Temperature(ctx context.Context) float64
}

// DefaultTempSources are the temperature files probed in order.
var DefaultTempSources = []string{
	"/sys/class/thermal/thermal_zone0/temp",
	"/sys/class/hwmon/hwmon0/temp1_input",
}

// ProcSource reads procfs and sysfs text files through an afero filesystem.
type ProcSource struct {
	fs          afero.Fs
	procRoot    string
	tempSources []string
}

// NewProcSource reads from the real filesystem. An empty procRoot means
// /proc; nil tempSources means DefaultTempSources.
func NewProcSource(procRoot string, tempSources []string) *ProcSource {
	return NewProcSourceFs(afero.NewOsFs(), procRoot, tempSources)
}

// NewProcSourceFs is NewProcSource over an arbitrary filesystem.
func NewProcSourceFs(fs afero.Fs, procRoot string, tempSources []string) *ProcSource {
	if procRoot == "" {
		procRoot = "/proc"
	}
	if tempSources == nil {
		tempSources = DefaultTempSources
	}
	return &ProcSource{fs: fs, procRoot: procRoot, tempSources: tempSources}
}

func (p *ProcSource) read(name string) (string, string, error) {
	path := filepath.Join(p.procRoot, name)
	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return path, "", err
	}
	return path, string(data), nil
}

func (p *ProcSource) CPUTimes(ctx context.Context) (CPUTimes, error) {
	path, data, err := p.read("stat")
	if err != nil {
		return CPUTimes{}, sourceErr(path, err)
	}
	t, err := ParseCPUTimes(data)
	if err != nil {
		return CPUTimes{}, sourceErr(path, err)
	}
	return t, nil
}

func (p *ProcSource) Memory(ctx context.Context) (Memory, error) {
	path, data, err := p.read("meminfo")
	if err != nil {
		return Memory{}, sourceErr(path, err)
	}
	m, err := ParseMemInfo(data)
	if err != nil {
		return Memory{}, sourceErr(path, err)
	}
	return m, nil
}

func (p *ProcSource) LoadAvg(ctx context.Context) (LoadAvg, error) {
	path, data, err := p.read("loadavg")
	if err != nil {
		return LoadAvg{}, sourceErr(path, err)
	}
	l, err := ParseLoadAvg(data)
	if err != nil {
		return LoadAvg{}, sourceErr(path, err)
	}
	return l, nil
}

func (p *ProcSource) Uptime(ctx context.Context) (float64, error) {
	path, data, err := p.read("uptime")
	if err != nil {
		return 0, sourceErr(path, err)
	}
	up, err := ParseUptime(data)
	if err != nil {
		return 0, sourceErr(path, err)
	}
	return up, nil
}

// Temperature returns the first readable candidate.
func (p *ProcSource) Temperature(ctx context.Context) float64 {
	for _, path := range p.tempSources {
		data, err := afero.ReadFile(p.fs, path)
		if err != nil {
			continue
		}
		c, err := ParseMilliCelsius(string(data))
		if err != nil {
			continue
		}
		return c
	}
	return TempUnavailable
}
