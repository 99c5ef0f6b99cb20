package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/mitchellh/go-ps"
)

// ErrAlreadyRunning is returned by Ensure when another instance exists.
var ErrAlreadyRunning = errors.New("another stopwatch instance is running")

// Lister returns the process table. It matches ps.Processes.
type Lister func() ([]ps.Process, error)

// Probe looks for processes sharing an executable name.
type Probe struct {
	// list returns the process table.
	list Lister
	// self is the PID of the current process.
	self int
}

// NewProbe creates a probe over the real process table.
func NewProbe() *Probe {
	return &Probe{
		list: ps.Processes,
		self: os.Getpid(),
	}
}

// NewProbeWith creates a probe over a custom process table; used by tests.
func NewProbeWith(list Lister, self int) *Probe {
	return &Probe{
		list: list,
		self: self,
	}
}

// Others returns the sorted PIDs of other processes named like executable.
// The ".exe" suffix is ignored on every platform.
func (p *Probe) Others(executable string) ([]int, error) {
	processes, err := p.list()
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	name := normalize(executable)

	var pids []int

	for _, process := range processes {
		if process.Pid() == p.self {
			continue
		}

		if normalize(process.Executable()) != name {
			continue
		}

		pids = append(pids, process.Pid())
	}

	slices.Sort(pids)

	return pids, nil
}

// Ensure returns ErrAlreadyRunning, listing the PIDs, when other instances exist.
func (p *Probe) Ensure(executable string) error {
	pids, err := p.Others(executable)
	if err != nil {
		return err
	}

	if len(pids) > 0 {
		return fmt.Errorf("%w: pids %v", ErrAlreadyRunning, pids)
	}

	return nil
}

// SelfName returns the executable name of the current process.
func SelfName() string {
	name := filepath.Base(os.Args[0])

	if exe, err := os.Executable(); err == nil {
		name = filepath.Base(exe)
	}

	return normalize(name)
}

func normalize(name string) string {
	name = filepath.Base(name)
	if runtime.GOOS == "windows" {
		name = strings.ToLower(name)
	}

	return strings.TrimSuffix(name, ".exe")
}
