package vortex

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseSpeed    = 0.02
	DefaultOffsetX      = 0.0
	DefaultRadiusScale  = 1.0
	DefaultColumnHeight = 1200.0
	DefaultWobble       = 30.0

	// Committed params are flushed to disk trailing-edge; rapid slider
	// changes collapse into one write.
	flushDelay = 200 * time.Millisecond
)

// Params are the tunable simulation parameters.
type Params struct {
	BaseSpeed    float64 `yaml:"base_speed"`    // orbit advance, radians per tick
	OffsetX      float64 `yaml:"offset_x"`      // horizontal shift of the vortex axis
	RadiusScale  float64 `yaml:"radius_scale"`  // multiplier on the orbit radius
	ColumnHeight float64 `yaml:"column_height"` // full vertical extent of the column
	Wobble       float64 `yaml:"wobble"`        // turbulence amplitude
}

func DefaultParams() Params {
	return Params{
		BaseSpeed:    DefaultBaseSpeed,
		OffsetX:      DefaultOffsetX,
		RadiusScale:  DefaultRadiusScale,
		ColumnHeight: DefaultColumnHeight,
		Wobble:       DefaultWobble,
	}
}

// Store keeps two copies of the parameters: a live one read by the frame
// loop every tick with zero latency, and a committed one that display
// controls read and that gets persisted. The frame loop must never read the
// committed copy.
type Store struct {
	path string
	live Params

	mu        sync.Mutex // guards committed and timer; the flush runs off-thread
	committed Params
	timer     *time.Timer
	wait      time.Duration
}

// NewStore loads the slot at path, falling back to defaults if the file is
// missing or malformed. path may be "" for an in-memory store.
func NewStore(path string) *Store {
	s := &Store{path: path, wait: flushDelay}
	s.live = loadParams(path)
	s.committed = s.live
	return s
}

func loadParams(path string) Params {
	p := DefaultParams()
	if path == "" {
		return p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		// Corrupt slot: silently fall back rather than fail the session.
		return DefaultParams()
	}
	return p
}

// Live returns the frame-loop copy. Callers mutate it directly; there is
// exactly one writer (the interactive control) and one reader (the frame
// loop), both on the UI thread.
func (s *Store) Live() *Params { return &s.live }

// Committed returns a snapshot of the last committed parameters.
func (s *Store) Committed() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committed
}

// Commit copies live over committed and schedules a coalesced flush to disk.
// Never blocks the frame loop.
func (s *Store) Commit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committed = s.live
	if s.path == "" {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.wait, func() { s.Flush() })
}

// Flush writes the committed parameters immediately. Used by the timer and
// at teardown.
func (s *Store) Flush() error {
	s.mu.Lock()
	p := s.committed
	path := s.path
	s.mu.Unlock()
	if path == "" {
		return nil
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultPath is the per-user parameter slot.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tabnado", "params.yaml")
}
