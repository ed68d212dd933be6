// Package scheduler binds one animation variant to a surface and paces its
// update and draw calls from the host's per-frame callback.
package scheduler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"backdrop/internal/core"
	"backdrop/internal/logging"
)

// DefaultDebounce is how long the surface size must stay unchanged before a
// resize reloads the variant.
const DefaultDebounce = 250 * time.Millisecond

var (
	// ErrNoVariants is returned when no factory is registered.
	ErrNoVariants = errors.New("scheduler: no variants registered")
	// ErrUnknownVariant is returned for names missing from the registry.
	ErrUnknownVariant = errors.New("scheduler: unknown variant")
	// ErrNotStarted is returned by operations that need an active variant.
	ErrNotStarted = errors.New("scheduler: not started")
)

// Options configures a Scheduler. Zero values select sensible defaults.
type Options struct {
	// Factories defaults to the global registry.
	Factories map[string]core.Factory
	// Variant pins the startup variant; empty picks one at random.
	Variant string
	// Params holds per-variant string parameters keyed by variant name.
	Params  map[string]map[string]string
	Rand    core.Rand
	Palette core.Palette
	Logger  *slog.Logger
	// Debounce defaults to DefaultDebounce; negative disables debouncing.
	Debounce time.Duration
}

// FrameStat reports the timings of one accepted frame.
type FrameStat struct {
	Frame   int
	Variant string
	At      time.Time
	Delta   time.Duration
	Update  time.Duration
	Draw    time.Duration
}

// State is everything the scheduler tracks about the active variant.
type State struct {
	Variant core.Variant
	limiter core.FrameLimiter
}

// MaxFPS returns the active frame cap.
func (s *State) MaxFPS() int {
	if s.Variant == nil {
		return 0
	}
	return s.Variant.MaxFPS()
}

// LastFrame returns the time of the last accepted frame.
func (s *State) LastFrame() time.Time { return s.limiter.Last() }

type resize struct {
	w, h int
	at   time.Time
}

// Scheduler drives exactly one variant at a time.
type Scheduler struct {
	opts    Options
	log     *slog.Logger
	surface core.Surface
	state   State
	paused  bool
	pending *resize
	frames  int
	onFrame func(FrameStat)
}

// New builds a scheduler. Nothing runs until Start.
func New(opts Options) *Scheduler {
	if opts.Factories == nil {
		opts.Factories = core.Variants()
	}
	if opts.Rand == nil {
		opts.Rand = core.NewClockRNG()
	}
	if opts.Debounce == 0 {
		opts.Debounce = DefaultDebounce
	} else if opts.Debounce < 0 {
		opts.Debounce = 0
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scheduler{opts: opts, log: logging.Component(logger, "scheduler")}
}

// OnFrame installs a hook called after every accepted frame.
func (s *Scheduler) OnFrame(fn func(FrameStat)) { s.onFrame = fn }

// State exposes the active variant and frame pacing.
func (s *Scheduler) State() *State { return &s.state }

// Current returns the active variant name, or "" before Start.
func (s *Scheduler) Current() string {
	if s.state.Variant == nil {
		return ""
	}
	return s.state.Variant.Name()
}

// Names lists the selectable variants in sorted order.
func (s *Scheduler) Names() []string {
	names := make([]string, 0, len(s.opts.Factories))
	for n := range s.opts.Factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Paused reports whether frames are currently suspended.
func (s *Scheduler) Paused() bool { return s.paused }

// Start picks the startup variant, loads it onto surface and draws once.
func (s *Scheduler) Start(surface core.Surface, now time.Time) error {
	s.surface = surface
	name := s.opts.Variant
	if name == "" {
		names := s.Names()
		if len(names) == 0 {
			return ErrNoVariants
		}
		name = names[s.opts.Rand.IntN(len(names))]
	}
	return s.activate(name, now)
}

// Swap replaces the active variant with a freshly built one.
func (s *Scheduler) Swap(name string, now time.Time) error {
	if s.surface == nil {
		return ErrNotStarted
	}
	return s.activate(name, now)
}

// Next swaps to the variant after the current one in name order.
func (s *Scheduler) Next(now time.Time) error {
	names := s.Names()
	if len(names) == 0 {
		return ErrNoVariants
	}
	next := names[0]
	for i, n := range names {
		if n == s.Current() {
			next = names[(i+1)%len(names)]
			break
		}
	}
	return s.Swap(next, now)
}

func (s *Scheduler) activate(name string, now time.Time) error {
	f, ok := s.opts.Factories[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	v := f(core.Env{Params: s.opts.Params[name], Rand: s.opts.Rand, Palette: s.opts.Palette})
	if err := v.Load(s.surface); err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	if err := v.Draw(); err != nil {
		return fmt.Errorf("draw %s: %w", name, err)
	}
	s.state.Variant = v
	s.state.limiter.SetMaxFPS(v.MaxFPS())
	s.state.limiter.Reset(now)
	w, h := s.surface.Size()
	s.log.Info("variant loaded", "variant", name, "max_fps", v.MaxFPS(), "width", w, "height", h)
	return nil
}

// Resize records a new surface size. It is applied by Frame once no further
// resize arrives for the debounce period.
func (s *Scheduler) Resize(w, h int, now time.Time) {
	s.pending = &resize{w: w, h: h, at: now}
}

// Pause suspends frames while the host is hidden.
func (s *Scheduler) Pause() {
	if !s.paused {
		s.log.Debug("paused")
	}
	s.paused = true
}

// Resume restarts frames. The first resumed delta does not include the
// hidden period.
func (s *Scheduler) Resume(now time.Time) {
	if s.paused {
		s.log.Debug("resumed")
	}
	s.paused = false
	s.state.limiter.Reset(now)
}

// Frame runs one host callback. It reports whether the variant was updated
// and drawn.
func (s *Scheduler) Frame(now time.Time) (bool, error) {
	v := s.state.Variant
	if v == nil {
		return false, ErrNotStarted
	}
	if err := s.applyResize(now); err != nil {
		return false, err
	}
	if s.paused {
		return false, nil
	}
	dt, ok := s.state.limiter.Accept(now)
	if !ok {
		return false, nil
	}

	start := time.Now()
	v.Update(dt)
	updated := time.Now()
	if err := v.Draw(); err != nil {
		return false, fmt.Errorf("draw %s: %w", v.Name(), err)
	}
	s.frames++
	if s.onFrame != nil {
		s.onFrame(FrameStat{
			Frame:   s.frames,
			Variant: v.Name(),
			At:      now,
			Delta:   dt,
			Update:  updated.Sub(start),
			Draw:    time.Since(updated),
		})
	}
	return true, nil
}

func (s *Scheduler) applyResize(now time.Time) error {
	p := s.pending
	if p == nil || now.Sub(p.at) < s.opts.Debounce {
		return nil
	}
	s.pending = nil
	if w, h := s.surface.Size(); w == p.w && h == p.h {
		return nil
	}
	if r, ok := s.surface.(core.Resizable); ok {
		r.Resize(p.w, p.h)
	}
	v := s.state.Variant
	if err := v.Load(s.surface); err != nil {
		return fmt.Errorf("reload %s: %w", v.Name(), err)
	}
	if err := v.Draw(); err != nil {
		return fmt.Errorf("draw %s: %w", v.Name(), err)
	}
	s.state.limiter.Reset(now)
	s.log.Info("surface resized", "variant", v.Name(), "width", p.w, "height", p.h)
	return nil
}
