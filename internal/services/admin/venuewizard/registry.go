package venuewizard

import (
	"strings"
	"sync"
	"time"

	platformerrors "github.com/louisbranch/venuedesk/internal/platform/errors"
	"github.com/louisbranch/venuedesk/internal/platform/id"
)

const (
	// DefaultRunTTL bounds how long an idle run survives.
	DefaultRunTTL = 2 * time.Hour
	// runCleanupInterval controls how often expired runs are purged.
	runCleanupInterval = 5 * time.Minute
)

// Run is a registered wizard owned by one console session.
type Run struct {
	ID        string
	SessionID string
	Wizard    *Wizard
}

type runEntry struct {
	run       Run
	expiresAt time.Time
}

// Registry keeps wizard runs between requests. Each console session owns at
// most one run.
type Registry struct {
	mu          sync.Mutex
	ttl         time.Duration
	runs        map[string]*runEntry
	bySession   map[string]string
	lastCleanup time.Time
	now         func() time.Time
	newID       func() (string, error)
}

// NewRegistry builds a registry whose runs expire after ttl of inactivity.
func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultRunTTL
	}
	return &Registry{
		ttl:       ttl,
		runs:      make(map[string]*runEntry),
		bySession: make(map[string]string),
		now:       time.Now,
		newID:     id.NewID,
	}
}

// Open starts a run for sessionID, closing the session's previous run.
func (r *Registry) Open(sessionID string, store Store, props Props) (Run, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return Run{}, platformerrors.New(platformerrors.CodeWizardClosed, "console session is required")
	}
	runID, err := r.newID()
	if err != nil {
		return Run{}, platformerrors.Wrap(platformerrors.CodeUnknown, "generate run id", err)
	}

	wizard := New(store, props)
	wizard.Open()
	run := Run{ID: runID, SessionID: sessionID, Wizard: wizard}

	r.mu.Lock()
	now := r.now()
	stale := r.cleanupLocked(now)
	if previous := r.removeSessionLocked(sessionID); previous != nil {
		stale = append(stale, previous)
	}
	r.runs[runID] = &runEntry{run: run, expiresAt: now.Add(r.ttl)}
	r.bySession[sessionID] = runID
	r.mu.Unlock()

	closeAll(stale)
	return run, nil
}

// Get returns the run when it exists, belongs to sessionID and has not
// expired. Access extends the run's lifetime.
func (r *Registry) Get(sessionID string, runID string) (Run, error) {
	r.mu.Lock()
	now := r.now()
	stale := r.cleanupLocked(now)
	run, err := r.getLocked(now, strings.TrimSpace(sessionID), strings.TrimSpace(runID))
	if err != nil && run.Wizard != nil {
		stale = append(stale, run.Wizard)
	}
	r.mu.Unlock()

	closeAll(stale)
	if err != nil {
		return Run{}, err
	}
	return run, nil
}

func (r *Registry) getLocked(now time.Time, sessionID string, runID string) (Run, error) {
	entry, ok := r.runs[runID]
	if !ok || entry.run.SessionID != sessionID {
		return Run{}, platformerrors.New(platformerrors.CodeNotFound, "wizard run not found")
	}
	if now.After(entry.expiresAt) {
		r.deleteLocked(entry.run)
		return entry.run, platformerrors.New(platformerrors.CodeNotFound, "wizard run expired")
	}
	entry.expiresAt = now.Add(r.ttl)
	return entry.run, nil
}

// Close closes and forgets one run.
func (r *Registry) Close(sessionID string, runID string) error {
	run, err := r.Get(sessionID, runID)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.deleteLocked(run)
	r.mu.Unlock()
	run.Wizard.Close()
	return nil
}

// DropSession closes every run of sessionID and reports how many were
// dropped.
func (r *Registry) DropSession(sessionID string) int {
	r.mu.Lock()
	previous := r.removeSessionLocked(strings.TrimSpace(sessionID))
	r.mu.Unlock()
	if previous == nil {
		return 0
	}
	previous.Close()
	return 1
}

// Len reports the number of live runs.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.runs)
}

func (r *Registry) removeSessionLocked(sessionID string) *Wizard {
	runID, ok := r.bySession[sessionID]
	if !ok {
		return nil
	}
	entry, ok := r.runs[runID]
	delete(r.bySession, sessionID)
	if !ok {
		return nil
	}
	delete(r.runs, runID)
	return entry.run.Wizard
}

func (r *Registry) deleteLocked(run Run) {
	delete(r.runs, run.ID)
	if r.bySession[run.SessionID] == run.ID {
		delete(r.bySession, run.SessionID)
	}
}

// cleanupLocked forgets expired runs and returns their wizards so they can be
// closed once the registry lock is released.
func (r *Registry) cleanupLocked(now time.Time) []*Wizard {
	if now.Sub(r.lastCleanup) < runCleanupInterval {
		return nil
	}
	var expired []*Wizard
	for _, entry := range r.runs {
		if now.After(entry.expiresAt) {
			r.deleteLocked(entry.run)
			expired = append(expired, entry.run.Wizard)
		}
	}
	r.lastCleanup = now
	return expired
}

func closeAll(wizards []*Wizard) {
	for _, wizard := range wizards {
		wizard.Close()
	}
}
