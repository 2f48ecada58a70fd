package storage

import (
	"time"

	"github.com/vovakirdan/bulletstorm/internal/core"
)

// Recorder turns the game's event stream into ledger rows: one run per life.
type Recorder struct {
	store     *Store
	startedAt time.Time
	score     int
	kills     int
	level     int
}

// NewRecorder starts recording a run at the given time.
func NewRecorder(store *Store, at time.Time) *Recorder {
	return &Recorder{store: store, startedAt: at, level: 1}
}

// Observe consumes one event. A death closes the current run and
// starts the next.
func (r *Recorder) Observe(ev core.Event, at time.Time) error {
	switch ev.Kind {
	case core.EventKill:
		r.kills++
		r.score += ev.Value
	case core.EventLevelStart:
		r.level = ev.Level
	case core.EventDeath:
		_, err := r.store.SaveRun(Run{
			Score:     ev.Value,
			Level:     ev.Level,
			Kills:     r.kills,
			Duration:  at.Sub(r.startedAt),
			EndedBy:   EndedByDeath,
			CreatedAt: at,
		})
		r.startedAt = at
		r.score, r.kills = 0, 0
		return err
	}
	return nil
}

// Finish closes the run in progress when the session ends. A run that never
// scored is dropped.
func (r *Recorder) Finish(at time.Time) error {
	if r.score == 0 && r.kills == 0 {
		return nil
	}
	_, err := r.store.SaveRun(Run{
		Score:     r.score,
		Level:     r.level,
		Kills:     r.kills,
		Duration:  at.Sub(r.startedAt),
		EndedBy:   EndedByQuit,
		CreatedAt: at,
	})
	r.score, r.kills = 0, 0
	return err
}
