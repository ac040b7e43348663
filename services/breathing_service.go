package services

import (
	"sync"
	"time"

	"github.com/Uviii9p/Health-Hub/models"
)

const (
	PhaseInhale = "inhale"
	PhaseHold   = "hold"
	PhaseExhale = "exhale"
	PhaseHold2  = "hold2"
)

// BreathingStatus is the externally visible state of the sequencer.
type BreathingStatus struct {
	Active   bool                      `json:"active"`
	Exercise *models.BreathingExercise `json:"exercise,omitempty"`
	Phase    string                    `json:"phase,omitempty"`
	Cycles   int                       `json:"cycles"`
}

type breathingSession struct {
	exercise models.BreathingExercise
	phase    string
	cycles   int
	timer    *time.Timer
}

// BreathingService runs the guided-breathing phase chain: each phase
// schedules the next after its pattern delay, and Stop cancels the pending
// transition leaving nothing else behind. At most one session runs at a
// time; starting a new one replaces the old.
type BreathingService struct {
	mu      sync.Mutex
	unit    time.Duration // real length of one pattern second
	session *breathingSession
	hub     *EventHub

	// onPhase, when set, observes every phase transition. Tests use it;
	// main wires it to nothing since the hub already broadcasts.
	onPhase func(phase string, cycles int)
}

func NewBreathingService(hub *EventHub) *BreathingService {
	return &BreathingService{unit: time.Second, hub: hub}
}

// OnPhase registers a transition observer.
func (s *BreathingService) OnPhase(fn func(phase string, cycles int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPhase = fn
}

// Start begins a session at the inhale phase, replacing any running one.
func (s *BreathingService) Start(ex models.BreathingExercise) BreathingStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	sess := &breathingSession{exercise: ex, phase: PhaseInhale}
	s.session = sess
	s.announceLocked(sess)
	s.scheduleLocked(sess)
	return s.statusLocked()
}

// Stop cancels the pending transition. Safe to call when idle.
func (s *BreathingService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *BreathingService) stopLocked() {
	if s.session == nil {
		return
	}
	if s.session.timer != nil {
		s.session.timer.Stop()
	}
	s.session = nil
	s.hub.Publish("breathing.stopped", nil)
}

func (s *BreathingService) Status() BreathingStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *BreathingService) statusLocked() BreathingStatus {
	if s.session == nil {
		return BreathingStatus{}
	}
	ex := s.session.exercise
	return BreathingStatus{
		Active:   true,
		Exercise: &ex,
		Phase:    s.session.phase,
		Cycles:   s.session.cycles,
	}
}

func (s *BreathingService) scheduleLocked(sess *breathingSession) {
	units, next := advancePhase(sess.exercise.Pattern, sess.phase)
	sess.timer = time.AfterFunc(time.Duration(units)*s.unit, func() {
		s.step(sess, next)
	})
}

func (s *BreathingService) step(sess *breathingSession, next string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// a timer that fired after Stop or a replacing Start must not act
	if s.session != sess {
		return
	}

	sess.phase = next
	if next == PhaseInhale {
		sess.cycles++
	}
	s.announceLocked(sess)
	s.scheduleLocked(sess)
}

func (s *BreathingService) announceLocked(sess *breathingSession) {
	s.hub.Publish("breathing.phase", map[string]any{
		"phase":  sess.phase,
		"cycles": sess.cycles,
	})
	if s.onPhase != nil {
		s.onPhase(sess.phase, sess.cycles)
	}
}

// advancePhase returns the length of the current phase in pattern seconds
// and the phase that follows it. Zero-length holds are skipped.
func advancePhase(p models.BreathingPattern, phase string) (int, string) {
	switch phase {
	case PhaseInhale:
		if p.Hold1 > 0 {
			return p.Inhale, PhaseHold
		}
		return p.Inhale, PhaseExhale
	case PhaseHold:
		return p.Hold1, PhaseExhale
	case PhaseExhale:
		if p.Hold2 > 0 {
			return p.Exhale, PhaseHold2
		}
		return p.Exhale, PhaseInhale
	default: // hold2
		return p.Hold2, PhaseInhale
	}
}
