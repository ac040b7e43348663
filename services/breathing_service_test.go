package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uviii9p/Health-Hub/models"
)

type phaseEvent struct {
	phase  string
	cycles int
}

// newFastBreathing shrinks a pattern second to 2ms so phase chains run in
// test time, and funnels every transition into a channel.
func newFastBreathing() (*BreathingService, <-chan phaseEvent) {
	s := NewBreathingService(nil)
	s.unit = 2 * time.Millisecond
	ch := make(chan phaseEvent, 64)
	s.OnPhase(func(phase string, cycles int) {
		ch <- phaseEvent{phase, cycles}
	})
	return s, ch
}

func nextPhase(t *testing.T, ch <-chan phaseEvent) phaseEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for phase transition")
		return phaseEvent{}
	}
}

func TestBreathingPhaseChain(t *testing.T) {
	s, ch := newFastBreathing()
	defer s.Stop()

	ex := models.BreathingExercise{
		ID:      1,
		Name:    "4-7-8 Breathing",
		Pattern: models.BreathingPattern{Inhale: 4, Hold1: 7, Exhale: 8},
	}
	status := s.Start(ex)
	assert.True(t, status.Active)
	assert.Equal(t, PhaseInhale, status.Phase)
	assert.Equal(t, 0, status.Cycles)

	assert.Equal(t, phaseEvent{PhaseInhale, 0}, nextPhase(t, ch))
	assert.Equal(t, phaseEvent{PhaseHold, 0}, nextPhase(t, ch))
	assert.Equal(t, phaseEvent{PhaseExhale, 0}, nextPhase(t, ch))
	assert.Equal(t, phaseEvent{PhaseInhale, 1}, nextPhase(t, ch), "hold2 is zero and gets skipped; a full loop bumps the cycle count")
	assert.Equal(t, phaseEvent{PhaseHold, 1}, nextPhase(t, ch))
}

func TestBreathingBoxPatternUsesBothHolds(t *testing.T) {
	s, ch := newFastBreathing()
	defer s.Stop()

	s.Start(models.BreathingExercise{
		ID:      2,
		Name:    "Box Breathing",
		Pattern: models.BreathingPattern{Inhale: 4, Hold1: 4, Exhale: 4, Hold2: 4},
	})

	want := []string{PhaseInhale, PhaseHold, PhaseExhale, PhaseHold2, PhaseInhale}
	for i, phase := range want {
		ev := nextPhase(t, ch)
		assert.Equal(t, phase, ev.phase, "transition %d", i)
	}
}

func TestBreathingStopCancelsPending(t *testing.T) {
	s, ch := newFastBreathing()

	s.Start(models.BreathingExercise{
		ID:      1,
		Pattern: models.BreathingPattern{Inhale: 4, Hold1: 7, Exhale: 8},
	})
	require.Equal(t, PhaseInhale, nextPhase(t, ch).phase)

	s.Stop()
	assert.False(t, s.Status().Active)

	// drain anything already in flight, then confirm silence
	deadline := time.After(50 * time.Millisecond)
	for {
		select {
		case <-ch:
		case <-deadline:
			goto done
		}
	}
done:
	select {
	case ev := <-ch:
		t.Fatalf("phase %q fired after stop", ev.phase)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBreathingStartReplacesSession(t *testing.T) {
	s, ch := newFastBreathing()
	defer s.Stop()

	s.Start(models.BreathingExercise{ID: 1, Name: "first", Pattern: models.BreathingPattern{Inhale: 4, Exhale: 4}})
	second := models.BreathingExercise{ID: 2, Name: "second", Pattern: models.BreathingPattern{Inhale: 4, Exhale: 4}}
	s.Start(second)

	status := s.Status()
	require.True(t, status.Active)
	require.NotNil(t, status.Exercise)
	assert.Equal(t, "second", status.Exercise.Name)
	assert.Equal(t, 0, status.Cycles, "replacing a session resets the cycle count")

	// the chain keeps running for the replacement
	for i := 0; i < 4; i++ {
		nextPhase(t, ch)
	}
	assert.Equal(t, 2, s.Status().Exercise.ID)
}

func TestBreathingIdleStatus(t *testing.T) {
	s := NewBreathingService(nil)

	status := s.Status()
	assert.False(t, status.Active)
	assert.Nil(t, status.Exercise)

	s.Stop() // no-op when idle
	assert.False(t, s.Status().Active)
}
