package executive

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noon keeps the time-of-day checks quiet.
var noon = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestAnalyzer(at time.Time) (*Analyzer, *clock) {
	c := &clock{t: at}
	return New(Options{Now: c.now}), c
}

func TestAnalyze_SingleMessage(t *testing.T) {
	tests := []struct {
		message string
		want    State
	}{
		{"hello there", StateNeutral},
		{"my fatigue 8 today", StateOverwhelmed},
		{"fatigue: 2", StateFocus},
		{"stress 9", StateBreak},
		{"can you help me", StateSupport},
		{"I have an exam soon", StateExamUrgent},
		{"this formula makes no sense", StateMnemonic},
		{"the theory is confusing", StateExample},
		{"motivation 1", StateProgress},
		{"I'm overwhelmed", StateRescope},
		{"feeling anxious", StateNormalize},
		{"total burnout", StateFirewall},
		{"I'm not sure what to pick", StateSimple},
		{"reset everything", StateOnboard},
		{"I'm stuck at chapter 4", StateChangeStrategy},
		{"this is too easy", StateAccelerate},
		{"why this order?", StateExplain},
		{"show me the plan", StateVisual},
		{"switch to beginner mode", StateBeginner},
		{"advanced mode please", StateAdvanced},
		{"accuracy 40", StateReteach},
		{"accuracy 95", StateStrong},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			a, _ := newTestAnalyzer(noon)
			got := a.Analyze("s1", tt.message)
			assert.Equal(t, tt.want, got.State)
			assert.Equal(t, Instruction(tt.want), got.Instruction)
			if tt.want != StateNeutral {
				assert.NotEmpty(t, got.Instruction)
			}
		})
	}
}

func TestAnalyze_NeutralHasNoInstruction(t *testing.T) {
	a, _ := newTestAnalyzer(noon)

	got := a.Analyze("s1", "hello there")
	assert.True(t, got.IsNeutral())
	assert.Empty(t, got.Instruction)
}

func TestAnalyze_ReadinessWinsOverLaterGroups(t *testing.T) {
	a, _ := newTestAnalyzer(noon)

	// fatigue is checked before the overwhelmed phrase
	assert.Equal(t, StateOverwhelmed, a.Analyze("s1", "fatigue 9 and I'm overwhelmed").State)
}

func TestAnalyze_ReadingsPersistAcrossMessages(t *testing.T) {
	a, _ := newTestAnalyzer(noon)

	assert.Equal(t, StateBreak, a.Analyze("s1", "stress 8").State)
	assert.Equal(t, StateBreak, a.Analyze("s1", "ok").State)
	assert.Equal(t, StateNeutral, a.Analyze("s1", "stress 2").State)

	snap, ok := a.Snapshot("s1")
	require.True(t, ok)
	assert.Equal(t, 2, snap.Stress)
}

func TestAnalyze_ReadingsAreCapped(t *testing.T) {
	a, _ := newTestAnalyzer(noon)

	a.Analyze("s1", "stress 400, accuracy 250")
	snap, _ := a.Snapshot("s1")
	assert.Equal(t, 10, snap.Stress)
	assert.Equal(t, 100, snap.Accuracy)
	assert.True(t, snap.AccuracyReported)
}

func TestAnalyze_Streaks(t *testing.T) {
	a, _ := newTestAnalyzer(noon)

	assert.Equal(t, StateNeutral, a.Analyze("s1", "done").State)
	assert.Equal(t, StateNeutral, a.Analyze("s1", "checked").State)
	assert.Equal(t, StatePraise, a.Analyze("s1", "got it").State)

	assert.Equal(t, StateNeutral, a.Analyze("s1", "skip this one").State)
	snap, _ := a.Snapshot("s1")
	assert.Zero(t, snap.TaskStreak)
	assert.Equal(t, 1, snap.ConsecutiveSkips)

	assert.Equal(t, StateLight, a.Analyze("s1", "I won't do it").State)
	assert.Equal(t, StateNeutral, a.Analyze("s1", "done").State)
}

func TestAnalyze_MistakesPerTopic(t *testing.T) {
	a, _ := newTestAnalyzer(noon)

	assert.Equal(t, StateNeutral, a.Analyze("s1", "I got it wrong again in algebra").State)
	assert.Equal(t, StateHint, a.Analyze("s1", "another mistake in algebra.").State)
	assert.Equal(t, StateNeutral, a.Analyze("s1", "made a mistake in geometry").State)
	assert.Equal(t, StateTeach, a.Analyze("s1", "still wrong: algebra").State)
	assert.Equal(t, StateTeach, a.Analyze("s1", "wrong again, algebra").State)
}

func TestAnalyze_SessionTime(t *testing.T) {
	a, c := newTestAnalyzer(noon)

	assert.Equal(t, StateNeutral, a.Analyze("s1", "hi").State)

	c.advance(26 * time.Minute)
	assert.Equal(t, StateBreakSoon, a.Analyze("s1", "hi").State)

	c.advance(20 * time.Minute)
	assert.Equal(t, StateLowLoad, a.Analyze("s1", "hi").State)

	c.advance(45 * time.Minute)
	assert.Equal(t, StateForceQuit, a.Analyze("s1", "hi").State)

	// a new session starts its own clock
	assert.Equal(t, StateNeutral, a.Analyze("s2", "hi").State)
}

func TestAnalyze_TimeOfDay(t *testing.T) {
	tests := []struct {
		hour int
		want State
	}{
		{23, StateNight},
		{2, StateNight},
		{4, StateNight},
		{5, StateMorning},
		{9, StateMorning},
		{10, StateNeutral},
		{21, StateNeutral},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%02d:00", tt.hour), func(t *testing.T) {
			at := time.Date(2026, 3, 2, tt.hour, 0, 0, 0, time.UTC)
			a, _ := newTestAnalyzer(at)
			assert.Equal(t, tt.want, a.Analyze("s1", "hi").State)
		})
	}
}

func TestAnalyze_AccuracyOnlyAfterReport(t *testing.T) {
	a, _ := newTestAnalyzer(noon)

	snap := func() Snapshot {
		s, _ := a.Snapshot("s1")
		return s
	}

	assert.Equal(t, StateExample, a.Analyze("s1", "theory again").State)
	assert.False(t, snap().AccuracyReported)
	assert.Equal(t, 80, snap().Accuracy)

	assert.Equal(t, StateStrong, a.Analyze("s1", "accuracy 85").State)
	assert.Equal(t, StateStrong, a.Analyze("s1", "theory again").State)
}

func TestAnalyze_PreferencesStick(t *testing.T) {
	a, _ := newTestAnalyzer(noon)

	assert.Equal(t, StateVisual, a.Analyze("s1", "draw a diagram").State)
	assert.Equal(t, StateVisual, a.Analyze("s1", "next").State)

	snap, _ := a.Snapshot("s1")
	assert.True(t, snap.VisualPreference)
}

func TestAnalyze_SyllabusComplete(t *testing.T) {
	a, _ := newTestAnalyzer(noon)

	assert.Equal(t, StateMock, a.Analyze("s1", "I finished the syllabus").State)
	assert.Equal(t, StateMock, a.Analyze("s1", "what next").State)
}

func TestReset(t *testing.T) {
	a, _ := newTestAnalyzer(noon)

	a.Analyze("s1", "stress 9")
	a.Reset("s1")

	_, ok := a.Snapshot("s1")
	assert.False(t, ok)
	assert.Equal(t, StateNeutral, a.Analyze("s1", "hi").State)
}

func TestSnapshot_UnknownSession(t *testing.T) {
	a, _ := newTestAnalyzer(noon)

	_, ok := a.Snapshot("nobody")
	assert.False(t, ok)
}

func TestAnalyze_SessionsAreIsolated(t *testing.T) {
	a, _ := newTestAnalyzer(noon)

	a.Analyze("s1", "stress 9")
	assert.Equal(t, StateNeutral, a.Analyze("s2", "hello").State)
}

func TestAnalyze_ConcurrentSessions(t *testing.T) {
	a, _ := newTestAnalyzer(noon)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("s%d", i%2)
			for range 25 {
				a.Analyze(id, "done")
			}
		}()
	}
	wg.Wait()

	for _, id := range []string{"s0", "s1"} {
		snap, ok := a.Snapshot(id)
		require.True(t, ok)
		assert.Equal(t, 100, snap.TaskStreak, id)
	}
}
