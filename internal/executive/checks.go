package executive

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// update applies the readings and progress signals found in text.
func (s *session) update(text string, now time.Time) {
	readInto(fatigueReading, text, maxReading, &s.fatigue)
	readInto(stressReading, text, maxReading, &s.stress)
	readInto(motivationReading, text, maxReading, &s.motivation)
	if readInto(accuracyReading, text, maxAccuracy, &s.accuracy) {
		s.accuracyReported = true
	}

	switch {
	case containsAny(text, donePhrases):
		s.taskStreak++
		s.consecutiveSkips = 0
	case containsAny(text, skipPhrases):
		s.consecutiveSkips++
		s.taskStreak = 0
	}

	switch {
	case containsAny(text, beginnerPhrases):
		s.level = LevelBeginner
	case containsAny(text, advancedPhrases):
		s.level = LevelAdvanced
	}
	if containsAny(text, syllabusPhrases) {
		s.syllabusComplete = true
	}

	s.lastInteraction = now
}

func (s *session) checkReadiness(text string, _ time.Time) State {
	switch {
	case s.fatigue >= highFatigue:
		return StateOverwhelmed
	case s.fatigue > 0 && s.fatigue <= lowFatigue:
		return StateFocus
	case s.taskStreak >= praiseStreak:
		return StatePraise
	case s.consecutiveSkips >= lightSkips:
		return StateLight
	case s.stress >= highStress:
		return StateBreak
	}

	if containsAny(text, mistakePhrases) {
		if topic := lastWord(text); topic != "" {
			s.mistakes[topic]++
			switch n := s.mistakes[topic]; {
			case n >= teachMistakes:
				return StateTeach
			case n == hintMistakes:
				return StateHint
			}
		}
	}

	if strings.Contains(text, helpPhrase) {
		return StateSupport
	}
	return StateNeutral
}

func (s *session) checkTimeFocus(_ string, now time.Time) State {
	switch elapsed := now.Sub(s.start); {
	case elapsed > forceQuitAfter:
		return StateForceQuit
	case elapsed > lowLoadAfter:
		return StateLowLoad
	case elapsed > breakAfter:
		return StateBreakSoon
	}

	switch hour := now.Hour(); {
	case hour >= 22 || hour <= 4:
		return StateNight
	case hour >= 5 && hour <= 9:
		return StateMorning
	}
	return StateNeutral
}

// checkLearning only judges accuracy once the user has reported a figure.
func (s *session) checkLearning(text string, _ time.Time) State {
	if s.accuracyReported {
		switch {
		case s.accuracy < lowAccuracy:
			return StateReteach
		case s.accuracy >= strongAccuracy:
			return StateStrong
		}
	}

	switch {
	case containsAny(text, examPhrases):
		return StateExamUrgent
	case strings.Contains(text, formulaPhrase):
		return StateMnemonic
	case strings.Contains(text, theoryPhrase):
		return StateExample
	}
	return StateNeutral
}

func (s *session) checkPsychology(text string, _ time.Time) State {
	switch {
	case s.motivation < lowMotivation:
		return StateProgress
	case containsAny(text, rescopePhrases):
		return StateRescope
	case containsAny(text, anxietyPhrases):
		return StateNormalize
	case containsAny(text, burnoutPhrases):
		return StateFirewall
	}
	return StateNeutral
}

func (s *session) checkSystem(text string, _ time.Time) State {
	switch {
	case strings.Contains(text, unsurePhrase):
		return StateSimple
	case strings.Contains(text, resetPhrase):
		return StateOnboard
	case s.syllabusComplete:
		return StateMock
	case containsAny(text, plateauPhrases):
		return StateChangeStrategy
	case containsAny(text, fastPhrases):
		return StateAccelerate
	}
	return StateNeutral
}

func (s *session) checkPreferences(text string, _ time.Time) State {
	if strings.HasPrefix(text, explainPrefix) {
		return StateExplain
	}
	if containsAny(text, visualPhrases) {
		s.visual = true
	}
	if s.visual {
		return StateVisual
	}

	switch s.level {
	case LevelBeginner:
		return StateBeginner
	case LevelAdvanced:
		return StateAdvanced
	}
	return StateNeutral
}

// readInto stores the first number captured by re, capped at limit.
func readInto(re *regexp.Regexp, text string, limit int, dst *int) bool {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	*dst = min(n, limit)
	return true
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// lastWord is the mistake topic: the final word of the message, without punctuation.
func lastWord(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[len(fields)-1], topicCutset)
}
