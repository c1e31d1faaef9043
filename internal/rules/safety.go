package rules

import "strings"

// IsSafetyNetTriggered reports whether input contains crisis language.
func IsSafetyNetTriggered(input string) bool {
	lower := strings.ToLower(input)
	for _, kw := range safetyKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// SafetyNetResponse returns the helpline response.
func SafetyNetResponse() SafetyResponse {
	return SafetyResponse{
		Response: safetyNetResponse,
		Action:   ActionSafetyNet,
		Priority: SafetyNetPriority,
	}
}

// HasMultipleTasks reports whether input looks like a list worth running task
// extraction on: more than two separated parts, or more than one obligation phrase.
func HasMultipleTasks(input string) bool {
	count := 1
	for _, re := range taskSeparators {
		count += len(re.FindAllStringIndex(input, -1))
	}

	lower := strings.ToLower(input)
	obligations := 0
	for _, phrase := range obligationPhrases {
		if strings.Contains(lower, phrase) {
			obligations++
		}
	}

	return count > 2 || obligations > 1
}
