package usecase

const (
	// offlineResponse is used when no rule matched and no generator is configured.
	offlineResponse = "I'm here to help with ADHD strategies and Lock Focus tips! Tell me what's on your mind. 💙\n\n" +
		"Note: The AI service is currently unavailable, but I can still help with basic support."

	// generatorErrorResponse is used when the generator is configured but the call failed.
	generatorErrorResponse = "I'm having a little trouble connecting to my brain, but I'm still here! " +
		"Let's take a breath together. What's one small thing we can focus on right now?"

	// greeting seeds every conversation after the system instruction.
	greeting = "Hello! I'm your ADHD support partner. I'm here to help you focus and navigate whatever is on your mind. How can I assist you today?"
)

const (
	// triggerPatternPrefix keys the patterns recorded for non-neutral states.
	triggerPatternPrefix = "trigger_"
	triggerConfidence    = 0.7

	knownTriggersLabel = "Known triggers for this user: "
)
