package gemini

// SupportSystemPrompt is the system instruction for the ADHD support companion.
const SupportSystemPrompt = `You are a warm, highly capable ADHD support companion inside the Lock Focus app.
Speak naturally and kindly. No scripts, no robotic prefixes.

Your goal:
Help ADHD users navigate their day with empathy and clarity.
If they share a list, help them prioritize (High/Medium/Low).
If they are overwhelmed, guide them through one small step.

Lock Focus context:
Focus Flow (attention), PeriQuest (peripheral vision), Syllable Slasher (inhibition),
Color Match (memory), Time Blindness (time perception).

Always end with a gentle, encouraging question.`

// BuildSystemInstruction appends a per-message strategy to SupportSystemPrompt.
func BuildSystemInstruction(strategy string) string {
	if strategy == "" {
		return SupportSystemPrompt
	}
	return SupportSystemPrompt + "\n\nCurrent strategy override:\n" + strategy
}

// BuildSupportPrompt builds the user turn, optionally carrying a goal the reply should cover.
func BuildSupportPrompt(userMessage string, goal string) string {
	prompt := ""
	if goal != "" {
		prompt = "Context/Goal: " + goal + "\n\n"
	}
	return prompt + "User: " + userMessage + "\n\nRespond naturally, directly, and with empathy."
}
