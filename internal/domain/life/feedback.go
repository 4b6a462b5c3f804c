package life

// FeedbackKey selects one canned advisory message.
type FeedbackKey string

const (
	FeedbackAllGood    FeedbackKey = "all_good"
	FeedbackLowEnergy  FeedbackKey = "low_energy"
	FeedbackHungry     FeedbackKey = "hungry"
	FeedbackHighStress FeedbackKey = "high_stress"
	FeedbackLowRoutine FeedbackKey = "low_routine"
	FeedbackLowSocial  FeedbackKey = "low_social"
	FeedbackBurnout    FeedbackKey = "burnout"
)

var feedbackMessages = map[FeedbackKey]string{
	FeedbackAllGood:    "You're balanced today — little nudges keep the momentum. Nice.",
	FeedbackLowEnergy:  "Low energy detected. A short nap or a gentle walk could help.",
	FeedbackHungry:     "Stomach says hello. A small snack will level you up.",
	FeedbackHighStress: "Breathing break? Two deep breaths and a mini leisure session.",
	FeedbackLowRoutine: "A tiny checklist today will boost Routine and ease future days.",
	FeedbackLowSocial:  "Ping a friend or say hi — even a 'hey' helps Social currency.",
	FeedbackBurnout:    "You're looking drained. Take a proper rest — screens off, real rest on.",
}

// FeedbackFor walks the priority chain, first match wins. Total over any
// stats vector and any stability value; it never fails.
func FeedbackFor(stats Stats, stability int) FeedbackKey {
	switch {
	case stability < 30:
		return FeedbackBurnout
	case statOr(stats, StatHunger, 50) < 30:
		return FeedbackHungry
	case statOr(stats, StatEnergy, 50) < 35:
		return FeedbackLowEnergy
	case statOr(stats, StatStress, 50) > 70:
		return FeedbackHighStress
	case statOr(stats, StatRoutine, 50) < 40:
		return FeedbackLowRoutine
	case statOr(stats, StatSocial, 50) < 30:
		return FeedbackLowSocial
	default:
		return FeedbackAllGood
	}
}

// MessageFor resolves a key to its fixed message, falling back to all_good
// for keys outside the catalog.
func MessageFor(key FeedbackKey) string {
	if msg, ok := feedbackMessages[key]; ok {
		return msg
	}
	return feedbackMessages[FeedbackAllGood]
}

// Tips returns the small contextual suggestions shown next to the feedback
// bubble. Thresholds are looser than the feedback chain on purpose.
func Tips(stats Stats) []string {
	var tips []string
	if statOr(stats, StatHunger, 50) < 35 {
		tips = append(tips, "Try eating a small meal.")
	}
	if statOr(stats, StatEnergy, 50) < 40 {
		tips = append(tips, "Short nap or easy movement could help.")
	}
	if statOr(stats, StatStress, 50) > 65 {
		tips = append(tips, "Mini-break: 5 minutes of leisure or breathing.")
	}
	return tips
}
