package life

// Rand is the randomness source behind flavor-line selection. Injected so
// callers (and tests) can pin deterministic output; math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// DialogueSocialNudge is the Social bump granted for free-form dialogue.
const DialogueSocialNudge = 2

var actionFlavor = []string{
	"That felt productive!",
	"You feel a little different now.",
	"Nice choice, keep it up!",
	"You notice a subtle change in your day.",
}

var dialogueFlavor = []string{
	"Your interaction brightened your day.",
	"Talking helps you feel connected.",
	"You feel a small boost in mood.",
}

// ActionFlavor picks a cosmetic line for a performed action.
func ActionFlavor(src Rand) string {
	return actionFlavor[src.Intn(len(actionFlavor))]
}

// DialogueFlavor picks a cosmetic line for free-form dialogue.
func DialogueFlavor(src Rand) string {
	return dialogueFlavor[src.Intn(len(dialogueFlavor))]
}
