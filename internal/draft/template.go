package draft

import (
	"strings"

	"vitrine/internal/types"
)

// Purposes and Tones are the recognized selector values, in display order.
var (
	Purposes = []string{"greeting", "inquiry", "collaboration", "support", "thanks"}
	Tones    = []string{"friendly", "professional", "concise", "enthusiastic", "polite"}
)

var toneStyles = map[string]string{
	"friendly":     "warm and friendly",
	"professional": "clear and professional",
	"concise":      "short and to the point",
	"enthusiastic": "excited and upbeat",
	"polite":       "polite and respectful",
}

const defaultStyle = "clear and friendly"

var openers = map[string]string{
	"inquiry":       "Hello,",
	"collaboration": "Hello,",
	"support":       "Hi,",
	"thanks":        "Hello,",
}

var bodies = map[string]string{
	"greeting":      "Just stopping by to say hi and learn more about your projects.",
	"inquiry":       "I have a quick question and would love your guidance.",
	"collaboration": "I have an idea we could build together and would like to discuss.",
	"support":       "I ran into a small issue and could use your help.",
	"thanks":        "Thanks for your time and the work you share.",
}

// localTemplate builds a draft from fixed per-purpose tables. It is a
// pure function of name, purpose, and tone; unrecognized values get
// generic defaults.
func localTemplate(name, purpose, tone string) types.Draft {
	who := name
	if who == "" {
		who = "there"
	}

	var subject string
	switch purpose {
	case "greeting":
		from := name
		if from == "" {
			from = "a visitor"
		}
		subject = "Hello from " + from
	case "inquiry":
		subject = "Question about your work"
	case "collaboration":
		subject = "Collaboration idea"
	case "support":
		subject = "Need a bit of help"
	case "thanks":
		subject = "Thank you!"
	default:
		subject = "Hello"
	}

	opener := openers[purpose]
	if opener == "" {
		if purpose == "greeting" {
			opener = "Hi, " + who + "!"
		} else {
			opener = "Hello,"
		}
	}

	parts := []string{opener}
	if body := bodies[purpose]; body != "" {
		parts = append(parts, body)
	}
	parts = append(parts, "Looking forward to hearing from you.")

	style := toneStyles[tone]
	if style == "" {
		style = defaultStyle
	}

	return types.Draft{
		Subject: subject,
		Body:    strings.Join(parts, " "),
		Help:    "Draft created in a " + style + " style. Edit any part before sending.",
	}
}
