package sports

import "vitrine/internal/types"

// fallbacks are the bundled substitutes used when a live fetch fails,
// keyed by topic reference.
var fallbacks = map[string]types.SportSummary{
	"Association_football": {
		Title:   "Soccer",
		Summary: "Soccer is a team game. Two sides try to score by kicking the ball into a goal.",
		URL:     "https://en.wikipedia.org/wiki/Association_football",
	},
	"Basketball": {
		Title:   "Basketball",
		Summary: "Basketball is a fast team sport where players shoot the ball through a hoop.",
		URL:     "https://en.wikipedia.org/wiki/Basketball",
	},
	"Tennis": {
		Title:   "Tennis",
		Summary: "Tennis is played with rackets across a net. Players rally to win points.",
		URL:     "https://en.wikipedia.org/wiki/Tennis",
	},
	"Swimming_(sport)": {
		Title:   "Swimming",
		Summary: "Swimming is a water sport. Athletes race in different strokes and distances.",
		URL:     "https://en.wikipedia.org/wiki/Swimming_(sport)",
	},
	"Formula_One": {
		Title:   "Formula One",
		Summary: "Formula One is top-level motor racing. Drivers compete in high-speed open-wheel cars.",
		URL:     "https://en.wikipedia.org/wiki/Formula_One",
	},
}

// fallbackFor returns the bundled record for a topic, or a generic
// placeholder when no fallback is bundled for its reference.
func fallbackFor(topic types.SportTopic) types.SportSummary {
	if fb, ok := fallbacks[topic.Ref]; ok {
		fb.Key = topic.Key
		fb.Fallback = true
		return fb
	}
	return types.SportSummary{
		Key:      topic.Key,
		Title:    topic.Title,
		Summary:  "A popular sport enjoyed worldwide.",
		URL:      "#",
		Fallback: true,
	}
}
