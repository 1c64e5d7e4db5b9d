package service

import "fmt"

// defaultLanguageKey selects the instruction used for unmapped languages.
// Unknown target languages silently fall back to the English phrasing; the
// deck is still stamped with the language the caller asked for.
const defaultLanguageKey = "english"

// languageInstructions maps lower-cased language names to the phrase embedded
// in the generation prompt that steers the model's output language.
var languageInstructions = map[string]string{
	"english":  "in English",
	"hindi":    "हिंदी में",
	"spanish":  "en español",
	"french":   "en français",
	"german":   "auf Deutsch",
	"chinese":  "用中文",
	"japanese": "日本語で",
	"arabic":   "بالعربية",
}

// connectionProbePrompt is the fixed prompt used by the connectivity check.
// It asks, in Hindi, for a one-sentence answer to "how are you?".
const connectionProbePrompt = "मुझे केवल एक वाक्य में उत्तर दें: आप कैसे हैं?"

// buildPrompt constructs the card-generation prompt embedding the topic, the
// language instruction, and the desired JSON shape of the reply.
func buildPrompt(topic, instruction string, count int) string {
	return fmt.Sprintf(`Create %d educational flash cards about %q %s.

Please respond with a JSON array where each object has:
- "front": A key term, concept, or question
- "back": A detailed explanation, definition, or answer

Format your response as valid JSON only, no additional text:
[
  {"front": "term/concept", "back": "detailed explanation"},
  {"front": "term/concept", "back": "detailed explanation"}
]`, count, topic, instruction)
}
