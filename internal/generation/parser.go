package generation

import (
	"encoding/json"
	"strings"
)

// CardText is one parsed front/back pair extracted from a model reply.
type CardText struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// parseStrategy attempts to extract card pairs from a raw model reply.
// It reports false when the reply does not match the strategy's format,
// in which case the next strategy is tried.
type parseStrategy func(reply string, count int) ([]CardText, bool)

// strategies are tried in order until one matches. The final line-pair
// heuristic always matches, so parsing never fails outright.
var strategies = []parseStrategy{
	jsonArrayCards,
	linePairCards,
}

// ParseCards extracts at most count front/back pairs from a raw LLM reply.
// Parsing is best-effort: malformed input degrades to fewer pairs, or none,
// rather than an error.
func ParseCards(reply string, count int) []CardText {
	reply = strings.TrimSpace(reply)

	for _, strategy := range strategies {
		if cards, ok := strategy(reply, count); ok {
			if len(cards) > count {
				cards = cards[:count]
			}
			return cards
		}
	}

	return nil
}

// jsonArrayCards decodes a JSON array of {"front", "back"} objects embedded
// anywhere in the reply. Models are prompted for JSON only, but often wrap it
// in prose or code fences, so the slice between the first '[' and the last
// ']' is decoded rather than the whole reply. Objects missing either field
// decode to empty strings.
func jsonArrayCards(reply string, _ int) ([]CardText, bool) {
	payload := reply
	start := strings.Index(reply, "[")
	end := strings.LastIndex(reply, "]")
	if start != -1 && end > start {
		payload = reply[start : end+1]
	}

	var cards []CardText
	if err := json.Unmarshal([]byte(payload), &cards); err != nil {
		return nil, false
	}

	return cards, true
}

// linePairCards walks the reply two lines at a time, treating even lines as
// fronts and odd lines as backs. Leading bullet markers and surrounding
// whitespace are stripped; a pair is kept only if both sides are non-empty.
func linePairCards(reply string, count int) ([]CardText, bool) {
	lines := strings.Split(reply, "\n")

	limit := count * 2
	if len(lines) < limit {
		limit = len(lines)
	}

	var cards []CardText
	for i := 0; i < limit; i += 2 {
		if i+1 >= len(lines) {
			break
		}
		front := stripBullet(lines[i])
		back := stripBullet(lines[i+1])
		if front != "" && back != "" {
			cards = append(cards, CardText{Front: front, Back: back})
		}
	}

	return cards, true
}

// stripBullet removes surrounding whitespace and a leading "- " or "• "
// bullet marker from a line.
func stripBullet(line string) string {
	line = strings.TrimSpace(line)
	for _, marker := range []string{"- ", "• "} {
		if strings.HasPrefix(line, marker) {
			line = strings.TrimSpace(strings.TrimPrefix(line, marker))
		}
	}
	return line
}
