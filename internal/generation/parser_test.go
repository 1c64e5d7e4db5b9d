package generation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCardsJSONArray(t *testing.T) {
	t.Parallel()

	reply := `[
  {"front": "Red Planet", "back": "Nickname for Mars"},
  {"front": "Olympus Mons", "back": "Tallest volcano"}
]`

	cards := ParseCards(reply, 5)

	require.Len(t, cards, 2)
	assert.Equal(t, CardText{Front: "Red Planet", Back: "Nickname for Mars"}, cards[0])
	assert.Equal(t, CardText{Front: "Olympus Mons", Back: "Tallest volcano"}, cards[1])
}

func TestParseCardsJSONEmbeddedInProse(t *testing.T) {
	t.Parallel()

	reply := "Here are your flash cards:\n```json\n" +
		`[{"front": "A", "back": "B"}]` +
		"\n```\nEnjoy studying!"

	cards := ParseCards(reply, 5)

	require.Len(t, cards, 1)
	assert.Equal(t, "A", cards[0].Front)
	assert.Equal(t, "B", cards[0].Back)
}

func TestParseCardsTruncatesToCount(t *testing.T) {
	t.Parallel()

	reply := "["
	for i := 0; i < 10; i++ {
		if i > 0 {
			reply += ","
		}
		reply += fmt.Sprintf(`{"front": "f%d", "back": "b%d"}`, i, i)
	}
	reply += "]"

	cards := ParseCards(reply, 3)

	require.Len(t, cards, 3)
	assert.Equal(t, "f0", cards[0].Front)
	assert.Equal(t, "f2", cards[2].Front)
}

func TestParseCardsMissingFieldsDefaultToEmpty(t *testing.T) {
	t.Parallel()

	cards := ParseCards(`[{"front": "only front"}, {"back": "only back"}]`, 5)

	require.Len(t, cards, 2)
	assert.Equal(t, CardText{Front: "only front", Back: ""}, cards[0])
	assert.Equal(t, CardText{Front: "", Back: "only back"}, cards[1])
}

func TestParseCardsLineFallback(t *testing.T) {
	t.Parallel()

	reply := "- Red Planet\n" +
		"- Nickname for Mars\n" +
		"• Olympus Mons\n" +
		"• Tallest volcano in the solar system\n" +
		"Phobos\n" +
		"One of the two moons"

	cards := ParseCards(reply, 3)

	require.Len(t, cards, 3)
	assert.Equal(t, CardText{Front: "Red Planet", Back: "Nickname for Mars"}, cards[0])
	assert.Equal(t, CardText{Front: "Olympus Mons", Back: "Tallest volcano in the solar system"}, cards[1])
	assert.Equal(t, CardText{Front: "Phobos", Back: "One of the two moons"}, cards[2])
}

func TestParseCardsLineFallbackSkipsIncompletePairs(t *testing.T) {
	t.Parallel()

	// Three usable lines: only one complete pair, the trailing front has no
	// back within the walked window.
	cards := ParseCards("Front one\nBack one\n\nBack two", 5)

	require.Len(t, cards, 1)
	assert.Equal(t, CardText{Front: "Front one", Back: "Back one"}, cards[0])
}

func TestParseCardsFewerPairsThanRequested(t *testing.T) {
	t.Parallel()

	cards := ParseCards("Front\nBack", 5)

	require.Len(t, cards, 1)
}

func TestParseCardsNonArrayJSONFallsBack(t *testing.T) {
	t.Parallel()

	// Valid JSON object, not an array: no card structure, one line, so the
	// line heuristic yields nothing. Degrades to empty, not an error.
	cards := ParseCards(`{"message": "no cards here"}`, 5)

	assert.Empty(t, cards)
}

func TestParseCardsMalformedJSONFallsBackToLines(t *testing.T) {
	t.Parallel()

	reply := "[{broken json\nFront line\nBack line"

	cards := ParseCards(reply, 5)

	// The malformed array is skipped; the line heuristic pairs what it can.
	require.Len(t, cards, 1)
	assert.Equal(t, CardText{Front: "[{broken json", Back: "Front line"}, cards[0])
}

func TestParseCardsEmptyReply(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ParseCards("", 5))
	assert.Empty(t, ParseCards("   \n  ", 5))
}
