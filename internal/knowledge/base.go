package knowledge

import (
	"math/rand"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"
)

// fuzzyCutoff rejects fuzzy matches whose similarity ratio falls below it.
const fuzzyCutoff = 0.6

// Entry maps a lowercased trigger phrase to its candidate responses.
type Entry struct {
	Trigger   string
	Responses []string
}

// Base is a static trigger-to-response lookup table used to short-circuit
// remote model calls. Entries keep insertion order: the first matching
// trigger wins. Read-only after construction.
type Base struct {
	entries []Entry
	rng     *rand.Rand
}

// New builds a Base from the supplied entries. rng picks among a matched
// entry's responses; pass a seeded source to make matching deterministic,
// or nil for time-seeded randomness.
func New(entries []Entry, rng *rand.Rand) *Base {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Base{
		entries: append([]Entry(nil), entries...),
		rng:     rng,
	}
}

// Match checks the knowledge base for an exact-substring or fuzzy match
// against the input. A false return is not an error: it tells the caller
// to escalate to the remote model.
func (b *Base) Match(text string) (string, bool) {
	input := strings.ToLower(text)

	for _, entry := range b.entries {
		if strings.Contains(input, entry.Trigger) {
			return b.pick(entry.Responses), true
		}
	}

	if entry, ok := b.closest(input); ok {
		return b.pick(entry.Responses), true
	}

	return "", false
}

// closest finds the trigger with the highest similarity ratio to the input,
// rejecting anything below fuzzyCutoff. Ties keep the earlier entry.
func (b *Base) closest(input string) (Entry, bool) {
	chars := strings.Split(input, "")

	var best Entry
	bestRatio := 0.0
	found := false
	for _, entry := range b.entries {
		matcher := difflib.NewMatcher(strings.Split(entry.Trigger, ""), chars)
		ratio := matcher.Ratio()
		if ratio >= fuzzyCutoff && ratio > bestRatio {
			best = entry
			bestRatio = ratio
			found = true
		}
	}
	return best, found
}

func (b *Base) pick(responses []string) string {
	if len(responses) == 1 {
		return responses[0]
	}
	return responses[b.rng.Intn(len(responses))]
}
