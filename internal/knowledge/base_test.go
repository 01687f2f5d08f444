package knowledge

import (
	"math/rand"
	"testing"
)

func testEntries() []Entry {
	return []Entry{
		{Trigger: "hi", Responses: []string{"greeting-a", "greeting-b"}},
		{Trigger: "hello", Responses: []string{"hello-reply"}},
		{Trigger: "contact", Responses: []string{"contact-reply"}},
	}
}

func TestMatchSubstring(t *testing.T) {
	base := New(testEntries(), rand.New(rand.NewSource(1)))

	reply, ok := base.Match("Hi, can you help me?")
	if !ok {
		t.Fatal("expected a knowledge base hit")
	}
	if reply != "greeting-a" && reply != "greeting-b" {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestMatchFirstTriggerWins(t *testing.T) {
	base := New(testEntries(), rand.New(rand.NewSource(1)))

	// Contains both "hi" and "hello"; insertion order decides.
	reply, ok := base.Match("hi hello")
	if !ok {
		t.Fatal("expected a knowledge base hit")
	}
	if reply != "greeting-a" && reply != "greeting-b" {
		t.Fatalf("expected a greeting response, got %q", reply)
	}
}

func TestMatchFuzzy(t *testing.T) {
	base := New(testEntries(), rand.New(rand.NewSource(1)))

	// "helo" is not a substring match but sits well above the 0.6 cutoff
	// against "hello".
	reply, ok := base.Match("helo")
	if !ok {
		t.Fatal("expected a fuzzy knowledge base hit")
	}
	if reply != "hello-reply" {
		t.Fatalf("expected hello-reply, got %q", reply)
	}
}

func TestMatchMiss(t *testing.T) {
	base := New(testEntries(), rand.New(rand.NewSource(1)))

	reply, ok := base.Match("tell me about your favorite database migration")
	if ok {
		t.Fatalf("expected a miss, got %q", reply)
	}
	if reply != "" {
		t.Fatalf("expected empty reply on miss, got %q", reply)
	}
}

func TestMatchDeterministicUnderSeed(t *testing.T) {
	first := New(testEntries(), rand.New(rand.NewSource(42)))
	second := New(testEntries(), rand.New(rand.NewSource(42)))

	for i := 0; i < 10; i++ {
		a, okA := first.Match("hi there")
		b, okB := second.Match("hi there")
		if !okA || !okB {
			t.Fatal("expected hits from both bases")
		}
		if a != b {
			t.Fatalf("seeded bases diverged at round %d: %q vs %q", i, a, b)
		}
	}
}

func TestSeedGreetingScenario(t *testing.T) {
	base := New(Seed(), rand.New(rand.NewSource(1)))

	reply, ok := base.Match("hi")
	if !ok {
		t.Fatal("expected the seeded base to greet")
	}

	greetings := Seed()[0].Responses
	if reply != greetings[0] && reply != greetings[1] {
		t.Fatalf("reply %q is not one of the configured greetings", reply)
	}
}
