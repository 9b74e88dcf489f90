package generator

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
)

// Template is an offline generator assembling sentences from fixed word
// lists. It always produces English text regardless of the requested
// language - meant for development and tests, selected explicitly.
type Template struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

var (
	subjects = []string{
		"The old fisherman", "My younger sister", "A curious student", "The tired teacher",
		"Our friendly neighbor", "The little dog", "A famous writer", "The busy waiter",
		"My grandmother", "The new engineer",
	}
	verbs = []string{
		"reads", "buys", "finds", "cooks", "paints", "repairs", "forgets", "carries",
		"borrows", "watches",
	}
	objects = []string{
		"a heavy book", "fresh bread", "an old bicycle", "a warm dinner", "the morning newspaper",
		"a wooden chair", "a cup of coffee", "the garden fence", "an umbrella", "a small radio",
	}
	tails = []string{
		"every morning", "after work", "near the station", "in the quiet park", "on rainy days",
		"before breakfast", "at the weekend", "without any hurry",
	}
)

// NewTemplate creates a template generator. A non-zero seed makes the output
// deterministic for tests.
func NewTemplate(seed int64) *Template {
	if seed == 0 {
		seed = rand.Int63()
	}
	return &Template{rnd: rand.New(rand.NewSource(seed))} //nolint:gosec // not used for crypto
}

// Generate assembles a random subject-verb-object sentence
func (g *Template) Generate(_ context.Context, _ string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	sentence := fmt.Sprintf("%s %s %s %s.",
		subjects[g.rnd.Intn(len(subjects))],
		verbs[g.rnd.Intn(len(verbs))],
		objects[g.rnd.Intn(len(objects))],
		tails[g.rnd.Intn(len(tails))],
	)
	return sentence, nil
}

// Name returns the backend name
func (g *Template) Name() string { return "template" }
