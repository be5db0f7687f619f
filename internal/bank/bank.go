package bank

import (
	"context"
	"log"
	"sync"
)

// Bank owns the loaded question set. The whole set is replaced atomically on
// load; questions are immutable afterwards.
type Bank struct {
	mu        sync.RWMutex
	questions []Question
}

func New() *Bank {
	return &Bank{}
}

// Replace swaps in a freshly normalized question set.
func (b *Bank) Replace(questions []Question) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.questions = append([]Question(nil), questions...)
}

// Questions returns a copy of the current set.
func (b *Bank) Questions() []Question {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Question(nil), b.questions...)
}

func (b *Bank) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.questions)
}

// Load fetches the raw exam document from src, normalizes it and replaces the
// bank contents. Fetch or decode failures are absorbed: the bank ends up
// empty, the error is logged, and the caller sees a degraded "cannot start"
// state instead of a fatal error.
func Load(ctx context.Context, src Source, b *Bank) {
	raws, err := src.Fetch(ctx)
	if err != nil {
		log.Printf("bank load failed, starting with empty bank: %v", err)
		b.Replace(nil)
		return
	}
	questions := NormalizeAll(raws)
	b.Replace(questions)
	log.Printf("bank loaded: %d questions (%d raw records)", len(questions), len(raws))
}
