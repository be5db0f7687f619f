package quiz

import (
	"math/rand"

	"refquiz/internal/bank"
)

// Memory remembers which questions previous sessions already drew, by id and
// by normalized text. It lives for the process lifetime and is reset whenever
// the remaining pool can no longer supply a full exam.
type Memory struct {
	IDs   map[int]struct{}
	Texts map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{
		IDs:   make(map[int]struct{}),
		Texts: make(map[string]struct{}),
	}
}

func (m *Memory) Reset() {
	m.IDs = make(map[int]struct{})
	m.Texts = make(map[string]struct{})
}

func (m *Memory) used(q bank.Question) bool {
	if _, ok := m.IDs[q.ID]; ok {
		return true
	}
	_, ok := m.Texts[bank.NormalizeText(q.Text)]
	return ok
}

func (m *Memory) record(q bank.Question) {
	m.IDs[q.ID] = struct{}{}
	m.Texts[bank.NormalizeText(q.Text)] = struct{}{}
}

// Draw picks n questions uniformly at random from the eligible set, biased
// away from anything the memory has seen. When fewer than n unused questions
// remain, the memory is reset and the full eligible set becomes the pool
// again (exhaustion fallback), so Draw never comes up short while CanStart
// holds. Every drawn question is recorded into the memory.
func Draw(r *rand.Rand, eligible []bank.Question, n int, mem *Memory) []bank.Question {
	pool := make([]bank.Question, 0, len(eligible))
	for _, q := range eligible {
		if !mem.used(q) {
			pool = append(pool, q)
		}
	}
	if len(pool) < n {
		mem.Reset()
		pool = append(pool[:0], eligible...)
	}
	if len(pool) < n {
		return nil
	}

	r.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	drawn := append([]bank.Question(nil), pool[:n]...)
	for _, q := range drawn {
		mem.record(q)
	}
	return drawn
}
