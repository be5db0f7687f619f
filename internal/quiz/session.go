package quiz

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"refquiz/internal/bank"
)

// Mode is the exam lifecycle state.
type Mode string

const (
	ModeSetup  Mode = "setup"
	ModeExam   Mode = "exam"
	ModeResult Mode = "result"
)

type Direction string

const (
	DirectionNone  Direction = ""
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// scheduler abstracts delayed callbacks so tests can pump transitions
// deterministically. The returned func cancels the callback if it has not
// fired yet.
type scheduler interface {
	After(d time.Duration, f func()) (cancel func())
}

type timerScheduler struct{}

func (timerScheduler) After(d time.Duration, f func()) func() {
	t := time.AfterFunc(d, f)
	return func() { t.Stop() }
}

// Session is one drawn exam: a fixed sequence of questions, the user's
// answers keyed by question id (absence or the zero Answer means
// unanswered), and the current-question cursor.
type Session struct {
	ID        string              `json:"id"`
	Questions []bank.Question     `json:"questions"`
	Answers   map[int]bank.Answer `json:"answers"`
	Cursor    int                 `json:"cursor"`
}

// Transition is the two-phase navigation animation state. While Animating is
// set, no new cursor move is accepted.
type Transition struct {
	Animating bool      `json:"animating"`
	Out       Direction `json:"out"`
	Enter     Direction `json:"enter"`
}

type Config struct {
	TotalQuestions int
	SettleDelay    time.Duration
}

const (
	DefaultTotalQuestions = 20
	DefaultSettleDelay    = 220 * time.Millisecond
)

// Manager owns the exam lifecycle: category selection, the active session,
// the cross-session used-question memory and the transition state. All state
// lives behind one mutex; scheduler callbacks re-acquire it, so a restart and
// a pending transition cannot interleave.
type Manager struct {
	mu    sync.Mutex
	cfg   Config
	bank  *bank.Bank
	rng   *rand.Rand
	sched scheduler

	mode       Mode
	categories []CategoryOption
	session    *Session
	memory     *Memory
	transition Transition
	cancels    []func()
}

func NewManager(b *bank.Bank, cfg Config) *Manager {
	if cfg.TotalQuestions <= 0 {
		cfg.TotalQuestions = DefaultTotalQuestions
	}
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = DefaultSettleDelay
	}
	return &Manager{
		cfg:        cfg,
		bank:       b,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		sched:      timerScheduler{},
		mode:       ModeSetup,
		categories: defaultCategoryOptions(),
		memory:     NewMemory(),
	}
}

// ToggleCategory flips the enabled flag of one category. Unknown keys are
// ignored.
func (m *Manager) ToggleCategory(key bank.Category) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.categories {
		if m.categories[i].Key == key {
			m.categories[i].Enabled = !m.categories[i].Enabled
			return true
		}
	}
	return false
}

// CanStart reports whether the current category selection yields enough
// deduplicated questions for a full exam.
func (m *Manager) CanStart() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.canStartLocked()
}

func (m *Manager) canStartLocked() bool {
	return CanStart(m.bank.Questions(), m.categories, m.cfg.TotalQuestions)
}

// StartExam draws a fresh session and enters exam mode. It is a no-op unless
// the machine is in setup and eligibility permits.
func (m *Manager) StartExam() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mode != ModeSetup || !m.canStartLocked() {
		return false
	}

	eligible := Eligible(m.bank.Questions(), m.categories)
	drawn := Draw(m.rng, eligible, m.cfg.TotalQuestions, m.memory)
	if len(drawn) != m.cfg.TotalQuestions {
		return false
	}

	answers := make(map[int]bank.Answer, len(drawn))
	for _, q := range drawn {
		answers[q.ID] = bank.Answer{}
	}
	m.session = &Session{
		ID:        uuid.NewString(),
		Questions: drawn,
		Answers:   answers,
	}
	m.mode = ModeExam
	return true
}

// AnswerCurrent records a true/false answer for the current question and,
// unless the cursor is on the last question, advances it with a left
// transition.
func (m *Manager) AnswerCurrent(value bool) bool {
	return m.record(bank.BoolAnswer(value))
}

// SelectOption is the multiple-choice counterpart of AnswerCurrent.
func (m *Manager) SelectOption(letter string) bool {
	return m.record(bank.LetterAnswer(letter))
}

func (m *Manager) record(answer bank.Answer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mode != ModeExam || m.session == nil {
		return false
	}
	q, ok := m.currentQuestionLocked()
	if !ok {
		return false
	}
	m.session.Answers[q.ID] = answer
	if m.session.Cursor < len(m.session.Questions)-1 {
		m.goToIndexLocked(m.session.Cursor+1, DirectionLeft)
	}
	return true
}

// PreviousQuestion moves the cursor back one question. A no-op at the first
// question or while a transition is in progress.
func (m *Manager) PreviousQuestion() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mode != ModeExam || m.session == nil || m.session.Cursor == 0 {
		return false
	}
	return m.goToIndexLocked(m.session.Cursor-1, DirectionRight)
}

// NextQuestion moves the cursor forward one question. A no-op at the last
// question or while a transition is in progress.
func (m *Manager) NextQuestion() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mode != ModeExam || m.session == nil || m.session.Cursor >= len(m.session.Questions)-1 {
		return false
	}
	return m.goToIndexLocked(m.session.Cursor+1, DirectionLeft)
}

// FinishExam moves to result mode. Partial exams are allowed; unanswered
// questions simply never score.
func (m *Manager) FinishExam() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mode != ModeExam {
		return false
	}
	m.mode = ModeResult
	return true
}

// RestartExam discards the session and returns to setup. Any pending
// transition callback is cancelled so a stale timer cannot move the cursor
// of a future session.
func (m *Manager) RestartExam() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mode != ModeResult {
		return false
	}
	for _, cancel := range m.cancels {
		cancel()
	}
	m.cancels = nil
	m.session = nil
	m.transition = Transition{}
	m.mode = ModeSetup
	return true
}

// goToIndexLocked starts the two-phase transition toward index. A move is
// dropped, not queued, while a previous transition is still settling.
func (m *Manager) goToIndexLocked(index int, dir Direction) bool {
	if m.transition.Animating || m.session == nil || index == m.session.Cursor {
		return false
	}
	if index < 0 || index >= len(m.session.Questions) {
		return false
	}

	m.transition.Animating = true
	m.transition.Out = dir
	m.cancels = m.cancels[:0]

	sess := m.session
	cancel := m.sched.After(m.cfg.SettleDelay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.session != sess {
			return
		}
		sess.Cursor = index
		m.transition.Animating = false
		m.transition.Out = DirectionNone
		m.transition.Enter = dir

		clear := m.sched.After(m.cfg.SettleDelay, func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if m.session != sess {
				return
			}
			m.transition.Enter = DirectionNone
		})
		m.cancels = append(m.cancels, clear)
	})
	m.cancels = append(m.cancels, cancel)
	return true
}

func (m *Manager) currentQuestionLocked() (bank.Question, bool) {
	if m.session == nil || m.session.Cursor < 0 || m.session.Cursor >= len(m.session.Questions) {
		return bank.Question{}, false
	}
	return m.session.Questions[m.session.Cursor], true
}
