package quiz

import "refquiz/internal/bank"

// OptionView and QuestionView are what the presentation layer sees while an
// exam is running: the correctness flags and answer key stay server-side
// until the review.
type OptionView struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

type QuestionView struct {
	ID       int               `json:"id"`
	Category bank.Category     `json:"category"`
	Text     string            `json:"text"`
	Type     bank.QuestionType `json:"type"`
	Options  []OptionView      `json:"options,omitempty"`
}

func newQuestionView(q bank.Question) *QuestionView {
	v := &QuestionView{
		ID:       q.ID,
		Category: q.Category,
		Text:     q.Text,
		Type:     q.Type,
	}
	for _, opt := range q.Options {
		v.Options = append(v.Options, OptionView{Letter: opt.Letter, Text: opt.Text})
	}
	return v
}

// State is the full derived view the presentation layer polls. It is
// recomputed from the authoritative state on every read, so it can never go
// stale.
type State struct {
	Mode            Mode             `json:"mode"`
	TotalQuestions  int              `json:"total_questions"`
	BankSize        int              `json:"bank_size"`
	Categories      []CategoryOption `json:"categories"`
	CanStart        bool             `json:"can_start"`
	SessionID       string           `json:"session_id,omitempty"`
	CurrentIndex    int              `json:"current_index"`
	CurrentQuestion *QuestionView    `json:"current_question,omitempty"`
	CurrentAnswered bool             `json:"current_answered"`
	AnsweredCount   int              `json:"answered_count"`
	Score           int              `json:"score"`
	Transition      Transition       `json:"transition"`
}

// Result is the final review payload.
type Result struct {
	SessionID      string      `json:"session_id"`
	TotalQuestions int         `json:"total_questions"`
	AnsweredCount  int         `json:"answered_count"`
	Score          int         `json:"score"`
	WrongItems     []WrongItem `json:"wrong_items"`
}

// State returns the current derived view.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := State{
		Mode:           m.mode,
		TotalQuestions: m.cfg.TotalQuestions,
		BankSize:       m.bank.Size(),
		Categories:     append([]CategoryOption(nil), m.categories...),
		CanStart:       m.canStartLocked(),
		AnsweredCount:  AnsweredCount(m.session),
		Score:          Score(m.session),
		Transition:     m.transition,
	}
	if m.session != nil {
		st.SessionID = m.session.ID
		st.CurrentIndex = m.session.Cursor
		if q, ok := m.currentQuestionLocked(); ok {
			st.CurrentQuestion = newQuestionView(q)
			st.CurrentAnswered = m.session.Answers[q.ID].IsAnswered()
		}
	}
	return st
}

// Results derives the final score and review items. It only reports ok once
// the exam has been finished; calling it twice without intervening answers
// yields identical results.
func (m *Manager) Results() (Result, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mode != ModeResult || m.session == nil {
		return Result{}, false
	}
	return Result{
		SessionID:      m.session.ID,
		TotalQuestions: len(m.session.Questions),
		AnsweredCount:  AnsweredCount(m.session),
		Score:          Score(m.session),
		WrongItems:     WrongItems(m.session),
	}, true
}
