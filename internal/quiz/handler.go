package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"refquiz/internal/app/apiresp"
	"refquiz/internal/bank"
)

// sessionManager is what the handler needs from the Manager.
type sessionManager interface {
	State() State
	Results() (Result, bool)
	ToggleCategory(key bank.Category) bool
	StartExam() bool
	AnswerCurrent(value bool) bool
	SelectOption(letter string) bool
	PreviousQuestion() bool
	NextQuestion() bool
	FinishExam() bool
	RestartExam() bool
}

// metrics is the optional observability hook; a nil recorder disables it.
type metrics interface {
	ExamStarted()
	ExamFinished()
}

type Handler struct {
	svc sessionManager
	rec metrics
}

type answerRequest struct {
	Value *bool `json:"value"`
}

type selectOptionRequest struct {
	Letter string `json:"letter"`
}

func NewHandler(svc sessionManager, rec metrics) *Handler {
	return &Handler{svc: svc, rec: rec}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/state", h.GetState)
	r.Post("/categories/{key}/toggle", h.ToggleCategory)
	r.Post("/exam/start", h.StartExam)
	r.Post("/exam/answer", h.Answer)
	r.Post("/exam/select", h.SelectOption)
	r.Post("/exam/previous", h.Previous)
	r.Post("/exam/next", h.Next)
	r.Post("/exam/finish", h.Finish)
	r.Post("/exam/restart", h.Restart)
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	apiresp.OK(w, r, http.StatusOK, h.svc.State())
}

func (h *Handler) ToggleCategory(w http.ResponseWriter, r *http.Request) {
	key := bank.Category(chi.URLParam(r, "key"))
	if !h.svc.ToggleCategory(key) {
		apiresp.Fail(w, r, http.StatusNotFound, "unknown category")
		return
	}
	apiresp.OK(w, r, http.StatusOK, h.svc.State())
}

func (h *Handler) StartExam(w http.ResponseWriter, r *http.Request) {
	if !h.svc.StartExam() {
		apiresp.Fail(w, r, http.StatusConflict, "cannot start exam")
		return
	}
	if h.rec != nil {
		h.rec.ExamStarted()
	}
	apiresp.OK(w, r, http.StatusOK, h.svc.State())
}

func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Value == nil {
		apiresp.Fail(w, r, http.StatusBadRequest, "value is required")
		return
	}
	if !h.svc.AnswerCurrent(*req.Value) {
		apiresp.Fail(w, r, http.StatusConflict, "no current question")
		return
	}
	apiresp.OK(w, r, http.StatusOK, h.svc.State())
}

func (h *Handler) SelectOption(w http.ResponseWriter, r *http.Request) {
	var req selectOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Letter == "" {
		apiresp.Fail(w, r, http.StatusBadRequest, "letter is required")
		return
	}
	if !h.svc.SelectOption(req.Letter) {
		apiresp.Fail(w, r, http.StatusConflict, "no current question")
		return
	}
	apiresp.OK(w, r, http.StatusOK, h.svc.State())
}

// Previous and Next always answer with the fresh state. Boundary moves and
// moves during a transition are silent no-ops per the navigation contract.
func (h *Handler) Previous(w http.ResponseWriter, r *http.Request) {
	h.svc.PreviousQuestion()
	apiresp.OK(w, r, http.StatusOK, h.svc.State())
}

func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	h.svc.NextQuestion()
	apiresp.OK(w, r, http.StatusOK, h.svc.State())
}

// Finish is idempotent: finishing an already finished exam returns the same
// result payload.
func (h *Handler) Finish(w http.ResponseWriter, r *http.Request) {
	if h.svc.FinishExam() && h.rec != nil {
		h.rec.ExamFinished()
	}
	result, ok := h.svc.Results()
	if !ok {
		apiresp.Fail(w, r, http.StatusConflict, "no exam in progress")
		return
	}
	apiresp.OK(w, r, http.StatusOK, result)
}

func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	if !h.svc.RestartExam() {
		apiresp.Fail(w, r, http.StatusConflict, "nothing to restart")
		return
	}
	apiresp.OK(w, r, http.StatusOK, h.svc.State())
}
