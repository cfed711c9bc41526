package interview

import (
	"errors"
	"strings"

	"medconnect/internal/fuzzy"
)

// ErrOutOfSequence is returned when a prompt is requested or an answer
// submitted for an interview whose cursor is already past the script.
var ErrOutOfSequence = errors.New("interview: no question at current position")

// State is the per-conversation interview record. It is a plain value
// owned by the caller's session store; the engine only mutates it.
type State struct {
	Answers map[string]string `json:"answers"`
	Cursor  int               `json:"cursor"`
}

// Outcome is the result of one submitted answer: either the prompt of
// the next question, or the completed answer set.
type Outcome struct {
	Done    bool
	Prompt  string
	Answers map[string]string
}

// Engine drives a one-question-at-a-time interview over a fixed
// script. It holds no per-conversation state of its own and is safe to
// share across sessions.
type Engine struct {
	script []Question
}

func NewEngine(script []Question) *Engine {
	return &Engine{script: script}
}

func (e *Engine) Len() int {
	return len(e.script)
}

// StartOrResume initializes the state on first contact and leaves an
// in-progress interview untouched.
func (e *Engine) StartOrResume(s *State) {
	if s.Answers == nil {
		s.Answers = make(map[string]string)
		s.Cursor = 0
	}
}

// CurrentPrompt returns the prompt of the question at the cursor.
func (e *Engine) CurrentPrompt(s *State) (string, error) {
	if s.Cursor < 0 || s.Cursor >= len(e.script) {
		return "", ErrOutOfSequence
	}
	return e.script[s.Cursor].Prompt, nil
}

// SubmitAnswer records one answer and advances the interview. Answers
// to questions with a fixed option list are fuzzy-corrected against
// it; free-entry answers are stored trimmed but otherwise verbatim
// (bad ages are caught later, at encoding time). When the last
// question is answered the state is cleared and the accumulated
// answers are handed back in the outcome.
func (e *Engine) SubmitAnswer(s *State, raw string) (Outcome, error) {
	if s.Cursor < 0 || s.Cursor >= len(e.script) {
		return Outcome{}, ErrOutOfSequence
	}
	e.StartOrResume(s)

	q := e.script[s.Cursor]
	answer := strings.TrimSpace(raw)
	if len(q.Options) > 0 {
		answer = fuzzy.Correct(answer, q.Options)
	}
	s.Answers[q.Feature] = answer
	s.Cursor++

	if s.Cursor == len(e.script) {
		answers := s.Answers
		s.Reset()
		return Outcome{Done: true, Answers: answers}, nil
	}
	return Outcome{Prompt: e.script[s.Cursor].Prompt}, nil
}

// Reset clears the state so the next StartOrResume begins a fresh
// interview.
func (s *State) Reset() {
	s.Answers = nil
	s.Cursor = 0
}
