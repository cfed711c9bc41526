package interview

import (
	"errors"
	"testing"
)

func testScript() []Question {
	return []Question{
		{Feature: "Age", Prompt: "What is your age?"},
		{Feature: "Gender", Prompt: "What is your gender? (Male/Female)",
			Options: []string{"Male", "Female"}},
		{Feature: "Symptoms", Prompt: "List your symptoms"},
	}
}

func TestEngineFullRun(t *testing.T) {
	e := NewEngine(testScript())
	var s State
	e.StartOrResume(&s)

	prompt, err := e.CurrentPrompt(&s)
	if err != nil {
		t.Fatalf("CurrentPrompt: %v", err)
	}
	if prompt != "What is your age?" {
		t.Fatalf("unexpected first prompt %q", prompt)
	}

	out, err := e.SubmitAnswer(&s, " 34 ")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if out.Done || out.Prompt != "What is your gender? (Male/Female)" {
		t.Fatalf("unexpected outcome %+v", out)
	}

	// Typo should be corrected against the question's options.
	if _, err := e.SubmitAnswer(&s, "femal"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	out, err = e.SubmitAnswer(&s, "fever, cough")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !out.Done {
		t.Fatal("expected interview to complete after last answer")
	}
	if out.Answers["Age"] != "34" {
		t.Errorf("Age not trimmed: %q", out.Answers["Age"])
	}
	if out.Answers["Gender"] != "Female" {
		t.Errorf("Gender not corrected: %q", out.Answers["Gender"])
	}
	if out.Answers["Symptoms"] != "fever, cough" {
		t.Errorf("Symptoms altered: %q", out.Answers["Symptoms"])
	}

	// Completion clears the state for a fresh run.
	if s.Answers != nil || s.Cursor != 0 {
		t.Fatalf("state not reset after completion: %+v", s)
	}
	e.StartOrResume(&s)
	if prompt, _ = e.CurrentPrompt(&s); prompt != "What is your age?" {
		t.Errorf("fresh interview should start over, got %q", prompt)
	}
}

func TestEngineCompletesExactlyOnce(t *testing.T) {
	e := NewEngine(testScript())
	var s State
	e.StartOrResume(&s)

	done := 0
	for i := 0; i < e.Len(); i++ {
		out, err := e.SubmitAnswer(&s, "x")
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if out.Done {
			done++
		}
	}
	if done != 1 {
		t.Fatalf("expected exactly one Done outcome, got %d", done)
	}
}

func TestEngineOutOfSequence(t *testing.T) {
	e := NewEngine(testScript())
	s := State{Answers: map[string]string{}, Cursor: len(testScript())}

	if _, err := e.CurrentPrompt(&s); !errors.Is(err, ErrOutOfSequence) {
		t.Errorf("CurrentPrompt past end: got %v", err)
	}
	if _, err := e.SubmitAnswer(&s, "late"); !errors.Is(err, ErrOutOfSequence) {
		t.Errorf("SubmitAnswer past end: got %v", err)
	}
}

func TestStartOrResumeIsIdempotent(t *testing.T) {
	e := NewEngine(testScript())
	var s State
	e.StartOrResume(&s)
	if _, err := e.SubmitAnswer(&s, "40"); err != nil {
		t.Fatal(err)
	}

	e.StartOrResume(&s)
	if s.Cursor != 1 {
		t.Fatalf("StartOrResume reset an in-progress interview, cursor=%d", s.Cursor)
	}
	if s.Answers["Age"] != "40" {
		t.Fatal("StartOrResume dropped recorded answers")
	}
}

func TestDefaultScriptShape(t *testing.T) {
	script := DefaultScript()
	if len(script) != 9 {
		t.Fatalf("expected 9 questions, got %d", len(script))
	}
	last := script[len(script)-1]
	if last.Feature != "Symptoms" || last.Options != nil {
		t.Fatalf("last question must be the free-text symptom list, got %+v", last)
	}
	for _, q := range script[1 : len(script)-1] {
		if len(q.Options) == 0 {
			t.Errorf("question %s should carry a vocabulary", q.Feature)
		}
	}
}
