package diagnosis

import (
	"fmt"

	"medconnect/internal/interview"
	"medconnect/internal/platform/logger"
)

// StepResult is what one interview step hands back to the web layer:
// either the next question to ask, or the finished prediction.
type StepResult struct {
	Question   string
	Prediction *Prediction
}

// Service is the single entry point the request layer talks to. It
// drives the interview engine one answer at a time and, when the last
// question is answered, encodes the answers and queries the model.
type Service struct {
	engine    *interview.Engine
	encoder   *Encoder
	predictor *Predictor
	log       *logger.Logger
}

func NewService(engine *interview.Engine, encoder *Encoder, predictor *Predictor, log *logger.Logger) *Service {
	return &Service{
		engine:    engine,
		encoder:   encoder,
		predictor: predictor,
		log:       log.With("service", "diagnosis"),
	}
}

// Begin starts the interview if needed and returns the current
// question.
func (s *Service) Begin(state *interview.State) (string, error) {
	s.engine.StartOrResume(state)
	return s.engine.CurrentPrompt(state)
}

// Step records one answer. While questions remain it returns the next
// prompt. On the final answer it encodes the collected answers into a
// feature vector, scores it, and returns the ranked prediction. A
// non-numeric age surfaces as ErrInvalidAge with the interview already
// reset, so the caller can tell the user to start over.
func (s *Service) Step(state *interview.State, answer string) (StepResult, error) {
	s.engine.StartOrResume(state)

	out, err := s.engine.SubmitAnswer(state, answer)
	if err != nil {
		return StepResult{}, err
	}
	if !out.Done {
		return StepResult{Question: out.Prompt}, nil
	}

	vector, err := s.encoder.Encode(out.Answers)
	if err != nil {
		// The engine cleared the state on completion, so the next
		// request starts a fresh interview.
		return StepResult{}, err
	}

	prediction, err := s.predictor.Predict(vector)
	if err != nil {
		return StepResult{}, fmt.Errorf("scoring failed: %w", err)
	}

	s.log.Info("prediction produced",
		"top_disease", prediction.Results[0].Disease,
		"candidates", len(prediction.Results))
	return StepResult{Prediction: &prediction}, nil
}
