package diagnosis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"medconnect/internal/fuzzy"
	"medconnect/internal/platform/logger"
)

// ErrInvalidAge is returned when the recorded age answer is not an
// integer. Unlike categorical misses, there is no silent default for
// age: the interview attempt is aborted and the caller should reset.
var ErrInvalidAge = errors.New("diagnosis: age answer is not a number")

// Encoder turns a completed answer set into the fixed-length numeric
// vector the oracle expects, in roster order.
type Encoder struct {
	roster       []string
	rosterIndex  map[string]int
	encoders     map[string]map[string]float64
	symptomVocab []string
	log          *logger.Logger
}

// NewEncoder derives the symptom vocabulary from the roster by
// removing the profile feature keys; every remaining roster entry is a
// known symptom name.
func NewEncoder(a *Artifact, profileFeatures []string, log *logger.Logger) *Encoder {
	profile := make(map[string]bool, len(profileFeatures))
	for _, f := range profileFeatures {
		profile[f] = true
	}

	idx := make(map[string]int, len(a.Features))
	var symptoms []string
	for i, f := range a.Features {
		idx[f] = i
		if !profile[f] {
			symptoms = append(symptoms, f)
		}
	}

	return &Encoder{
		roster:       a.Features,
		rosterIndex:  idx,
		encoders:     a.Encoders,
		symptomVocab: symptoms,
		log:          log,
	}
}

// SymptomVocabulary returns the known symptom names, in roster order.
func (e *Encoder) SymptomVocabulary() []string {
	return e.symptomVocab
}

// Encode builds the feature vector. Every slot starts at 0, so
// features that were never answered stay at their default.
// Categorical answers that the encoder cannot map also stay at 0; that
// mirrors how the model was trained and is deliberately not an error.
func (e *Encoder) Encode(answers map[string]string) ([]float64, error) {
	values := make([]float64, len(e.roster))

	for feature, enc := range e.encoders {
		val, answered := answers[feature]
		if !answered {
			continue
		}
		slot, known := e.rosterIndex[feature]
		if !known {
			continue
		}
		code, ok := enc[val]
		if !ok {
			e.log.Debug("categorical value not in encoder, defaulting to 0",
				"feature", feature, "value", val)
			continue
		}
		values[slot] = code
	}

	if slot, ok := e.rosterIndex["Age"]; ok {
		age, err := strconv.Atoi(strings.TrimSpace(answers["Age"]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAge, answers["Age"])
		}
		values[slot] = float64(age)
	}

	for _, token := range strings.Split(answers["Symptoms"], ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		corrected := fuzzy.Correct(token, e.symptomVocab)
		if slot, ok := e.rosterIndex[corrected]; ok {
			values[slot] = 1
		}
		// Tokens that match nothing in the roster are dropped.
	}

	return values, nil
}
