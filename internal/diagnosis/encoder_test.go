package diagnosis

import (
	"errors"
	"testing"

	"medconnect/internal/interview"
	"medconnect/internal/platform/logger"
)

func testArtifact() *Artifact {
	return &Artifact{
		Features: []string{
			"Age", "Gender", "Weather",
			"fever", "cough", "stomach pain",
		},
		Classes: []string{"Flu", "Cold", "Malaria"},
		Coef: [][]float64{
			{0, 0, 0, 2, 1, 0},
			{0, 0, 0, 0, 2, 0},
			{0, 0, 0, 1, 0, 2},
		},
		Intercept: []float64{0.1, 0, 0},
		Accuracy:  0.91,
		Encoders: map[string]map[string]float64{
			"Gender":  {"Male": 1, "Female": 0},
			"Weather": {"Hot": 1, "Rainy": 3, "Cold": 0, "Humid": 2},
		},
		DoctorMap:   map[string]string{"Flu": "GP"},
		Specialties: []string{"GP", "Dermatologist"},
	}
}

func newTestEncoder() *Encoder {
	return NewEncoder(testArtifact(), interview.ProfileFeatures, logger.NewNop())
}

func TestEncodeHappyPath(t *testing.T) {
	enc := newTestEncoder()

	vec, err := enc.Encode(map[string]string{
		"Age":      "34",
		"Gender":   "Female",
		"Weather":  "Rainy",
		"Symptoms": "fver, cuogh",
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := []float64{34, 0, 3, 1, 1, 0}
	if len(vec) != len(want) {
		t.Fatalf("vector length %d, want %d", len(vec), len(want))
	}
	for i := range want {
		if vec[i] != want[i] {
			t.Errorf("slot %d = %v, want %v", i, vec[i], want[i])
		}
	}
}

func TestEncodeVectorAlwaysRosterLength(t *testing.T) {
	enc := newTestEncoder()

	// Only age answered; everything else must default to 0.
	vec, err := enc.Encode(map[string]string{"Age": "50"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(vec) != 6 {
		t.Fatalf("vector length %d, want 6", len(vec))
	}
	for i, v := range vec[1:] {
		if v != 0 {
			t.Errorf("unanswered slot %d = %v, want 0", i+1, v)
		}
	}
}

func TestEncodeInvalidAge(t *testing.T) {
	enc := newTestEncoder()

	_, err := enc.Encode(map[string]string{"Age": "thirty"})
	if !errors.Is(err, ErrInvalidAge) {
		t.Fatalf("expected ErrInvalidAge, got %v", err)
	}
}

func TestEncodeUnmappableCategoricalDefaultsToZero(t *testing.T) {
	enc := newTestEncoder()

	vec, err := enc.Encode(map[string]string{
		"Age":     "20",
		"Weather": "apocalyptic",
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if vec[2] != 0 {
		t.Errorf("unmappable weather encoded as %v, want 0", vec[2])
	}
}

func TestEncodeDropsUnknownSymptoms(t *testing.T) {
	enc := newTestEncoder()

	vec, err := enc.Encode(map[string]string{
		"Age":      "20",
		"Symptoms": "fever, purple spots, zzzzzz",
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if vec[3] != 1 {
		t.Error("known symptom not flagged")
	}
	if vec[4] != 0 || vec[5] != 0 {
		t.Errorf("unknown symptoms leaked into vector: %v", vec)
	}
}

func TestSymptomVocabularyExcludesProfileFeatures(t *testing.T) {
	enc := newTestEncoder()

	got := enc.SymptomVocabulary()
	want := []string{"fever", "cough", "stomach pain"}
	if len(got) != len(want) {
		t.Fatalf("vocabulary %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("vocabulary %v, want %v", got, want)
		}
	}
}
