package diagnosis

import (
	"encoding/json"
	"fmt"
	"os"
)

// Artifact is the trained-model bundle produced offline and loaded at
// process start. It carries everything inference needs: the feature
// roster that fixes vector layout, the class list, the linear model
// weights, per-feature categorical encoders, the disease to referral
// doctor mapping, and the accuracy measured at training time.
type Artifact struct {
	Features    []string                      `json:"features"`
	Classes     []string                      `json:"classes"`
	Coef        [][]float64                   `json:"coef"`
	Intercept   []float64                     `json:"intercept"`
	Accuracy    float64                       `json:"accuracy"`
	Encoders    map[string]map[string]float64 `json:"encoders"`
	DoctorMap   map[string]string             `json:"doctor_map"`
	Specialties []string                      `json:"specialties"`
}

func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Validate checks the bundle's internal shape so a mismatched artifact
// fails at boot instead of on the first prediction.
func (a *Artifact) Validate() error {
	if len(a.Features) == 0 {
		return fmt.Errorf("model artifact: empty feature roster")
	}
	if len(a.Classes) == 0 {
		return fmt.Errorf("model artifact: empty class list")
	}
	if len(a.Coef) != len(a.Classes) {
		return fmt.Errorf("model artifact: %d coefficient rows for %d classes", len(a.Coef), len(a.Classes))
	}
	for i, row := range a.Coef {
		if len(row) != len(a.Features) {
			return fmt.Errorf("model artifact: coefficient row %d has %d columns, roster has %d", i, len(row), len(a.Features))
		}
	}
	if len(a.Intercept) != len(a.Classes) {
		return fmt.Errorf("model artifact: %d intercepts for %d classes", len(a.Intercept), len(a.Classes))
	}
	return nil
}
