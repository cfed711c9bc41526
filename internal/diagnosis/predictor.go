package diagnosis

import (
	"math"
	"sort"
)

// FallbackDoctor is the referral used for diseases missing from the
// doctor map.
const FallbackDoctor = "General Physician"

// topK is how many ranked diseases a prediction carries.
const topK = 3

// Result is one ranked diagnosis: disease, probability as a percentage
// rounded to two decimals, and the doctor to refer to.
type Result struct {
	Disease     string  `json:"disease"`
	Probability float64 `json:"probability"`
	Doctor      string  `json:"doctor"`
}

// Prediction is the ranked top-k result list plus the model's overall
// accuracy (a percentage, measured at training time).
type Prediction struct {
	Results  []Result `json:"results"`
	Accuracy float64  `json:"accuracy"`
}

// Predictor reduces oracle output to a ranked, presentable result
// list.
type Predictor struct {
	oracle    Oracle
	doctorMap map[string]string
	accuracy  float64
}

func NewPredictor(oracle Oracle, a *Artifact) *Predictor {
	return &Predictor{
		oracle:    oracle,
		doctorMap: a.DoctorMap,
		accuracy:  a.Accuracy,
	}
}

// Predict scores the vector and returns the top results sorted by
// descending probability. Equal probabilities keep the oracle's class
// order (stable sort).
func (p *Predictor) Predict(vector []float64) (Prediction, error) {
	proba, err := p.oracle.PredictProba(vector)
	if err != nil {
		return Prediction{}, err
	}
	classes := p.oracle.Classes()

	order := make([]int, len(classes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return proba[order[a]] > proba[order[b]]
	})

	n := topK
	if len(order) < n {
		n = len(order)
	}
	results := make([]Result, 0, n)
	for _, c := range order[:n] {
		doctor, ok := p.doctorMap[classes[c]]
		if !ok {
			doctor = FallbackDoctor
		}
		results = append(results, Result{
			Disease:     classes[c],
			Probability: round2(proba[c] * 100),
			Doctor:      doctor,
		})
	}

	return Prediction{Results: results, Accuracy: round2(p.accuracy * 100)}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
