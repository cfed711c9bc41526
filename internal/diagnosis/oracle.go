package diagnosis

import (
	"errors"
	"fmt"
	"math"
)

// ErrVectorShape means the caller handed the oracle a vector whose
// length disagrees with the feature roster. The encoder always emits
// vectors in roster order, so hitting this is a bug, not user input.
var ErrVectorShape = errors.New("diagnosis: feature vector does not match roster shape")

// Oracle scores a feature vector into a probability distribution over
// its class list. Implementations are pure and safe for concurrent
// use after construction.
type Oracle interface {
	Classes() []string
	PredictProba(vector []float64) ([]float64, error)
}

// LinearOracle is a multinomial logistic model: softmax over
// coef·x + intercept, one row per class.
type LinearOracle struct {
	classes   []string
	coef      [][]float64
	intercept []float64
}

func NewLinearOracle(a *Artifact) *LinearOracle {
	return &LinearOracle{
		classes:   a.Classes,
		coef:      a.Coef,
		intercept: a.Intercept,
	}
}

func (o *LinearOracle) Classes() []string {
	return o.classes
}

func (o *LinearOracle) PredictProba(vector []float64) ([]float64, error) {
	if len(o.coef) == 0 || len(vector) != len(o.coef[0]) {
		return nil, fmt.Errorf("%w: got %d features", ErrVectorShape, len(vector))
	}

	scores := make([]float64, len(o.classes))
	maxScore := math.Inf(-1)
	for c, row := range o.coef {
		s := o.intercept[c]
		for i, x := range vector {
			s += row[i] * x
		}
		scores[c] = s
		if s > maxScore {
			maxScore = s
		}
	}

	// Softmax, shifted by the max score for numeric stability.
	var sum float64
	proba := make([]float64, len(scores))
	for c, s := range scores {
		proba[c] = math.Exp(s - maxScore)
		sum += proba[c]
	}
	for c := range proba {
		proba[c] /= sum
	}
	return proba, nil
}
