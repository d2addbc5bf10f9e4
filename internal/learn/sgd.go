package learn

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrClassOutOfRange    = errors.New("class index out of range")
	ErrDimensionMismatch  = errors.New("feature index outside weight matrix")
	ErrInconsistentShapes = errors.New("weight matrix and bias have different class counts")
)

const (
	DefaultAlpha        = 1e-4
	DefaultLearningRate = 0.5
)

// SGD is a one-vs-rest logistic regression trained by stochastic gradient
// descent. Each class owns one weight row and one bias term.
type SGD struct {
	Weights      [][]float64 `json:"weights"`
	Bias         []float64   `json:"bias"`
	Alpha        float64     `json:"alpha"`
	LearningRate float64     `json:"learning_rate"`
	Updates      int64       `json:"updates"`
}

// NewSGD returns a zero-initialised learner for the given dimensions.
func NewSGD(features, classes int, alpha, learningRate float64) *SGD {
	s := &SGD{
		Weights:      make([][]float64, 0, classes),
		Bias:         make([]float64, 0, classes),
		Alpha:        alpha,
		LearningRate: learningRate,
	}
	for i := 0; i < classes; i++ {
		s.Weights = append(s.Weights, make([]float64, features))
		s.Bias = append(s.Bias, 0)
	}
	return s
}

// Classes is the number of weight rows.
func (s *SGD) Classes() int {
	return len(s.Weights)
}

// Features is the width of each weight row.
func (s *SGD) Features() int {
	if len(s.Weights) == 0 {
		return 0
	}
	return len(s.Weights[0])
}

// AddClass appends a zero weight row and returns its index.
func (s *SGD) AddClass(features int) int {
	s.Weights = append(s.Weights, make([]float64, features))
	s.Bias = append(s.Bias, 0)
	return len(s.Weights) - 1
}

// Validate checks the shape of the learned state.
func (s *SGD) Validate(features int) error {
	if len(s.Weights) != len(s.Bias) {
		return ErrInconsistentShapes
	}
	for i, row := range s.Weights {
		if len(row) != features {
			return fmt.Errorf("%w: class %d has %d weights, want %d", ErrDimensionMismatch, i, len(row), features)
		}
	}
	return nil
}

// Decision returns the raw score of every class for x.
func (s *SGD) Decision(x SparseVector) []float64 {
	scores := make([]float64, len(s.Weights))
	for k, row := range s.Weights {
		z := s.Bias[k]
		for i, idx := range x.Indices {
			z += row[idx] * x.Values[i]
		}
		scores[k] = z
	}
	return scores
}

// Predict returns the index of the highest scoring class. Ties go to the
// lower index. It returns -1 when there are no classes.
func (s *SGD) Predict(x SparseVector) int {
	best := -1
	bestScore := math.Inf(-1)
	for k, score := range s.Decision(x) {
		if best == -1 || score > bestScore {
			best = k
			bestScore = score
		}
	}
	return best
}

// PartialFit applies one gradient step of the log loss for a single example
// whose true class is class. Every class row is updated, positives towards
// +1 and the rest towards -1.
func (s *SGD) PartialFit(x SparseVector, class int) error {
	if class < 0 || class >= len(s.Weights) {
		return fmt.Errorf("%w: %d of %d", ErrClassOutOfRange, class, len(s.Weights))
	}
	features := s.Features()
	for _, idx := range x.Indices {
		if idx < 0 || idx >= features {
			return fmt.Errorf("%w: %d", ErrDimensionMismatch, idx)
		}
	}

	eta := s.LearningRate
	decay := 1 - eta*s.Alpha

	for k, row := range s.Weights {
		y := -1.0
		if k == class {
			y = 1.0
		}

		z := s.Bias[k]
		for i, idx := range x.Indices {
			z += row[idx] * x.Values[i]
		}
		grad := -y / (1 + math.Exp(y*z))

		if decay != 1 {
			for j := range row {
				row[j] *= decay
			}
		}
		for i, idx := range x.Indices {
			row[idx] -= eta * grad * x.Values[i]
		}
		s.Bias[k] -= eta * grad
	}

	s.Updates++
	return nil
}

// Clone returns a deep copy.
func (s *SGD) Clone() *SGD {
	out := &SGD{
		Weights:      make([][]float64, len(s.Weights)),
		Bias:         append([]float64(nil), s.Bias...),
		Alpha:        s.Alpha,
		LearningRate: s.LearningRate,
		Updates:      s.Updates,
	}
	for k, row := range s.Weights {
		out.Weights[k] = append([]float64(nil), row...)
	}
	return out
}
