package classifier

import (
	"errors"
	"fmt"

	"money-tracker/internal/learn"
	"money-tracker/internal/taxonomy"
)

var (
	ErrIncompleteModel = errors.New("model is missing its transform or classifier")
	ErrLabelMismatch   = errors.New("classifier classes do not match known labels")
	ErrDuplicateLabel  = errors.New("duplicate label in model")
)

// Model is the feature transform, the classifier and the known labels held
// as one unit. Classifier row i scores Labels[i].
//
// A Model reachable from a LabelClassifier is never mutated; updates work on
// a Clone.
type Model struct {
	Transform  *learn.Vectorizer `json:"transform"`
	Classifier *learn.SGD        `json:"classifier"`
	Labels     []string          `json:"labels"`
}

// NewModel assembles a model and checks that its parts agree.
func NewModel(transform *learn.Vectorizer, clf *learn.SGD, labels []string) (*Model, error) {
	m := &Model{
		Transform:  transform,
		Classifier: clf,
		Labels:     append([]string(nil), labels...),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate enforces the invariants between the three parts.
func (m *Model) Validate() error {
	if m == nil || m.Transform == nil || m.Classifier == nil {
		return ErrIncompleteModel
	}
	if m.Classifier.Classes() != len(m.Labels) {
		return fmt.Errorf("%w: %d classes, %d labels", ErrLabelMismatch, m.Classifier.Classes(), len(m.Labels))
	}
	if err := m.Classifier.Validate(m.Transform.Size()); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(m.Labels))
	for _, label := range m.Labels {
		if _, _, err := taxonomy.Decompose(label); err != nil {
			return err
		}
		if _, dup := seen[label]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
		}
		seen[label] = struct{}{}
	}
	return nil
}

// Predict returns the best scoring known label for text.
func (m *Model) Predict(text string) string {
	idx := m.Classifier.Predict(m.Transform.Transform(text))
	if idx < 0 {
		return ""
	}
	return m.Labels[idx]
}

// Scores returns the decision score of every known label for text.
func (m *Model) Scores(text string) map[string]float64 {
	decision := m.Classifier.Decision(m.Transform.Transform(text))
	scores := make(map[string]float64, len(decision))
	for i, score := range decision {
		scores[m.Labels[i]] = score
	}
	return scores
}

// Revision counts the training steps the classifier has absorbed.
func (m *Model) Revision() int64 {
	return m.Classifier.Updates
}

// Learn feeds one labelled example to the classifier, first adding label to
// the known set if needed. The vocabulary of the transform is left as is.
// It reports whether the label was new.
func (m *Model) Learn(text, label string) (bool, error) {
	if _, _, err := taxonomy.Decompose(label); err != nil {
		return false, err
	}

	added := false
	idx := m.indexOf(label)
	if idx < 0 {
		idx = m.Classifier.AddClass(m.Transform.Size())
		m.Labels = append(m.Labels, label)
		added = true
	}

	if err := m.Classifier.PartialFit(m.Transform.Transform(text), idx); err != nil {
		return added, fmt.Errorf("failed to fit example: %w", err)
	}
	return added, nil
}

// Clone returns a deep copy that can be mutated freely.
func (m *Model) Clone() *Model {
	return &Model{
		Transform:  m.Transform.Clone(),
		Classifier: m.Classifier.Clone(),
		Labels:     append([]string(nil), m.Labels...),
	}
}

func (m *Model) indexOf(label string) int {
	for i, known := range m.Labels {
		if known == label {
			return i
		}
	}
	return -1
}
