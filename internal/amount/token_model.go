package amount

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/jbrukh/bayesian"
)

const (
	ClassAmount bayesian.Class = "AMOUNT"
	ClassOther  bayesian.Class = "OTHER"
)

var ErrUntrainedModel = errors.New("amount model has not been trained")

// TokenModel decides whether a single whitespace token is part of an amount.
// It is a naive Bayes classifier over the shape features of the token.
type TokenModel struct {
	clf *bayesian.Classifier
}

func NewTokenModel() *TokenModel {
	return &TokenModel{clf: bayesian.NewClassifier(ClassAmount, ClassOther)}
}

// Learn records one token with its class.
func (m *TokenModel) Learn(token string, isAmount bool) {
	class := ClassOther
	if isAmount {
		class = ClassAmount
	}
	m.clf.Learn(Features(token), class)
}

// Learned is the number of tokens the model has seen.
func (m *TokenModel) Learned() int {
	return m.clf.Learned()
}

// IsAmount classifies a token. Ties count as OTHER.
func (m *TokenModel) IsAmount(token string) bool {
	_, best, strict := m.clf.LogScores(Features(token))
	return strict && m.clf.Classes[best] == ClassAmount
}

// Save writes the model to path through a temporary file and a rename.
func (m *TokenModel) Save(path string) error {
	if m.Learned() == 0 {
		return ErrUntrainedModel
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create amount model directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp amount model: %w", err)
	}
	tmpName := tmp.Name()
	_ = tmp.Close()

	if err := m.clf.WriteToFile(tmpName); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write amount model: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace amount model: %w", err)
	}
	return nil
}

// LoadTokenModel reads a model written by Save. Like the label model it fails
// soft: any problem is logged and reported as absent.
func LoadTokenModel(path string) (*TokenModel, bool) {
	if _, err := os.Stat(path); err != nil {
		slog.Warn("amount model not found, using pattern extraction",
			slog.String("path", path),
		)
		return nil, false
	}

	clf, err := bayesian.NewClassifierFromFile(path)
	if err != nil {
		slog.Error("failed to load amount model",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return nil, false
	}

	m := &TokenModel{clf: clf}
	if len(clf.Classes) != 2 || m.Learned() == 0 {
		slog.Error("amount model is unusable",
			slog.String("path", path),
			slog.Int("classes", len(clf.Classes)),
			slog.Int("learned", m.Learned()),
		)
		return nil, false
	}

	return m, true
}

// Features describes a token by its shape rather than its spelling, so that
// unseen numbers still look like numbers.
func Features(token string) []string {
	var shape strings.Builder
	var last rune
	digits, letters, others := 0, 0, 0

	for _, r := range token {
		var c rune
		switch {
		case unicode.IsDigit(r):
			c = 'd'
			digits++
		case unicode.IsLetter(r):
			c = 'a'
			letters++
		default:
			c = r
			others++
		}
		if c != last {
			shape.WriteRune(c)
			last = c
		}
	}

	features := []string{"shape:" + shape.String()}
	switch {
	case digits > 0 && letters == 0:
		features = append(features, "kind:numeric")
	case digits > 0:
		features = append(features, "kind:mixed")
	default:
		features = append(features, "kind:word")
	}
	if digits > 0 {
		features = append(features, fmt.Sprintf("digits:%d", min(digits, 6)))
	}
	if others > 0 {
		features = append(features, "punct")
	}
	if letters > 0 {
		features = append(features, "word:"+strings.ToLower(token))
	}

	return features
}
