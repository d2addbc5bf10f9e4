package training

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"regexp"
	"strings"

	"money-tracker/internal/amount"
	"money-tracker/internal/classifier"
	"money-tracker/internal/learn"
	"money-tracker/internal/taxonomy"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultEpochs = 30
	DefaultSeed   = 42
)

var ErrEmptyCorpus = errors.New("training corpus is empty")

//go:embed corpus.toml
var embeddedCorpus []byte

var amountToken = regexp.MustCompile(`^[\d,.]*\d[\d,.]*$`)

// Example is one labelled sentence.
type Example struct {
	Text  string `toml:"text"`
	Label string `toml:"label"`
}

type Corpus struct {
	Examples []Example `toml:"example"`
}

// Texts returns the example sentences in corpus order.
func (c *Corpus) Texts() []string {
	texts := make([]string, len(c.Examples))
	for i, ex := range c.Examples {
		texts[i] = ex.Text
	}
	return texts
}

// LoadCorpus parses a TOML corpus and checks every example.
func LoadCorpus(r io.Reader) (*Corpus, error) {
	var corpus Corpus
	if err := toml.NewDecoder(r).Decode(&corpus); err != nil {
		return nil, fmt.Errorf("failed to decode corpus: %w", err)
	}
	if len(corpus.Examples) == 0 {
		return nil, ErrEmptyCorpus
	}
	for i, ex := range corpus.Examples {
		if strings.TrimSpace(ex.Text) == "" {
			return nil, fmt.Errorf("example %d has no text", i)
		}
		if _, _, err := taxonomy.Decompose(ex.Label); err != nil {
			return nil, fmt.Errorf("example %d: %w", i, err)
		}
	}
	return &corpus, nil
}

// DefaultCorpus returns the embedded seed corpus.
func DefaultCorpus() *Corpus {
	corpus, err := LoadCorpus(bytes.NewReader(embeddedCorpus))
	if err != nil {
		panic(fmt.Sprintf("embedded corpus is invalid: %v", err))
	}
	return corpus
}

type Options struct {
	Epochs       int
	Seed         uint64
	Alpha        float64
	LearningRate float64
	// OnEpoch, if set, is called after each completed pass.
	OnEpoch func(epoch, total int)
}

func DefaultOptions() Options {
	return Options{
		Epochs:       DefaultEpochs,
		Seed:         DefaultSeed,
		Alpha:        learn.DefaultAlpha,
		LearningRate: learn.DefaultLearningRate,
	}
}

// FitLabelModel fits a fresh label model on corpus. Every taxonomy label is
// known from the start, in taxonomy order; corpus labels outside the taxonomy
// are appended after them. Runs with equal options produce equal models.
func FitLabelModel(corpus *Corpus, registry *taxonomy.Registry, opts Options) (*classifier.Model, error) {
	if corpus == nil || len(corpus.Examples) == 0 {
		return nil, ErrEmptyCorpus
	}
	if opts.Epochs <= 0 {
		opts.Epochs = DefaultEpochs
	}

	labels := registry.Labels()
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}
	for _, ex := range corpus.Examples {
		if _, ok := index[ex.Label]; !ok {
			index[ex.Label] = len(labels)
			labels = append(labels, ex.Label)
		}
	}

	vectorizer := learn.FitVectorizer(corpus.Texts())
	sgd := learn.NewSGD(vectorizer.Size(), len(labels), opts.Alpha, opts.LearningRate)

	features := make([]learn.SparseVector, len(corpus.Examples))
	for i, ex := range corpus.Examples {
		features[i] = vectorizer.Transform(ex.Text)
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	order := make([]int, len(corpus.Examples))
	for i := range order {
		order[i] = i
	}

	for epoch := 1; epoch <= opts.Epochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		for _, i := range order {
			if err := sgd.PartialFit(features[i], index[corpus.Examples[i].Label]); err != nil {
				return nil, fmt.Errorf("failed to fit example %d: %w", i, err)
			}
		}
		if opts.OnEpoch != nil {
			opts.OnEpoch(epoch, opts.Epochs)
		}
	}

	return classifier.NewModel(vectorizer, sgd, labels)
}

// FitAmountModel trains the token model: tokens made of digits, commas and
// periods are amounts, everything else is not.
func FitAmountModel(corpus *Corpus) (*amount.TokenModel, error) {
	if corpus == nil || len(corpus.Examples) == 0 {
		return nil, ErrEmptyCorpus
	}

	model := amount.NewTokenModel()
	for _, ex := range corpus.Examples {
		for _, token := range strings.Fields(ex.Text) {
			model.Learn(token, IsAmountToken(token))
		}
	}
	return model, nil
}

// IsAmountToken is the labelling rule used to train the amount model.
func IsAmountToken(token string) bool {
	return amountToken.MatchString(token)
}
