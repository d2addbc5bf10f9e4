package learn

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// Tokenize lowercases text and returns its word tokens of two or more characters.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// SparseVector holds the non-zero entries of a feature vector, ordered by index.
type SparseVector struct {
	Indices []int
	Values  []float64
}

// Len returns the number of non-zero entries.
func (v SparseVector) Len() int {
	return len(v.Indices)
}

// Vectorizer is a fitted TF-IDF transform with a fixed vocabulary.
type Vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

// FitVectorizer builds the vocabulary and smoothed inverse document frequencies
// from a training corpus. Terms are indexed in sorted order.
func FitVectorizer(docs []string) *Vectorizer {
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range Tokenize(doc) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			docFreq[tok]++
		}
	}

	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v := &Vectorizer{
		Vocabulary: make(map[string]int, len(terms)),
		IDF:        make([]float64, len(terms)),
	}
	for i, term := range terms {
		v.Vocabulary[term] = i
		v.IDF[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	return v
}

// Size is the dimension of the vectors produced by Transform.
func (v *Vectorizer) Size() int {
	return len(v.IDF)
}

// Transform maps text to an L2-normalised TF-IDF vector. Terms outside the
// vocabulary are dropped.
func (v *Vectorizer) Transform(text string) SparseVector {
	counts := make(map[int]float64)
	for _, tok := range Tokenize(text) {
		if idx, ok := v.Vocabulary[tok]; ok {
			counts[idx]++
		}
	}

	vec := SparseVector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		vec.Indices = append(vec.Indices, idx)
	}
	sort.Ints(vec.Indices)

	var norm float64
	for _, idx := range vec.Indices {
		weight := counts[idx] * v.IDF[idx]
		vec.Values = append(vec.Values, weight)
		norm += weight * weight
	}

	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec.Values {
			vec.Values[i] /= norm
		}
	}

	return vec
}

// Clone returns a deep copy.
func (v *Vectorizer) Clone() *Vectorizer {
	out := &Vectorizer{
		Vocabulary: make(map[string]int, len(v.Vocabulary)),
		IDF:        append([]float64(nil), v.IDF...),
	}
	for term, idx := range v.Vocabulary {
		out.Vocabulary[term] = idx
	}
	return out
}
