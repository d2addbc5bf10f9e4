package taxonomy

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Separator joins a category and a sub-category into a label.
const Separator = "|"

var (
	ErrMalformedLabel   = errors.New("malformed label")
	ErrEmptyTaxonomy    = errors.New("taxonomy has no categories")
	ErrDuplicateName    = errors.New("duplicate taxonomy entry")
	ErrSeparatorInName  = errors.New("taxonomy name contains the label separator")
	ErrUnknownDefault   = errors.New("default label is not part of the taxonomy")
	ErrEmptyTaxonomyKey = errors.New("taxonomy name is empty")
)

//go:embed taxonomy.toml
var embeddedTaxonomy []byte

// MalformedLabelError is returned when a label does not contain exactly one separator.
type MalformedLabelError struct {
	Label string
}

func (e *MalformedLabelError) Error() string {
	return fmt.Sprintf("malformed label %q: expected exactly one %q", e.Label, Separator)
}

// Is lets errors.Is match against ErrMalformedLabel.
func (e *MalformedLabelError) Is(target error) bool {
	return target == ErrMalformedLabel
}

// Compose joins a category and sub-category into a label.
func Compose(category, subCategory string) string {
	return category + Separator + subCategory
}

// Decompose splits a label into its category and sub-category.
func Decompose(label string) (category, subCategory string, err error) {
	if strings.Count(label, Separator) != 1 {
		return "", "", &MalformedLabelError{Label: label}
	}
	parts := strings.SplitN(label, Separator, 2)
	return parts[0], parts[1], nil
}

type categoryEntry struct {
	Name          string   `toml:"name"`
	Subcategories []string `toml:"subcategories"`
}

type taxonomyFile struct {
	Default    string          `toml:"default"`
	Categories []categoryEntry `toml:"category"`
}

// Registry is the closed, ordered category to sub-category mapping.
// It is immutable once loaded and safe for concurrent use.
type Registry struct {
	categories   []string
	subs         map[string][]string
	labels       []string
	labelSet     map[string]struct{}
	defaultLabel string
}

// Load parses a TOML taxonomy document.
func Load(r io.Reader) (*Registry, error) {
	var file taxonomyFile
	if err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode taxonomy: %w", err)
	}
	return build(file)
}

func build(file taxonomyFile) (*Registry, error) {
	if len(file.Categories) == 0 {
		return nil, ErrEmptyTaxonomy
	}

	reg := &Registry{
		subs:     make(map[string][]string, len(file.Categories)),
		labelSet: make(map[string]struct{}),
	}

	for _, entry := range file.Categories {
		if err := checkName(entry.Name); err != nil {
			return nil, err
		}
		if _, exists := reg.subs[entry.Name]; exists {
			return nil, fmt.Errorf("%w: category %q", ErrDuplicateName, entry.Name)
		}

		subs := make([]string, 0, len(entry.Subcategories))
		seen := make(map[string]struct{}, len(entry.Subcategories))
		for _, sub := range entry.Subcategories {
			if err := checkName(sub); err != nil {
				return nil, err
			}
			if _, dup := seen[sub]; dup {
				return nil, fmt.Errorf("%w: %q in %q", ErrDuplicateName, sub, entry.Name)
			}
			seen[sub] = struct{}{}
			subs = append(subs, sub)

			label := Compose(entry.Name, sub)
			reg.labels = append(reg.labels, label)
			reg.labelSet[label] = struct{}{}
		}

		reg.categories = append(reg.categories, entry.Name)
		reg.subs[entry.Name] = subs
	}

	reg.defaultLabel = file.Default
	if reg.defaultLabel == "" {
		reg.defaultLabel = reg.labels[len(reg.labels)-1]
	}
	if !reg.Contains(reg.defaultLabel) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefault, reg.defaultLabel)
	}

	return reg, nil
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyTaxonomyKey
	}
	if strings.Contains(name, Separator) {
		return fmt.Errorf("%w: %q", ErrSeparatorInName, name)
	}
	return nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from the embedded taxonomy file.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := Load(bytes.NewReader(embeddedTaxonomy))
		if err != nil {
			panic(fmt.Sprintf("embedded taxonomy is invalid: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// Categories returns category names in taxonomy order.
func (r *Registry) Categories() []string {
	return append([]string(nil), r.categories...)
}

// SubCategories returns the sub-categories of a category, or nil if it is unknown.
func (r *Registry) SubCategories(category string) []string {
	subs, ok := r.subs[category]
	if !ok {
		return nil
	}
	return append([]string(nil), subs...)
}

// Labels returns every label in taxonomy order.
func (r *Registry) Labels() []string {
	return append([]string(nil), r.labels...)
}

func (r *Registry) Contains(label string) bool {
	_, ok := r.labelSet[label]
	return ok
}

// DefaultLabel is the generic bucket used when no model is loaded.
func (r *Registry) DefaultLabel() string {
	return r.defaultLabel
}
