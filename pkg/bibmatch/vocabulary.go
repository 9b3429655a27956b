package bibmatch

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed vocabulary.toml
var vocabularyTOML string

// Vocabulary holds the immutable token sets used by the matchers.
// A Vocabulary is safe for concurrent use; none of its methods mutate it.
type Vocabulary struct {
	version    int
	stopwords  map[string]struct{}
	derivative map[string]struct{}
}

type vocabularyFile struct {
	Version           int      `toml:"version"`
	Stopwords         []string `toml:"stopwords"`
	DerivativeMarkers []string `toml:"derivative_markers"`
}

// ParseVocabulary decodes a vocabulary document in the embedded TOML format.
func ParseVocabulary(data string) (*Vocabulary, error) {
	var f vocabularyFile
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("parsing vocabulary: %w", err)
	}
	if f.Version < 1 {
		return nil, fmt.Errorf("parsing vocabulary: version must be >= 1, got %d", f.Version)
	}
	return &Vocabulary{
		version:    f.Version,
		stopwords:  toSet(f.Stopwords),
		derivative: toSet(f.DerivativeMarkers),
	}, nil
}

var defaultVocabulary = sync.OnceValue(func() *Vocabulary {
	v, err := ParseVocabulary(vocabularyTOML)
	if err != nil {
		panic("bibmatch: embedded vocabulary: " + err.Error())
	}
	return v
})

// DefaultVocabulary returns the vocabulary embedded in the binary.
// It is parsed once, on first use.
func DefaultVocabulary() *Vocabulary {
	return defaultVocabulary()
}

// Version identifies the revision of the token lists.
func (v *Vocabulary) Version() int { return v.version }

// IsStopword reports whether tok is dropped from title token lists.
func (v *Vocabulary) IsStopword(tok string) bool {
	_, ok := v.stopwords[tok]
	return ok
}

// IsDerivativeMarker reports whether tok marks a derivative work.
func (v *Vocabulary) IsDerivativeMarker(tok string) bool {
	_, ok := v.derivative[tok]
	return ok
}

// Stopwords returns a sorted copy of the stopword set.
func (v *Vocabulary) Stopwords() []string { return sortedKeys(v.stopwords) }

// DerivativeMarkers returns a sorted copy of the derivative marker set.
func (v *Vocabulary) DerivativeMarkers() []string { return sortedKeys(v.derivative) }

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = NormalizeText(w); w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
