package chat

import (
	"strings"

	"github.com/pragatiwave/sehat-bandhu/pkg/textutil"
)

// Lemmatizer reduces an English token to its dictionary form. It is an
// optional capability; classification must work without it.
type Lemmatizer interface {
	Lemma(word string) string
}

// Classifier decides whether a query is in the medical domain using the fixed
// keyword set: lemma membership per token when a lemmatizer is present, plus
// a substring scan that catches multi-word keywords and unlemmatized forms.
type Classifier struct {
	keywords   []string
	keywordSet map[string]struct{}
	lemmatizer Lemmatizer
}

// NewClassifier builds a classifier over the keyword set. Keywords are
// normalized once up front. A nil lemmatizer degrades the check to substring
// matching only.
func NewClassifier(keywords []string, lemmatizer Lemmatizer) *Classifier {
	set := make(map[string]struct{}, len(keywords))
	normalized := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = textutil.Normalize(keyword)
		if keyword == "" {
			continue
		}
		if _, seen := set[keyword]; seen {
			continue
		}
		set[keyword] = struct{}{}
		normalized = append(normalized, keyword)
	}
	return &Classifier{
		keywords:   normalized,
		keywordSet: set,
		lemmatizer: lemmatizer,
	}
}

// IsMedical reports whether the English query is medically relevant.
// An empty query is never relevant.
func (c *Classifier) IsMedical(queryEN string) bool {
	query := textutil.Normalize(queryEN)
	if query == "" {
		return false
	}
	if c.lemmatizer != nil {
		for _, token := range strings.Fields(query) {
			if _, ok := c.keywordSet[c.lemmatizer.Lemma(token)]; ok {
				return true
			}
		}
	}
	for _, keyword := range c.keywords {
		if strings.Contains(query, keyword) {
			return true
		}
	}
	return false
}
