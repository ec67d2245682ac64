// Package golem adapts the golem English dictionary to the classifier's
// lemmatizer capability interface.
package golem

import (
	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"

	"github.com/pragatiwave/sehat-bandhu/internal/domain/chat"
)

// Lemmatizer wraps a golem lemmatizer built from the embedded English dict.
type Lemmatizer struct {
	inner *golem.Lemmatizer
}

// New loads the English dictionary. Failure leaves the classifier in its
// degraded substring-only mode; callers decide how to log that.
func New() (*Lemmatizer, error) {
	inner, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}
	return &Lemmatizer{inner: inner}, nil
}

// Lemma returns the dictionary form of word, or word itself when unknown.
func (l *Lemmatizer) Lemma(word string) string {
	return l.inner.Lemma(word)
}

var _ chat.Lemmatizer = (*Lemmatizer)(nil)
