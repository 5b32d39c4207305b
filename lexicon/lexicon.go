// Package lexicon provides the dictionary capability consumed by the word
// matcher: membership tests plus optional definitions for presentation.
package lexicon

import (
	"bufio"
	"io"
	"strings"
)

// A Lexicon answers word-membership queries. Definition lookups are for
// presentation only; implementations without definition data return false
// from the second return value.
type Lexicon interface {
	Name() string
	Contains(word string) bool
	Definition(word string) (string, bool)
}

// AcceptAll accepts every word. Test helper.
type AcceptAll struct{}

func (AcceptAll) Name() string { return "AcceptAll" }

func (AcceptAll) Contains(word string) bool { return true }

func (AcceptAll) Definition(word string) (string, bool) { return "", false }

// MapLexicon is a word list held in memory. Lookups are case-insensitive
// (everything is uppercased on the way in).
type MapLexicon struct {
	name  string
	words map[string]string
}

// NewMapLexicon reads a plain-text word list: one word per line, an optional
// definition after a tab. Blank lines and lines starting with # are skipped.
func NewMapLexicon(name string, r io.Reader) (*MapLexicon, error) {
	words := map[string]string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, def, _ := strings.Cut(line, "\t")
		words[strings.ToUpper(strings.TrimSpace(word))] = strings.TrimSpace(def)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &MapLexicon{name: name, words: words}, nil
}

// NewMapLexiconFromWords builds a lexicon from a word slice, with no
// definitions.
func NewMapLexiconFromWords(name string, words []string) *MapLexicon {
	m := map[string]string{}
	for _, w := range words {
		m[strings.ToUpper(w)] = ""
	}
	return &MapLexicon{name: name, words: m}
}

func (l *MapLexicon) Name() string { return l.name }

func (l *MapLexicon) Contains(word string) bool {
	_, ok := l.words[strings.ToUpper(word)]
	return ok
}

func (l *MapLexicon) Definition(word string) (string, bool) {
	def, ok := l.words[strings.ToUpper(word)]
	if !ok || def == "" {
		return "", false
	}
	return def, true
}

// WordCount returns the number of words in the list.
func (l *MapLexicon) WordCount() int { return len(l.words) }
