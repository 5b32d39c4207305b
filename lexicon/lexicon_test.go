package lexicon

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestNewMapLexicon(t *testing.T) {
	is := is.New(t)
	list := strings.Join([]string{
		"# a comment",
		"cat\ta small domesticated feline",
		"DOG",
		"",
		"  bird  ",
	}, "\n")
	lex, err := NewMapLexicon("test", strings.NewReader(list))
	is.NoErr(err)
	is.Equal(lex.WordCount(), 3)
	is.True(lex.Contains("CAT"))
	is.True(lex.Contains("cat"))
	is.True(lex.Contains("DOG"))
	is.True(lex.Contains("BIRD"))
	is.True(!lex.Contains("FISH"))
}

func TestMapLexiconDefinitions(t *testing.T) {
	is := is.New(t)
	lex, err := NewMapLexicon("test",
		strings.NewReader("cat\ta small domesticated feline\nDOG\n"))
	is.NoErr(err)
	def, ok := lex.Definition("CAT")
	is.True(ok)
	is.Equal(def, "a small domesticated feline")
	_, ok = lex.Definition("DOG")
	is.True(!ok)
	_, ok = lex.Definition("FISH")
	is.True(!ok)
}

func TestNewMapLexiconFromWords(t *testing.T) {
	is := is.New(t)
	lex := NewMapLexiconFromWords("test", []string{"cat", "CATS"})
	is.True(lex.Contains("CAT"))
	is.True(lex.Contains("cats"))
	is.Equal(lex.Name(), "test")
}

func TestAcceptAll(t *testing.T) {
	is := is.New(t)
	is.True(AcceptAll{}.Contains("XYZZY"))
	_, ok := AcceptAll{}.Definition("XYZZY")
	is.True(!ok)
}
