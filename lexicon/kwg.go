package lexicon

import (
	wglconfig "github.com/domino14/word-golib/config"
	"github.com/domino14/word-golib/kwg"
	"github.com/domino14/word-golib/tilemapping"
)

// KWGLexicon wraps a compiled KWG lexicon from word-golib. It gives the
// matcher real tournament word lists (NWL, CSW, etc) instead of plain-text
// files. KWG files carry no definitions.
type KWGLexicon struct {
	lex kwg.Lexicon
}

// NewKWGLexicon loads the named lexicon from the word-golib data path.
func NewKWGLexicon(cfg *wglconfig.Config, name string) (*KWGLexicon, error) {
	k, err := kwg.Get(cfg, name)
	if err != nil {
		return nil, err
	}
	return &KWGLexicon{lex: kwg.Lexicon{KWG: *k}}, nil
}

func (l *KWGLexicon) Name() string { return l.lex.Name() }

func (l *KWGLexicon) Contains(word string) bool {
	mw, err := tilemapping.ToMachineWord(word, l.lex.GetAlphabet())
	if err != nil {
		return false
	}
	return l.lex.HasWord(mw)
}

func (l *KWGLexicon) Definition(word string) (string, bool) { return "", false }
