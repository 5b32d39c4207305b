package shell

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/domino14/letterfall/config"
	"github.com/domino14/letterfall/game"
	"github.com/domino14/letterfall/grace"
	"github.com/domino14/letterfall/lettergen"
	"github.com/domino14/letterfall/lexicon"
)

// fakeScheduler is a manual clock. Advance fires every task whose deadline
// has passed, outside the lock so callbacks can reschedule.
type fakeScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	tasks []*fakeTask
}

type fakeTask struct {
	s         *fakeScheduler
	at        time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

func (s *fakeScheduler) Schedule(d time.Duration, fn func()) grace.TimerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTask{s: s, at: s.now + d, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*fakeTask
	for _, t := range s.tasks {
		if !t.fired && !t.cancelled && t.at <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()
	for _, t := range due {
		t.fn()
	}
}

func (t *fakeTask) Cancel() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.fired || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

func fixedLetters(letters string) func(count int) []lettergen.LetterTile {
	return func(count int) []lettergen.LetterTile {
		tiles := make([]lettergen.LetterTile, 0, count)
		for i := 0; i < count; i++ {
			tiles = append(tiles, lettergen.LetterTile{
				Char: rune(letters[i%len(letters)]),
				ID:   fmt.Sprintf("tile-%d", i),
				Type: lettergen.TileQueued,
			})
		}
		return tiles
	}
}

func testController(t *testing.T, letters string) (*ShellController, *bytes.Buffer, *fakeScheduler) {
	t.Helper()
	var buf bytes.Buffer
	sched := &fakeScheduler{}
	cfg := config.DefaultConfig()
	lex := lexicon.NewMapLexiconFromWords("test", []string{"CAT"})
	sc := newController(cfg, lex, &buf, sched)
	sc.rules.SetLetterFunc(fixedLetters(letters))
	return sc, &buf, sched
}

func TestCommandSwitchErrors(t *testing.T) {
	is := is.New(t)
	sc, _, _ := testController(t, "CATXYZQW")

	cases := []struct {
		line    string
		wantErr bool
	}{
		{"frobnicate", true},
		{"new bogus", true},
		{"drop many", true},
		{"set cat", true}, // no game yet
		{"new classic", false},
		{"new clear", false},
		{"drop 0", false},
		{"set cat", false},
		{"set x1", true},
		{"set toolongforthegrid", true},
		{"show", false},
		{"s", false},
		{"queue", false},
		{"pending", false},
		{"words", false},
		{"score", false},
		{"help", false},
		{"reset", false},
	}
	for _, tc := range cases {
		err := sc.commandSwitch(tc.line)
		is.Equal(err != nil, tc.wantErr) // tc.line
	}
}

func TestSetWordSeedsAndMatches(t *testing.T) {
	is := is.New(t)
	sc, _, sched := testController(t, "XYZQWJK")

	sc.Execute("new classic")
	sc.Execute("set cat")

	sc.mu.Lock()
	is.Equal(len(sc.pending), 1)
	sc.mu.Unlock()

	sched.Advance(sc.cfg.GracePeriod())

	sc.mu.Lock()
	defer sc.mu.Unlock()
	is.Equal(sc.state.Score, 9)
	is.Equal(sc.state.Grid.OccupiedCount(), 0)
}

func TestDropFormsWordAfterGrace(t *testing.T) {
	is := is.New(t)
	sc, buf, sched := testController(t, "CATXYZQW")

	sc.Execute("new classic")
	sc.Execute("drop 0")
	sc.Execute("drop 1")
	sc.Execute("drop 2")

	sc.mu.Lock()
	is.Equal(len(sc.pending), 1) // CAT is pending, not scored yet
	is.Equal(sc.state.Score, 0)
	sc.mu.Unlock()

	sched.Advance(sc.cfg.GracePeriod())

	sc.mu.Lock()
	is.Equal(len(sc.pending), 0)
	is.Equal(sc.state.Score, 9)
	is.Equal(sc.state.MadeWords, []string{"CAT"})
	is.Equal(sc.state.Grid.OccupiedCount(), 0)
	is.Equal(sc.state.Status, game.StatusPlaying)
	sc.mu.Unlock()

	is.True(strings.Contains(buf.String(), "made CAT! score: 9"))
}

func TestResetCancelsPendingWords(t *testing.T) {
	is := is.New(t)
	sc, _, sched := testController(t, "CATXYZQW")

	sc.Execute("new classic")
	sc.Execute("drop 0")
	sc.Execute("drop 1")
	sc.Execute("drop 2")
	sc.Execute("reset")

	sched.Advance(sc.cfg.GracePeriod() * 2)

	sc.mu.Lock()
	defer sc.mu.Unlock()
	is.Equal(sc.state.Score, 0)
	is.Equal(sc.state.Status, game.StatusIdle)
	is.Equal(len(sc.pending), 0)
}
