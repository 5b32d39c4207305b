// Package shell is the interactive console for the letterfall engine. It is
// a thin consumer of the core packages: it feeds drops in, registers found
// words with the grace coordinator, and finalizes them when their grace
// periods elapse.
package shell

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/domino14/letterfall/config"
	"github.com/domino14/letterfall/game"
	"github.com/domino14/letterfall/grace"
	"github.com/domino14/letterfall/grid"
	"github.com/domino14/letterfall/lexicon"
	"github.com/domino14/letterfall/matcher"
	"github.com/domino14/letterfall/scoring"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	out    io.Writer
	errOut io.Writer

	rules *game.Rules
	lex   lexicon.Lexicon
	coord *grace.Coordinator

	// mu serializes every state mutation: readline commands and grace
	// expiries both go through it, so the core always runs one discrete
	// event to completion at a time.
	mu      sync.Mutex
	state   game.GameState
	pending map[string]matcher.Match
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config, lex lexicon.Lexicon) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mletterfall>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := newController(cfg, lex, l.Stdout(), nil)
	sc.l = l
	sc.errOut = l.Stderr()
	return sc
}

// newController sets up everything but the readline instance; tests drive
// it directly with a buffer and a fake scheduler.
func newController(cfg *config.Config, lex lexicon.Lexicon, out io.Writer, sched grace.Scheduler) *ShellController {
	rules := game.NewRules(cfg.Rows(), cfg.Columns(), cfg.LetterCount(), scoring.LengthQuadratic)
	rules.RegisterInitializer(game.ModeClear,
		game.NewClearModeInitializer(cfg.Rows(), cfg.Columns(), 2))

	sc := &ShellController{
		cfg:     cfg,
		out:     out,
		errOut:  out,
		rules:   rules,
		lex:     lex,
		pending: map[string]matcher.Match{},
	}
	sc.state = rules.InitialState()
	sc.coord = grace.NewCoordinator(cfg.GracePeriod(), cfg.Columns(), sched,
		&consoleNotifier{out: out})
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	showMessage("Error: "+err.Error(), sc.errOut)
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "exit" || line == "quit" {
			sig <- syscall.SIGINT
			break
		}
		if line == "" {
			continue
		}
		if err := sc.commandSwitch(line); err != nil {
			sc.showError(err)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Execute runs a single command line non-interactively.
func (sc *ShellController) Execute(line string) {
	if err := sc.commandSwitch(strings.TrimSpace(line)); err != nil {
		sc.showError(err)
	}
}

func (sc *ShellController) commandSwitch(line string) error {
	switch {
	case line == "new" || strings.HasPrefix(line, "new "):
		mode := game.ModeClassic
		if strings.HasPrefix(line, "new ") {
			switch strings.TrimSpace(line[4:]) {
			case "classic":
				mode = game.ModeClassic
			case "clear":
				mode = game.ModeClear
			default:
				return fmt.Errorf("unknown mode %q (classic, clear)", line[4:])
			}
		}
		sc.newGame(mode)

	case strings.HasPrefix(line, "drop "):
		col, err := strconv.Atoi(strings.TrimSpace(line[5:]))
		if err != nil {
			return fmt.Errorf("badly formatted column")
		}
		sc.drop(col)

	case line == "show" || line == "s":
		sc.showMessage(sc.display())

	case line == "queue":
		sc.showMessage(sc.queueDisplay())

	case line == "pending":
		sc.showMessage(sc.pendingDisplay())

	case line == "words":
		sc.showMessage(sc.wordsDisplay())

	case line == "score":
		sc.mu.Lock()
		msg := fmt.Sprintf("score: %d", sc.state.Score)
		sc.mu.Unlock()
		sc.showMessage(msg)

	case strings.HasPrefix(line, "set "):
		return sc.setWord(strings.ToUpper(strings.TrimSpace(line[4:])))

	case line == "reset":
		sc.reset()

	case line == "help":
		sc.showMessage(helpText)

	default:
		return fmt.Errorf("unknown command; type help")
	}
	return nil
}

const helpText = `commands:
  new [classic|clear]   start a new game
  drop <col>            drop the next letter into a column
  show                  display the grid
  queue                 show the next letters in the queue
  pending               show words awaiting their grace period
  words                 show made-word history
  score                 show the score
  set <word>            seed a word onto the bottom row (debug)
  reset                 abandon the game
  exit                  leave`

func (sc *ShellController) newGame(mode game.Mode) {
	sc.coord.ClearAll()
	sc.mu.Lock()
	sc.pending = map[string]matcher.Match{}
	sc.state = sc.rules.Transition(sc.state, game.StartGame{Mode: mode})
	msg := sc.displayLocked()
	sc.mu.Unlock()
	sc.showMessage(msg)
}

func (sc *ShellController) reset() {
	sc.coord.ClearAll()
	sc.mu.Lock()
	sc.pending = map[string]matcher.Match{}
	sc.state = sc.rules.Transition(sc.state, game.Reset{})
	sc.mu.Unlock()
	sc.showMessage("game reset")
}

// setWord lays a word left-aligned on the bottom row, replacing whatever
// is there, then runs the normal match scan. Debug aid.
func (sc *ShellController) setWord(word string) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.state.Status != game.StatusPlaying {
		return fmt.Errorf("no game in progress")
	}
	if len(word) == 0 || len(word) > sc.rules.Cols() {
		return fmt.Errorf("word must be 1-%d letters", sc.rules.Cols())
	}
	placements := map[int]*grid.Cell{}
	bottom := sc.rules.Rows() - 1
	for i, ch := range word {
		if ch < 'A' || ch > 'Z' {
			return fmt.Errorf("letters only")
		}
		placements[grid.Index(bottom, i, sc.rules.Cols())] = &grid.Cell{
			Char: ch,
			ID:   fmt.Sprintf("set-%d", i),
		}
	}
	sc.state.Grid = sc.state.Grid.WithCells(placements)
	sc.registerMatchesLocked()
	return nil
}

func (sc *ShellController) drop(col int) {
	sc.mu.Lock()
	prev := sc.state
	sc.state = sc.rules.Transition(sc.state, game.DropLetter{Column: col})
	changed := sc.state.LettersRemaining() != prev.LettersRemaining()
	if changed {
		sc.registerMatchesLocked()
	}
	msg := sc.displayLocked()
	over := sc.state.Status == game.StatusGameOver
	sc.mu.Unlock()

	if !changed {
		sc.showMessage("no drop (column full, or not playing)")
		return
	}
	sc.showMessage(msg)
	if over {
		sc.showMessage("out of letters - game over")
	}
}

// registerMatchesLocked scans the grid and syncs the scan results with the
// grace coordinator: new matches get pending entries, re-found ones get
// their grace periods reset, and vanished ones are cancelled. Caller holds
// sc.mu.
func (sc *ShellController) registerMatchesLocked() {
	found := matcher.FindWords(sc.state.Grid, sc.lex)
	seen := map[string]bool{}
	for _, m := range found {
		key := sc.coord.GenerateKey(m)
		seen[key] = true
		if _, ok := sc.pending[key]; ok {
			sc.coord.ResetGracePeriod(key, sc.onExpired)
		} else {
			sc.pending[key] = m
			sc.coord.AddPendingWord(m, sc.onExpired)
		}
		sc.state = sc.rules.Transition(sc.state,
			game.SetPending{Indices: m.Positions, Direction: m.Direction})
	}
	// cancel matches the grid no longer forms
	for key, m := range sc.pending {
		if seen[key] {
			continue
		}
		delete(sc.pending, key)
		sc.coord.RemovePendingWord(key)
		sc.state = sc.rules.Transition(sc.state,
			game.ClearPending{Indices: m.Positions, Direction: m.Direction})
	}
}

// onExpired finalizes one pending word: mark its cells matched, score and
// remove it, drop remaining tiles, then rescan for cascading matches. It
// runs on a timer goroutine; the mutex keeps it serialized with commands.
func (sc *ShellController) onExpired(key string) {
	sc.mu.Lock()
	m, ok := sc.pending[key]
	if !ok {
		sc.mu.Unlock()
		return
	}
	delete(sc.pending, key)

	sc.state = sc.rules.Transition(sc.state, game.SetMatchedIndices{Indices: m.Positions})
	sc.state = sc.rules.Transition(sc.state, game.RemoveWords{
		Words: []game.WordRemoval{{Word: m.Word, Indices: m.Positions}},
	})
	sc.state = sc.rules.Transition(sc.state, game.ApplyGravity{})
	sc.registerMatchesLocked()

	score := sc.state.Score
	won := sc.state.Mode == game.ModeClear && game.ClearModeWon(sc.state.Grid)
	if won {
		sc.state = sc.rules.Transition(sc.state, game.EndGame{})
	}
	msg := sc.displayLocked()
	sc.mu.Unlock()

	def, hasDef := sc.lex.Definition(m.Word)
	if hasDef {
		sc.showMessage(fmt.Sprintf("%s: %s", m.Word, def))
	}
	sc.showMessage(fmt.Sprintf("made %s! score: %d", m.Word, score))
	sc.showMessage(msg)
	if won {
		sc.showMessage("all blocks cleared - you win!")
	}
}

func (sc *ShellController) display() string {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.displayLocked()
}

func (sc *ShellController) displayLocked() string {
	var sb strings.Builder
	sb.WriteString(sc.state.Grid.ToDisplayText())
	fmt.Fprintf(&sb, "status: %v  score: %d  letters left: %d",
		sc.state.Status, sc.state.Score, sc.state.LettersRemaining())
	if next, ok := sc.state.NextTile(); ok {
		fmt.Fprintf(&sb, "  next: %c", next.Char)
	}
	return sb.String()
}

func (sc *ShellController) queueDisplay() string {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	n := sc.state.LettersRemaining()
	if n == 0 {
		return "queue empty"
	}
	show := n
	if show > 10 {
		show = 10
	}
	var sb strings.Builder
	sb.WriteString("next: ")
	for i := 0; i < show; i++ {
		sb.WriteRune(sc.state.Queue[i].Char)
		sb.WriteRune(' ')
	}
	fmt.Fprintf(&sb, "(%d total)", n)
	return sb.String()
}

func (sc *ShellController) pendingDisplay() string {
	words := sc.coord.AllPendingWords()
	if len(words) == 0 {
		return "no pending words"
	}
	var sb strings.Builder
	for key, m := range words {
		fmt.Fprintf(&sb, "%s (%s) %v\n", m.Word, key, m.Positions)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (sc *ShellController) wordsDisplay() string {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if len(sc.state.MadeWords) == 0 {
		return "no words made yet"
	}
	return strings.Join(sc.state.MadeWords, ", ")
}

// consoleNotifier satisfies the grace coordinator's animation capability
// with plain-text announcements.
type consoleNotifier struct {
	out io.Writer
}

func (n *consoleNotifier) StartPendingPresentation(key string, m matcher.Match) {
	fmt.Fprintf(n.out, "pending: %s (%v)\n", m.Word, m.Direction)
}

func (n *consoleNotifier) ResetPendingPresentation(key string) {
	fmt.Fprintf(n.out, "pending again: %s\n", key)
}

func (n *consoleNotifier) ClearPendingPresentation(key string) {}
