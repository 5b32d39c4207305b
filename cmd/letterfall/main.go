package main

import (
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/letterfall/config"
	"github.com/domino14/letterfall/lexicon"
	"github.com/domino14/letterfall/shell"
)

var (
	GitVersion string
)

//go:embed letterfall.txt
var banner string

//go:embed words.txt
var defaultWordList string

func main() {
	fmt.Println(banner)
	fmt.Println(GitVersion)

	cfg := config.DefaultConfig()
	args := os.Args[1:]
	if err := cfg.Load(args); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	log.Info().Interface("config", cfg.AllSettings()).Msg("loaded config")

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger

	lex, err := loadLexicon(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("loading lexicon")
	}
	log.Info().Str("lexicon", lex.Name()).Msg("lexicon ready")

	idleConnsClosed := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("got quit signal...")
		close(idleConnsClosed)
	}()

	sc := shell.NewShellController(cfg, lex)
	go sc.Loop(sig)

	<-idleConnsClosed
	log.Info().Msg("server gracefully shutting down")
}

// loadLexicon picks the configured dictionary: a plain-text word list file,
// a compiled KWG lexicon, or the small built-in list as a fallback.
func loadLexicon(cfg *config.Config) (lexicon.Lexicon, error) {
	if path := cfg.GetString("lexicon-file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return lexicon.NewMapLexicon(path, f)
	}
	if name := cfg.GetString("lexicon"); name != "" {
		return lexicon.NewKWGLexicon(cfg.WGLConfig(), name)
	}
	return lexicon.NewMapLexicon("built-in", strings.NewReader(defaultWordList))
}
