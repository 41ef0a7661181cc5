package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/tusmo/internal/game"
	"github.com/robalobadob/tusmo/internal/terminal"
	"github.com/robalobadob/tusmo/internal/words"
)

func main() {
	_ = godotenv.Load()

	var (
		wordsFile   = flag.String("words_file", "", "Answers file, one word per line. Empty uses the built-in list.")
		vocabFile   = flag.String("vocab_file", "", "Optional list of accepted guesses. Empty accepts any word.")
		wordLength  = flag.Int("word_length", 5, "Letters per word")
		maxAttempts = flag.Int("max_attempts", 6, "Attempts per round")
		dailyMode   = flag.Bool("daily", false, "Play the word of the day instead of a random word")
		dailySalt   = flag.String("daily_salt", "local_dev_salt", "Salt for the word of the day")
		strict      = flag.Bool("strict", false, "Report out-of-place input instead of ignoring it")
		logLevel    = flag.String("log_level", "info", "zerolog level")
	)
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(*logLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	list, err := loadList(*wordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	if err := list.Validate(*wordLength); err != nil {
		log.Fatal().Err(err).Msg("invalid word list")
	}

	cfg := game.Config{
		WordLength:  *wordLength,
		MaxAttempts: *maxAttempts,
		Strict:      *strict,
	}
	if *vocabFile != "" {
		vocab, err := words.Load(*vocabFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load vocabulary")
		}
		// Every answer is a valid guess.
		cfg.Vocabulary = append(vocab, list...).Vocabulary()
	}

	var src game.Source
	if *dailyMode {
		src = &words.DailySource{List: list, Salt: *dailySalt}
	} else if src, err = words.NewRandomSource(list, nil); err != nil {
		log.Fatal().Err(err).Msg("failed to build word source")
	}

	eng, err := game.New(src, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start round")
	}
	if err := terminal.Play(os.Stdin, os.Stdout, eng); err != nil {
		log.Fatal().Err(err).Msg("terminal exited")
	}
}

func loadList(path string) (words.WordList, error) {
	if path == "" {
		return words.LoadEmbedded()
	}
	return words.Load(path)
}
