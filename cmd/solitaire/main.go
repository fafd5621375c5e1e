package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/fadedpez/solitaire/internal/config"
	"github.com/fadedpez/solitaire/internal/logging"
	"github.com/fadedpez/solitaire/internal/types"
	"github.com/fadedpez/solitaire/pkg/cards"
	"github.com/fadedpez/solitaire/pkg/services/cipher"
	"golang.org/x/crypto/ssh/terminal"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options are the per-invocation settings after flags are applied over config
type options struct {
	deckFile string
	seed     int64
	hasSeed  bool
	showDeck bool
	count    int
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Show usage if no arguments provided
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	command := args[0]
	switch command {
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	case "encrypt", "decrypt", "keystream", "deck":
	default:
		fmt.Fprintf(stderr, "Error: Unknown command '%s'\n\n", command)
		printUsage(stderr)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return 1
	}
	logger := logging.NewLoggerWithOutput(stderr, cfg.LogLevel)

	opts, rest, err := parseFlags(command, args[1:], cfg, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	source, deckShown, err := deckSource(opts)
	if err != nil {
		logger.LogError(err)
		return 1
	}
	service := cipher.NewService(source, logger)

	var result *cipher.Result
	switch command {
	case "encrypt", "decrypt":
		message, err := readMessage(rest, stdin, stderr)
		if err != nil {
			logger.LogError(err)
			return 1
		}
		if command == "encrypt" {
			result, err = service.Encrypt(message)
		} else {
			result, err = service.Decrypt(message)
		}
		if err != nil {
			return 1
		}

	case "keystream":
		result, err = service.KeyStream(opts.count)
		if err != nil {
			return 1
		}

	case "deck":
		deck, err := source.NewDeck()
		if err != nil {
			logger.LogError(err)
			return 1
		}
		fmt.Fprintln(stdout, cards.Format(deck.Cards()))
		return 0
	}

	if opts.showDeck {
		fmt.Fprintf(stdout, "Deck: %s\n", result.InitialDeck)
	} else if !deckShown {
		// an unseeded random deck is otherwise lost
		fmt.Fprintf(stderr, "Deck: %s\n", result.InitialDeck)
	}
	fmt.Fprintln(stdout, result.Output)

	return 0
}

func parseFlags(command string, args []string, cfg *config.Config, stderr io.Writer) (*options, []string, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(stderr)

	deckFile := fs.String("deck", cfg.DeckFile, "File holding the 28 card deck, front card first")
	seed := fs.Int64("seed", cfg.Seed, "Seed for a random deck")
	showDeck := fs.Bool("show-deck", cfg.ShowDeck, "Print the initial deck with the result")
	var count *int
	if command == "keystream" {
		count = fs.Int("n", 10, "Number of key values to print")
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	opts := &options{
		deckFile: *deckFile,
		seed:     *seed,
		hasSeed:  cfg.HasSeed || set["seed"],
		showDeck: *showDeck,
	}
	if count != nil {
		opts.count = *count
	}

	// An explicit flag wins over the other deck setting from the environment
	switch {
	case set["deck"] && set["seed"]:
		return nil, nil, types.NewCipherError(types.ErrInvalidArgument, "-deck and -seed are mutually exclusive")
	case set["seed"]:
		opts.deckFile = ""
	case set["deck"]:
		opts.hasSeed = false
	}

	return opts, fs.Args(), nil
}

// deckSource picks where decks come from. The second return value reports
// whether the deck can be recovered without printing it.
func deckSource(opts *options) (cipher.DeckSource, bool, error) {
	if opts.deckFile != "" {
		deck, err := cards.ReadDeckFile(opts.deckFile)
		if err != nil {
			return nil, false, err
		}
		return cipher.NewFixedSource(deck), true, nil
	}

	if opts.hasSeed {
		return cipher.NewRandomSource(rand.New(rand.NewSource(opts.seed))), true, nil
	}
	return cipher.NewRandomSource(rand.New(rand.NewSource(time.Now().UnixNano()))), false, nil
}

// readMessage joins the remaining arguments, or reads stdin when there are none.
// On a terminal the message is read without echo.
func readMessage(args []string, stdin io.Reader, stderr io.Writer) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if f, ok := stdin.(*os.File); ok && terminal.IsTerminal(int(f.Fd())) {
		fmt.Fprint(stderr, "Enter message: ")
		message, err := terminal.ReadPassword(int(f.Fd()))
		fmt.Fprintln(stderr)
		if err != nil {
			return "", types.WrapError(types.ErrIOError, "reading message from terminal", err)
		}
		return string(message), nil
	}

	message, err := io.ReadAll(stdin)
	if err != nil {
		return "", types.WrapError(types.ErrIOError, "reading message from stdin", err)
	}
	return string(message), nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  solitaire encrypt [flags] [MESSAGE]  - Encrypt MESSAGE or stdin")
	fmt.Fprintln(w, "  solitaire decrypt [flags] [MESSAGE]  - Decrypt MESSAGE or stdin")
	fmt.Fprintln(w, "  solitaire keystream [flags] [-n N]   - Print the first N key values")
	fmt.Fprintln(w, "  solitaire deck [flags]               - Print a deck")
	fmt.Fprintln(w, "  solitaire help                       - Show this help")
	fmt.Fprintln(w, "\nFlags:")
	fmt.Fprintln(w, "  -deck FILE   Deck file, 28 numbers separated by spaces, commas or newlines")
	fmt.Fprintln(w, "  -seed N      Seed for a random deck")
	fmt.Fprintln(w, "  -show-deck   Print the initial deck with the result")
	fmt.Fprintln(w, "\nEnvironment (also read from .env):")
	fmt.Fprintln(w, "  SOLITAIRE_DECK_FILE, SOLITAIRE_SEED, SOLITAIRE_SHOW_DECK, SOLITAIRE_LOG_LEVEL, ENVIRONMENT")
	fmt.Fprintln(w, "\nExamples:")
	fmt.Fprintln(w, "  solitaire deck -seed 42 > deck.txt")
	fmt.Fprintln(w, "  solitaire encrypt -deck deck.txt \"meet at dawn\"")
	fmt.Fprintln(w, "  solitaire encrypt -deck deck.txt < message.txt | solitaire decrypt -deck deck.txt")
}
