package cipher

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fadedpez/solitaire/internal/logging"
	"github.com/fadedpez/solitaire/internal/types"
	"github.com/fadedpez/solitaire/pkg/solitaire"
	"github.com/google/uuid"
)

// Mode identifies what a job did
type Mode string

const (
	ModeEncrypt   Mode = "ENCRYPT"
	ModeDecrypt   Mode = "DECRYPT"
	ModeKeyStream Mode = "KEYSTREAM"
)

// Result describes one completed job
type Result struct {
	ID          string    `json:"id"`
	Mode        Mode      `json:"mode"`
	Output      string    `json:"output"`
	Letters     int       `json:"letters"`
	Keys        []int     `json:"keys,omitempty"`
	InitialDeck string    `json:"initial_deck"`
	CompletedAt time.Time `json:"completed_at"`
}

// Service runs cipher jobs, each on its own deck
type Service struct {
	source DeckSource
	logger *logging.Logger
}

// NewService creates a new cipher service
func NewService(source DeckSource, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default
	}
	return &Service{
		source: source,
		logger: logger,
	}
}

// Encrypt enciphers text on a fresh deck
func (s *Service) Encrypt(text string) (*Result, error) {
	return s.run(ModeEncrypt, text, solitaire.Encrypt)
}

// Decrypt deciphers text on a fresh deck
func (s *Service) Decrypt(text string) (*Result, error) {
	return s.run(ModeDecrypt, text, solitaire.Decrypt)
}

// KeyStream returns the first n key values of a fresh deck
func (s *Service) KeyStream(n int) (*Result, error) {
	if n < 0 {
		err := types.NewCipherError(types.ErrInvalidArgument, fmt.Sprintf("key count must not be negative, got %d", n))
		s.logger.LogError(err)
		return nil, err
	}

	result, deck, err := s.start(ModeKeyStream)
	if err != nil {
		return nil, err
	}

	keys := make([]int, 0, n)
	for i := 0; i < n; i++ {
		key, err := deck.NextKeyValue()
		if err != nil {
			return nil, s.fail(result, err)
		}
		keys = append(keys, key)
	}

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	result.Keys = keys
	result.Output = strings.Join(parts, ",")

	return s.finish(result, deck), nil
}

func (s *Service) run(mode Mode, text string, codec func(string, solitaire.KeyStream) (string, error)) (*Result, error) {
	result, deck, err := s.start(mode)
	if err != nil {
		return nil, err
	}

	output, err := codec(text, deck)
	if err != nil {
		return nil, s.fail(result, err)
	}
	result.Output = output
	result.Letters = len(output)

	return s.finish(result, deck), nil
}

// start draws a deck and opens a job record for it
func (s *Service) start(mode Mode) (*Result, *solitaire.Deck, error) {
	deck, err := s.source.NewDeck()
	if err != nil {
		s.logger.LogError(err)
		return nil, nil, err
	}
	if deck == nil {
		err := types.NewCipherError(types.ErrInternalError, "deck source returned no deck")
		s.logger.LogError(err)
		return nil, nil, err
	}

	result := &Result{
		ID:          uuid.New().String(),
		Mode:        mode,
		InitialDeck: deck.String(),
	}
	s.logger.Debug("[CIPHER] Job %s: %s starting from deck %s", result.ID, mode, result.InitialDeck)

	return result, deck, nil
}

func (s *Service) finish(result *Result, deck *solitaire.Deck) *Result {
	result.CompletedAt = time.Now()
	s.logger.Info("[CIPHER] Job %s: %s produced %d characters", result.ID, result.Mode, len(result.Output))
	s.logger.Debug("[CIPHER] Job %s: final deck %s", result.ID, deck.String())
	return result
}

func (s *Service) fail(result *Result, err error) error {
	s.logger.Error("[CIPHER] Job %s: %s failed", result.ID, result.Mode)
	s.logger.LogError(err)
	return err
}
