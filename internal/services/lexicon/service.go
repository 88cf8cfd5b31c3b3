package lexicon

import (
	"bufio"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/wordlive/internal/models"
)

//go:embed data/answers.txt
var embeddedAnswers string

//go:embed data/allowed.txt
var embeddedAllowed string

//go:embed data/definitions.json
var embeddedDefinitions []byte

// service implements the Service interface over in-memory word sets
type service struct {
	answersByLength map[int][]string
	allowed         map[string]struct{}
	definitions     map[string]*models.Definition

	mu     sync.Mutex
	random *rand.Rand
}

// New creates a lexicon service from the embedded lists, replacing each list
// whose override file is configured
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	answers, err := loadWords(cfg.AnswersFile, embeddedAnswers)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}

	extra, err := loadWords(cfg.AllowedFile, embeddedAllowed)
	if err != nil {
		return nil, fmt.Errorf("failed to load allowed words: %w", err)
	}

	definitions, err := loadDefinitions(cfg.DefinitionsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load definitions: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &service{
		answersByLength: make(map[int][]string),
		allowed:         make(map[string]struct{}, len(answers)+len(extra)),
		definitions:     definitions,
		random:          rand.New(rand.NewSource(seed)),
	}

	// Every answer is also an accepted guess
	for _, w := range answers {
		if _, dup := s.allowed[w]; dup {
			continue
		}
		s.allowed[w] = struct{}{}
		n := len(w)
		s.answersByLength[n] = append(s.answersByLength[n], w)
	}
	for _, w := range extra {
		s.allowed[w] = struct{}{}
	}

	return s, nil
}

// RandomWord returns a random answer of the requested length
func (s *service) RandomWord(ctx context.Context, input *RandomWordInput) (*RandomWordOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Length <= 0 {
		return nil, ErrInvalidLength
	}

	words := s.answersByLength[input.Length]
	if len(words) == 0 {
		return nil, ErrNoWords
	}

	s.mu.Lock()
	idx := s.random.Intn(len(words))
	s.mu.Unlock()

	return &RandomWordOutput{
		Word: words[idx],
	}, nil
}

// ValidateWord reports whether the word is in the accepted set
func (s *service) ValidateWord(ctx context.Context, input *ValidateWordInput) (*ValidateWordOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	_, ok := s.allowed[normalize(input.Word)]
	return &ValidateWordOutput{
		Valid: ok,
	}, nil
}

// GetDefinition returns the known definition for a word, or a nil definition
func (s *service) GetDefinition(ctx context.Context, input *GetDefinitionInput) (*GetDefinitionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	return &GetDefinitionOutput{
		Definition: s.definitions[normalize(input.Word)],
	}, nil
}

// loadWords reads the override file when set, otherwise parses the embedded list
func loadWords(path, embedded string) ([]string, error) {
	if path == "" {
		return parseWords(strings.NewReader(embedded))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parseWords(f)
}

// parseWords keeps one alphabetic word per line, uppercased.
// Blank lines and lines starting with # are skipped.
func parseWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w := normalize(line)
		if IsAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

func loadDefinitions(path string) (map[string]*models.Definition, error) {
	data := embeddedDefinitions
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	raw := make(map[string]*models.Definition)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	definitions := make(map[string]*models.Definition, len(raw))
	for word, def := range raw {
		if def == nil {
			continue
		}
		definitions[normalize(word)] = def
	}
	return definitions, nil
}

func normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

// IsAlpha reports whether s is a non-empty string of ASCII letters
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
