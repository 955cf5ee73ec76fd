package crypto

import (
	"errors"
	"fmt"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// MinLength and MaxLength bound the accepted password length.
	MinLength = 4
	MaxLength = 50
)

// ErrNoCategorySelected is returned when generation is requested with every
// character category disabled.
var ErrNoCategorySelected = errors.New("at least one character category must be selected")

// InvalidLengthError reports a requested password length outside
// [MinLength, MaxLength].
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("password length must be between %d and %d, got %d", MinLength, MaxLength, e.Length)
}

// Category identifies one class of characters a password may draw from.
type Category int

const (
	Uppercase Category = iota
	Lowercase
	Digit
	Symbol
)

// categoryOrder fixes the order in which enabled categories contribute their
// guaranteed character. It also fixes the layout of the combined pool, which
// keeps generation reproducible under a deterministic Source.
var categoryOrder = [...]Category{Uppercase, Lowercase, Digit, Symbol}

// alphabet returns the category's fixed character set.
func (c Category) alphabet() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Digit:
		return digitChars
	case Symbol:
		return symbolChars
	}
	return ""
}

// GeneratorOptions configures password generation.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
}

// DefaultOptions returns the service defaults: 16 characters with every
// category enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// enabled reports whether the flag for the given category is set.
func (o GeneratorOptions) enabled(c Category) bool {
	switch c {
	case Uppercase:
		return o.Uppercase
	case Lowercase:
		return o.Lowercase
	case Digit:
		return o.Digits
	case Symbol:
		return o.Symbols
	}
	return false
}

// categoryCount returns how many categories are enabled.
func (o GeneratorOptions) categoryCount() int {
	n := 0
	for _, c := range categoryOrder {
		if o.enabled(c) {
			n++
		}
	}
	return n
}

// Validate checks the options against the generation invariants: a length
// within [MinLength, MaxLength] and at least one enabled category.
func (o GeneratorOptions) Validate() error {
	if o.Length < MinLength || o.Length > MaxLength {
		return &InvalidLengthError{Length: o.Length}
	}
	if o.categoryCount() == 0 {
		return ErrNoCategorySelected
	}
	return nil
}

// Generator produces passwords from an injected Source of randomness.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing from src. A nil src selects the
// crypto/rand-backed CryptoSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(nil)

// Generate creates a password using the crypto/rand-backed source.
func Generate(opts GeneratorOptions) (string, error) {
	return defaultGenerator.Generate(opts)
}

// Generate builds a password of exactly opts.Length characters drawn from
// the enabled category alphabets.
//
// One character of each enabled category is guaranteed, consulting
// categories in the fixed order Uppercase, Lowercase, Digit, Symbol. If the
// length cannot cover every enabled category, the first min(categories,
// length) categories in that order still contribute one character each. The
// guaranteed characters are shuffled among themselves, the remaining
// positions are filled from the combined pool, and a final shuffle of the
// whole sequence leaves every position uniformly distributed.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	var sets []string
	var pool string
	for _, c := range categoryOrder {
		if opts.enabled(c) {
			sets = append(sets, c.alphabet())
			pool += c.alphabet()
		}
	}

	required := min(len(sets), opts.Length)
	password := make([]byte, 0, opts.Length)
	for _, set := range sets[:required] {
		ch, err := g.pick(set)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}
	if err := g.shuffle(password); err != nil {
		return "", err
	}

	for len(password) < opts.Length {
		ch, err := g.pick(pool)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	if err := g.shuffle(password); err != nil {
		return "", err
	}

	return string(password), nil
}

// pick returns one uniformly chosen character from alphabet.
func (g *Generator) pick(alphabet string) (byte, error) {
	i, err := g.intN(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

// shuffle permutes b in place with an unbiased Fisher-Yates pass.
func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intN(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// intN draws from the source, folding any failure into
// ErrEntropyUnavailable so callers can recognize entropy exhaustion
// regardless of the underlying source.
func (g *Generator) intN(n int) (int, error) {
	v, err := g.src.IntN(n)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return v, nil
}
