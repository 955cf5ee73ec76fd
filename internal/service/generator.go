package service

import (
	"github.com/passmint/passmint-go/internal/crypto"
	"github.com/passmint/passmint-go/internal/model"
)

const defaultLength = 16

// GeneratorService handles password generation and strength scoring.
type GeneratorService struct {
	gen *crypto.Generator
}

// NewGeneratorService creates a new GeneratorService. A nil generator
// falls back to one backed by the operating system's entropy source.
func NewGeneratorService(gen *crypto.Generator) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &GeneratorService{gen: gen}
}

// Generate produces a password based on the given request. Omitted
// category flags default to enabled and an omitted length defaults to
// 16 characters.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Digits:    boolOrDefault(req.Digits, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	if opts.Length == 0 {
		opts.Length = defaultLength
	}

	password, err := s.gen.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	strength := crypto.Score(password, opts)

	return model.GenerateResponse{
		Password: password,
		Length:   opts.Length,
		Strength: model.StrengthResponse{
			Score: strength.Score,
			Label: strength.Label,
		},
	}, nil
}

// Strength scores a hypothetical password shape without ever seeing a
// password. Flags left out of the request count as disabled.
func (s *GeneratorService) Strength(req model.StrengthRequest) model.StrengthResponse {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: req.Uppercase,
		Lowercase: req.Lowercase,
		Digits:    req.Digits,
		Symbols:   req.Symbols,
	}

	result := crypto.ScoreLength(req.Length, opts)

	return model.StrengthResponse{
		Score: result.Score,
		Label: result.Label,
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
