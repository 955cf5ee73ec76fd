package service

import (
	"context"
	"errors"

	"github.com/passmint/passmint-go/internal/crypto"
	"github.com/passmint/passmint-go/internal/model"
	"github.com/passmint/passmint-go/internal/repository"
)

// PreferencesService handles saved generator configurations.
type PreferencesService struct {
	repo *repository.PreferencesRepository
}

// NewPreferencesService creates a new PreferencesService.
func NewPreferencesService(repo *repository.PreferencesRepository) *PreferencesService {
	return &PreferencesService{repo: repo}
}

// Get returns the account's saved configuration. Accounts that never
// saved one get the service defaults with Saved set to false.
func (s *PreferencesService) Get(ctx context.Context, userID int64) (model.PreferencesResponse, error) {
	prefs, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			opts := crypto.DefaultOptions()
			return model.PreferencesResponse{
				Length:    opts.Length,
				Uppercase: opts.Uppercase,
				Lowercase: opts.Lowercase,
				Digits:    opts.Digits,
				Symbols:   opts.Symbols,
				Saved:     false,
			}, nil
		}
		return model.PreferencesResponse{}, err
	}

	return preferencesToResponse(prefs), nil
}

// Save validates and stores the account's configuration. The same rules
// apply as for generation, so a saved configuration always generates.
func (s *PreferencesService) Save(ctx context.Context, userID int64, req model.PreferencesRequest) (model.PreferencesResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: req.Uppercase,
		Lowercase: req.Lowercase,
		Digits:    req.Digits,
		Symbols:   req.Symbols,
	}
	if err := opts.Validate(); err != nil {
		return model.PreferencesResponse{}, err
	}

	prefs := &model.Preferences{
		UserID:    userID,
		Length:    req.Length,
		Uppercase: req.Uppercase,
		Lowercase: req.Lowercase,
		Digits:    req.Digits,
		Symbols:   req.Symbols,
	}

	if err := s.repo.Upsert(ctx, prefs); err != nil {
		return model.PreferencesResponse{}, err
	}

	return preferencesToResponse(prefs), nil
}

func preferencesToResponse(prefs *model.Preferences) model.PreferencesResponse {
	return model.PreferencesResponse{
		Length:    prefs.Length,
		Uppercase: prefs.Uppercase,
		Lowercase: prefs.Lowercase,
		Digits:    prefs.Digits,
		Symbols:   prefs.Symbols,
		Saved:     true,
	}
}
