package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	firstLaunchKey = "first_launch_done"

	welcomeTitle = "First"
	welcomeBody  = "Hello"
)

type onboardingService struct {
	settings store.SettingsRepository
	gateway  NoteGateway
	logger   *logger.Logger
}

func NewOnboardingService(settings store.SettingsRepository, gateway NoteGateway, logger *logger.Logger) OnboardingService {
	return &onboardingService{
		settings: settings,
		gateway:  gateway,
		logger:   logger,
	}
}

func (s *onboardingService) SeedWelcomeNote(ctx context.Context) (models.Note, bool, error) {
	_, done, err := s.settings.Get(ctx, firstLaunchKey)
	if err != nil {
		return models.Note{}, false, fmt.Errorf("%w: read first launch flag: %w", ErrStorage, err)
	}
	if done {
		return models.Note{}, false, nil
	}

	// The flag goes first: a failed seed loses the welcome note, it never
	// produces a second one.
	if err = s.settings.Set(ctx, firstLaunchKey, "1"); err != nil {
		return models.Note{}, false, fmt.Errorf("%w: write first launch flag: %w", ErrStorage, err)
	}

	note, err := s.gateway.Create(ctx, welcomeTitle, welcomeBody)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "onboardingService.SeedWelcomeNote").Msg("welcome note was not created")
		return models.Note{}, false, err
	}

	s.logger.Info().Str("func", "onboardingService.SeedWelcomeNote").Str("note_id", note.ID).Msg("welcome note created")
	return note, true, nil
}
