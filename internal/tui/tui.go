// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal screens of the notes application: the
// note list (search, create, open) and the note edit screen.
//
// The edit screen commits through service.NoteGateway and announces every
// mutation on an events.Bus; the list screen renders the snapshot kept by a
// listsync.Synchronizer subscribed to that bus.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/events"
	"github.com/MKhiriev/go-notes-keeper/internal/listsync"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrMissingDependency is returned by New when a required collaborator is nil.
var ErrMissingDependency = errors.New("tui: missing dependency")

// TUI runs the bubbletea program over the application services.
type TUI struct {
	services  *service.LocalServices
	bus       *events.Bus
	notes     *listsync.Synchronizer
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New validates the collaborators and returns a TUI. notes must already be
// subscribed to bus.
func New(services *service.LocalServices, bus *events.Bus, notes *listsync.Synchronizer, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.NoteGateway == nil || services.AttachmentService == nil || bus == nil || notes == nil {
		return nil, ErrMissingDependency
	}
	return &TUI{
		services:  services,
		bus:       bus,
		notes:     notes,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.bus, t.notes, t.buildInfo, t.logger)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if _, ok := finalModel.(appModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
