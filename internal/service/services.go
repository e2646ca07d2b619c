package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

// LocalServices groups every service used by the terminal UI.
type LocalServices struct {
	NoteGateway          NoteGateway
	AttachmentService    AttachmentService
	OnboardingService    OnboardingService
	AttachmentCleanupJob AttachmentCleanupJob
}

func NewLocalServices(storages *store.LocalStorages, cfg *config.ClientConfig, logger *logger.Logger) *LocalServices {
	gateway := NewNoteGateway(storages.NoteRepository, CommitPolicy(cfg.App.CommitPolicy), logger)

	return &LocalServices{
		NoteGateway:          gateway,
		AttachmentService:    NewAttachmentService(storages.AttachmentRepository, storages.NoteRepository, cfg.Storage.Attachments.MaxSize, logger),
		OnboardingService:    NewOnboardingService(storages.SettingsRepository, gateway, logger),
		AttachmentCleanupJob: NewAttachmentCleanupJob(storages.AttachmentRepository, logger),
	}
}
