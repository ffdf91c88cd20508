package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"fit-planner/internal/model"
)

// ErrMalformedImport is returned when a backup document cannot be restored.
var ErrMalformedImport = errors.New("invalid backup file")

// Backup is the exported document.
type Backup struct {
	User    model.UserProfile    `json:"user"`
	History []model.HistoryEntry `json:"history"`
}

// BackupService exports and restores profile and history.
type BackupService struct {
	planner *PlannerService
}

func NewBackupService(planner *PlannerService) *BackupService {
	return &BackupService{planner: planner}
}

// Export serializes the user's profile and history as indented JSON.
func (s *BackupService) Export(ctx context.Context, userID uint) ([]byte, error) {
	profile, err := s.planner.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.planner.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.HistoryEntry{}
	}
	out, err := json.MarshalIndent(Backup{User: profile, History: entries}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return out, nil
}

// Restore replaces both records from data. Nothing is written unless the
// document parses and carries both top-level keys.
func (s *BackupService) Restore(ctx context.Context, userID uint, data []byte) error {
	backup, err := ParseBackup(data)
	if err != nil {
		return err
	}
	if err := s.planner.Replace(ctx, userID, backup.User, backup.History); err != nil {
		return err
	}
	log.Printf("[info] backup restored user=%d entries=%d", userID, len(backup.History))
	return nil
}

// ParseBackup validates and decodes a backup document.
func ParseBackup(data []byte) (Backup, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Backup{}, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	userRaw, okUser := raw["user"]
	historyRaw, okHistory := raw["history"]
	if !okUser || !okHistory || isNull(userRaw) || isNull(historyRaw) {
		return Backup{}, fmt.Errorf("%w: both \"user\" and \"history\" are required", ErrMalformedImport)
	}

	var backup Backup
	if err := json.Unmarshal(userRaw, &backup.User); err != nil {
		return Backup{}, fmt.Errorf("%w: user: %v", ErrMalformedImport, err)
	}
	if err := json.Unmarshal(historyRaw, &backup.History); err != nil {
		return Backup{}, fmt.Errorf("%w: history: %v", ErrMalformedImport, err)
	}
	seen := make(map[string]struct{}, len(backup.History))
	for _, e := range backup.History {
		if _, dup := seen[e.Date]; dup {
			return Backup{}, fmt.Errorf("%w: history has more than one entry for %s", ErrMalformedImport, e.Date)
		}
		seen[e.Date] = struct{}{}
	}
	return backup, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
