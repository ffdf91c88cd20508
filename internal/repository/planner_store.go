package repository

import (
	"context"
	"fmt"
	"strings"

	"fit-planner/internal/model"
)

// PlannerStore maps the planner's logical records onto RecordRepository keys.
type PlannerStore struct {
	records *RecordRepository
}

func NewPlannerStore(records *RecordRepository) *PlannerStore {
	return &PlannerStore{records: records}
}

func ProfileKey(userID uint) string {
	return fmt.Sprintf("user:%d:profile", userID)
}

func HistoryKey(userID uint) string {
	return fmt.Sprintf("user:%d:history", userID)
}

func DailyLogKey(userID uint, date string) string {
	return DailyLogPrefix(userID) + date
}

func ProgressKey(userID uint, date string) string {
	return ProgressPrefix(userID) + date
}

func DailyLogPrefix(userID uint) string {
	return fmt.Sprintf("user:%d:log:", userID)
}

func ProgressPrefix(userID uint) string {
	return fmt.Sprintf("user:%d:progress:", userID)
}

func (s *PlannerStore) LoadProfile(ctx context.Context, userID uint) (model.UserProfile, bool, error) {
	var profile model.UserProfile
	found, err := s.records.Get(ctx, ProfileKey(userID), &profile)
	return profile, found, err
}

func (s *PlannerStore) SaveProfile(ctx context.Context, userID uint, profile model.UserProfile) error {
	return s.records.Put(ctx, userID, ProfileKey(userID), profile)
}

// LoadHistory returns the newest-first history collection.
func (s *PlannerStore) LoadHistory(ctx context.Context, userID uint) ([]model.HistoryEntry, bool, error) {
	var entries []model.HistoryEntry
	found, err := s.records.Get(ctx, HistoryKey(userID), &entries)
	return entries, found, err
}

func (s *PlannerStore) SaveHistory(ctx context.Context, userID uint, entries []model.HistoryEntry) error {
	if entries == nil {
		entries = []model.HistoryEntry{}
	}
	return s.records.Put(ctx, userID, HistoryKey(userID), entries)
}

func (s *PlannerStore) LoadDailyLog(ctx context.Context, userID uint, date string) (model.DailyLog, bool, error) {
	var log model.DailyLog
	found, err := s.records.Get(ctx, DailyLogKey(userID, date), &log)
	return log, found, err
}

func (s *PlannerStore) SaveDailyLog(ctx context.Context, userID uint, date string, log model.DailyLog) error {
	return s.records.Put(ctx, userID, DailyLogKey(userID, date), log)
}

// LoadProgress returns the completed task ids recorded for date.
func (s *PlannerStore) LoadProgress(ctx context.Context, userID uint, date string) ([]string, error) {
	var ids []string
	if _, err := s.records.Get(ctx, ProgressKey(userID, date), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *PlannerStore) SaveProgress(ctx context.Context, userID uint, date string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return s.records.Put(ctx, userID, ProgressKey(userID, date), ids)
}

// ReplaceProfileAndHistory swaps both records atomically.
func (s *PlannerStore) ReplaceProfileAndHistory(ctx context.Context, userID uint, profile model.UserProfile, entries []model.HistoryEntry) error {
	if entries == nil {
		entries = []model.HistoryEntry{}
	}
	err := s.records.PutAll(ctx, userID, map[string]any{
		ProfileKey(userID): profile,
		HistoryKey(userID): entries,
	})
	if err != nil {
		return fmt.Errorf("replace profile and history: %w", err)
	}
	return nil
}

// ClearHistory stores an empty history and deletes the log and progress records
// of every date except keepDate. It returns the number of deleted records.
func (s *PlannerStore) ClearHistory(ctx context.Context, userID uint, keepDate string) (int, error) {
	if err := s.SaveHistory(ctx, userID, nil); err != nil {
		return 0, err
	}
	removed := 0
	for _, prefix := range []string{DailyLogPrefix(userID), ProgressPrefix(userID)} {
		keys, err := s.records.ListKeys(ctx, userID, prefix)
		if err != nil {
			return removed, err
		}
		for _, key := range keys {
			if strings.TrimPrefix(key, prefix) == keepDate {
				continue
			}
			if err := s.records.Delete(ctx, key); err != nil {
				return removed, err
			}
			removed++
		}
	}
	return removed, nil
}
