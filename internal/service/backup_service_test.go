package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fit-planner/internal/model"
	"fit-planner/internal/service"
)

func TestBackupService_ExportRestoreRoundTrip(t *testing.T) {
	svc, _ := newPlanner(t, mondayClock())
	backup := service.NewBackupService(svc)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, 1, func(p *model.UserProfile) {
		p.Name = "Ravi"
		p.Weight = 72.5
	})
	require.NoError(t, err)

	data, err := backup.Export(ctx, 1)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "user")
	assert.Contains(t, doc, "history")

	require.NoError(t, backup.Restore(ctx, 2, data))

	profile, err := svc.Profile(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", profile.Name)
	assert.Equal(t, 72.5, profile.Weight)

	want, err := svc.History(ctx, 1)
	require.NoError(t, err)
	got, err := svc.History(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBackupService_RestoreReplacesCachedSession(t *testing.T) {
	svc, _ := newPlanner(t, mondayClock())
	backup := service.NewBackupService(svc)
	ctx := context.Background()

	view, err := svc.Today(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, model.ModeHome, view.Plan.Mode)

	doc := `{"user":{"name":"Gym Rat","equipment":"Gym","kegelLevel":2},"history":[]}`
	require.NoError(t, backup.Restore(ctx, 1, []byte(doc)))

	view, err = svc.Today(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.ModeGym, view.Plan.Mode)
	require.NotNil(t, view.Plan.Morning[3].Exercise)
	assert.Equal(t, "kegel-pulsing", view.Plan.Morning[3].Exercise.ID)

	entries, err := svc.History(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBackupService_MalformedRestoreWritesNothing(t *testing.T) {
	svc, _ := newPlanner(t, mondayClock())
	backup := service.NewBackupService(svc)
	ctx := context.Background()

	before, err := svc.Profile(ctx, 1)
	require.NoError(t, err)
	beforeHistory, err := svc.History(ctx, 1)
	require.NoError(t, err)

	for name, doc := range map[string]string{
		"not json":      `{"user":`,
		"missing user":  `{"history":[]}`,
		"missing hist":  `{"user":{"name":"x"}}`,
		"null history":  `{"user":{"name":"x"},"history":null}`,
		"wrong types":   `{"user":[],"history":{}}`,
		"top-level arr": `[]`,
		"repeated date": `{"user":{"name":"x"},"history":[{"date":"2026-10-19","tasksCompleted":1},{"date":"2026-10-19","tasksCompleted":2}]}`,
	} {
		err := backup.Restore(ctx, 1, []byte(doc))
		assert.ErrorIs(t, err, service.ErrMalformedImport, name)
	}

	after, err := svc.Profile(ctx, 1)
	require.NoError(t, err)
	afterHistory, err := svc.History(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, beforeHistory, afterHistory)
}

func TestParseBackup_RejectsRepeatedDate(t *testing.T) {
	doc := `{"user":{},"history":[{"date":"2026-10-18"},{"date":"2026-10-19"},{"date":"2026-10-18"}]}`

	_, err := service.ParseBackup([]byte(doc))
	require.ErrorIs(t, err, service.ErrMalformedImport)
	assert.Contains(t, err.Error(), "2026-10-18")
}
