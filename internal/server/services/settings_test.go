package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingService_BulkUpsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &fakeSettings{}
	s := NewSettingService(db, &fakeManager{settings: repo}, testConfig())

	mock.ExpectBegin()
	mock.ExpectCommit()

	got, err := s.BulkUpsert(context.Background(), []models.Setting{
		{Key: "site_title", Value: "Portfolio"},
		{Key: "theme", Value: "dark", Category: "ui"},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "general", got[0].Category)
	assert.Equal(t, "ui", got[1].Category)
}

func TestSettingService_BulkUpsert_FailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &fakeSettings{failKey: "b"}
	s := NewSettingService(db, &fakeManager{settings: repo}, testConfig())

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := s.BulkUpsert(context.Background(), []models.Setting{{Key: "a"}, {Key: "b"}})
	require.ErrorIs(t, err, common.ErrorInternal)
	assert.ErrorContains(t, err, `upsert "b"`)
}

func TestSettingService_BulkUpsert_MissingKey(t *testing.T) {
	s := NewSettingService(nil, &fakeManager{settings: &fakeSettings{}}, testConfig())

	_, err := s.BulkUpsert(context.Background(), []models.Setting{{Key: "a"}, {Value: "x"}})
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Equal(t, "setting 1: key is required", common.Detail(err, common.ErrorValidation))
}

func TestSettingService_Upsert_RequiresKey(t *testing.T) {
	s := NewSettingService(nil, &fakeManager{settings: &fakeSettings{}}, testConfig())

	_, err := s.Upsert(context.Background(), models.Setting{Value: "x"})
	assert.ErrorIs(t, err, common.ErrorValidation)
}
