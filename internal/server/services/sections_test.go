package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const setSectionOrder = `UPDATE project_sections SET sort_order = \$2 WHERE id = \$1`

func TestSectionService_Reorder(t *testing.T) {
	db, mock, m := newPostgresMock(t)
	s := NewSectionService(db, m, testConfig())

	mock.ExpectBegin()
	mock.ExpectExec(setSectionOrder).WithArgs("s2", 0).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(setSectionOrder).WithArgs("s1", 1).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Reorder(context.Background(), []models.SectionOrder{{ID: "s2", Order: 0}, {ID: "s1", Order: 1}})
	require.NoError(t, err)
}

func TestSectionService_Reorder_UnknownSectionRollsBack(t *testing.T) {
	db, mock, m := newPostgresMock(t)
	s := NewSectionService(db, m, testConfig())

	mock.ExpectBegin()
	mock.ExpectExec(setSectionOrder).WithArgs("s1", 0).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(setSectionOrder).WithArgs("ghost", 1).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.Reorder(context.Background(), []models.SectionOrder{
		{ID: "s1", Order: 0},
		{ID: "ghost", Order: 1},
		{ID: "s3", Order: 2},
	})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSectionService_Reorder_MissingID(t *testing.T) {
	s := NewSectionService(nil, &fakeManager{}, testConfig())

	err := s.Reorder(context.Background(), []models.SectionOrder{{ID: "s1"}, {Order: 1}})
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Equal(t, "item 1: id is required", common.Detail(err, common.ErrorValidation))
}
