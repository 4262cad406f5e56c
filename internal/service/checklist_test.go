package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/pop_field_ops/internal/models"
	"github.com/shenikar/pop_field_ops/internal/repository/memory"
)

func newTestChecklistService(t *testing.T) (*ChecklistService, *testClock) {
	t.Helper()
	clock := &testClock{now: t0}
	svc := NewChecklistService(memory.NewStore().Checklists, Deps{
		Logger: newTestLogger(),
		Now:    clock.Now,
	})
	return svc, clock
}

func TestChecklistCreate_DerivesStatusAndProgress(t *testing.T) {
	svc, _ := newTestChecklistService(t)

	cl := &models.Checklist{
		Title:  "Manutenção preventiva",
		POPID:  1,
		Status: models.ChecklistStatusCompleted, // игнорируется: статус выводится из пунктов
		Items: []models.ChecklistItem{
			{Description: "Verificar baterias", Checked: true},
			{Description: "Limpar filtros"},
		},
	}
	require.NoError(t, svc.Create(context.Background(), cl))

	assert.Equal(t, 50, cl.Progress)
	assert.Equal(t, models.ChecklistStatusInProgress, cl.Status)
}

func TestSetItem(t *testing.T) {
	svc, clock := newTestChecklistService(t)
	ctx := context.Background()

	cl := &models.Checklist{
		Title: "Inspeção mensal",
		POPID: 3,
		Items: []models.ChecklistItem{
			{Description: "Nível de combustível"},
			{Description: "Alarmes"},
		},
	}
	require.NoError(t, svc.Create(ctx, cl))
	assert.Equal(t, models.ChecklistStatusPending, cl.Status)

	clock.now = t1
	notes := "Tanque a 80%"
	got, err := svc.SetItem(ctx, cl.ID, 0, true, &notes)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Progress)
	assert.Equal(t, models.ChecklistStatusInProgress, got.Status)
	assert.Equal(t, "Tanque a 80%", got.Items[0].Notes)
	assert.Equal(t, t0, got.CreatedAt)
	assert.Equal(t, t1, got.UpdatedAt)

	got, err = svc.SetItem(ctx, cl.ID, 1, true, nil)
	require.NoError(t, err)
	assert.Equal(t, 100, got.Progress)
	assert.Equal(t, models.ChecklistStatusCompleted, got.Status)
	assert.Equal(t, "Tanque a 80%", got.Items[0].Notes)

	got, err = svc.SetItem(ctx, cl.ID, 0, false, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ChecklistStatusInProgress, got.Status)
}

func TestSetItem_Errors(t *testing.T) {
	svc, _ := newTestChecklistService(t)
	ctx := context.Background()

	cl := &models.Checklist{Title: "Vazio", POPID: 1, Items: []models.ChecklistItem{{Description: "Único"}}}
	require.NoError(t, svc.Create(ctx, cl))

	tests := []struct {
		name     string
		id       int64
		index    int
		wantCode ErrorCode
	}{
		{"unknown checklist", 99, 0, ErrorCodeNotFound},
		{"index out of range", cl.ID, 1, ErrorCodeInvalidBody},
		{"negative index", cl.ID, -1, ErrorCodeInvalidBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SetItem(ctx, tt.id, tt.index, true, nil)
			var svcErr *Error
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, tt.wantCode, svcErr.Code)
		})
	}
}
