package postgres

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/pop_field_ops/internal/models"
)

func buildWhere(t *testing.T, where []bob.Expression) (string, []any) {
	t.Helper()
	mods := []bob.Mod[*dialect.SelectQuery]{sm.Columns("id"), sm.From("pops")}
	for _, w := range where {
		mods = append(mods, sm.Where(w))
	}
	sql, args, err := psql.Select(mods...).Build(context.Background())
	require.NoError(t, err)
	return sql, args
}

func TestConditions_SearchAndFilter(t *testing.T) {
	table := newTable[models.POP](nil, popSchema)

	where := table.conditions(models.ListQuery{
		Search:  "centro",
		Filters: map[string]string{"status": "active"},
	})
	require.Len(t, where, 2)

	sql, args := buildWhere(t, where)
	assert.Contains(t, sql, "name ILIKE")
	assert.Contains(t, sql, "code ILIKE")
	assert.Contains(t, sql, "city ILIKE")
	assert.Contains(t, sql, "status::text =")
	assert.Contains(t, args, "%centro%")
	assert.Contains(t, args, "active")
}

func TestConditions_IgnoresUnknownFilters(t *testing.T) {
	table := newTable[models.POP](nil, popSchema)

	where := table.conditions(models.ListQuery{Filters: map[string]string{"pop_id": "1"}})

	assert.Empty(t, where)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\tmp`, escapeLike(`c:\tmp`))
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: uniqueViolation}

	assert.True(t, isUniqueViolation(pgErr))
	assert.True(t, isUniqueViolation(errors.Wrap(pgErr, "insert")))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
}

func TestNullString_Scan(t *testing.T) {
	var s string
	require.NoError(t, nullString{&s}.Scan("SN-1"))
	assert.Equal(t, "SN-1", s)

	require.NoError(t, nullString{&s}.Scan(nil))
	assert.Equal(t, "", s)

	require.NoError(t, nullString{&s}.Scan([]byte("SN-2")))
	assert.Equal(t, "SN-2", s)
}

func TestGeneratorSchema_EmptySerialIsNull(t *testing.T) {
	vals := generatorSchema.values(&models.Generator{POPID: 1, Model: "G"})
	serial, ok := vals[3].(*string)
	require.True(t, ok)
	assert.Nil(t, serial)

	vals = generatorSchema.values(&models.Generator{POPID: 1, Model: "G", SerialNumber: "SN-9"})
	serial = vals[3].(*string)
	require.NotNil(t, serial)
	assert.Equal(t, "SN-9", *serial)
}

func TestInsertQuery(t *testing.T) {
	table := newTable[models.POP](nil, popSchema)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	pop := &models.POP{Name: "POP Centro", Code: "POP-001", City: "Recife", Status: models.POPStatusActive}
	pop.SetTimestamps(now, now)

	sql, args, err := table.insertQuery(pop).Build(context.Background())
	require.NoError(t, err)

	assert.Contains(t, sql, `INSERT INTO pops("created_at", "updated_at", "name", "code", "address", "city", "state", "latitude", "longitude", "status", "notes")`)
	assert.Contains(t, sql, "VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)")
	assert.Contains(t, sql, "RETURNING id")
	require.Len(t, args, 11)
	assert.Equal(t, now, args[0])
	assert.Equal(t, "POP Centro", args[2])
	assert.Equal(t, "POP-001", args[3])
}

func TestUpdateQuery(t *testing.T) {
	table := newTable[models.Technician](nil, technicianSchema)
	updated := time.Date(2026, 3, 12, 15, 30, 0, 0, time.UTC)
	tech := &models.Technician{Name: "Ana", Email: "ana@example.com", Status: "active"}
	tech.SetID(7)
	tech.SetTimestamps(time.Time{}, updated)

	sql, args, err := table.updateQuery(tech).Build(context.Background())
	require.NoError(t, err)

	assert.Contains(t, sql, "UPDATE technicians")
	assert.Contains(t, sql, `"name" = $1`)
	assert.Contains(t, sql, `"region" = $6`)
	assert.Contains(t, sql, `"updated_at" = $7`)
	assert.Contains(t, sql, `WHERE "id" = $8`)
	// created_at не перезаписывается
	assert.NotContains(t, sql, "created_at")
	require.Len(t, args, 8)
	assert.Equal(t, "ana@example.com", args[1])
	assert.Equal(t, updated, args[6])
	assert.Equal(t, int64(7), args[7])
}

func TestSelectAndDeleteByIDQuery(t *testing.T) {
	table := newTable[models.Supply](nil, supplySchema)

	sql, args, err := table.selectByIDQuery(3).Build(context.Background())
	require.NoError(t, err)
	assert.Contains(t, sql, "id, created_at, updated_at, pop_id, generator_id, fuel_type")
	assert.Contains(t, sql, "FROM supplies")
	assert.Contains(t, sql, `WHERE "id" = $1`)
	assert.Equal(t, []any{int64(3)}, args)

	sql, args, err = table.deleteQuery(3).Build(context.Background())
	require.NoError(t, err)
	assert.Contains(t, sql, "DELETE FROM supplies")
	assert.Contains(t, sql, `WHERE "id" = $1`)
	assert.Equal(t, []any{int64(3)}, args)
}

func TestPageQuery(t *testing.T) {
	table := newTable[models.Activity](nil, activitySchema)
	q := models.ListQuery{Page: 3, Limit: 10, Filters: map[string]string{"status": "pending", "pop_id": "2"}}

	sql, args, err := table.pageQuery(q).Build(context.Background())
	require.NoError(t, err)
	assert.Contains(t, sql, "FROM activities")
	assert.Contains(t, sql, "ORDER BY id")
	assert.Contains(t, sql, "LIMIT 10")
	assert.Contains(t, sql, "OFFSET 20")
	// фильтры идут в порядке ключей
	assert.Equal(t, []any{"2", "pending"}, args)

	sql, args, err = table.countQuery(q).Build(context.Background())
	require.NoError(t, err)
	assert.Contains(t, sql, "count(*)")
	assert.NotContains(t, sql, "LIMIT")
	assert.Equal(t, []any{"2", "pending"}, args)
}

func TestPageQuery_HugePage(t *testing.T) {
	table := newTable[models.POP](nil, popSchema)

	sql, _, err := table.pageQuery(models.ListQuery{Page: 1000000000000000000, Limit: 10}).Build(context.Background())
	require.NoError(t, err)
	assert.Contains(t, sql, "OFFSET 9223372036854775807")
	assert.NotContains(t, sql, "OFFSET -")
	assert.Equal(t, math.MaxInt, models.ListQuery{Page: 1000000000000000000, Limit: 10}.Offset())
}

func TestChecklistSchema_ItemsJSONBRoundTrip(t *testing.T) {
	m := pgtype.NewMap()
	itemsCol := 5
	require.Equal(t, "items", checklistSchema.columns[itemsCol])

	src := &models.Checklist{Title: "Mensal", POPID: 1, Items: []models.ChecklistItem{
		{Description: "Verificar baterias", Checked: true, Notes: "ok"},
		{Description: "Limpar filtros"},
	}}
	buf, err := m.Encode(pgtype.JSONBOID, pgtype.TextFormatCode, checklistSchema.values(src)[itemsCol], nil)
	require.NoError(t, err)

	dst := &models.Checklist{}
	require.NoError(t, m.Scan(pgtype.JSONBOID, pgtype.TextFormatCode, buf, checklistSchema.fields(dst)[itemsCol]))
	checklistSchema.afterScan(dst)

	assert.Equal(t, src.Items, dst.Items)
	assert.Equal(t, 50, dst.Progress)
	assert.Equal(t, models.ChecklistStatusInProgress, dst.Status)
}

func TestChecklistSchema_NilItemsStoredAsEmptyArray(t *testing.T) {
	m := pgtype.NewMap()

	buf, err := m.Encode(pgtype.JSONBOID, pgtype.TextFormatCode, checklistSchema.values(&models.Checklist{})[5], nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(buf))
}
