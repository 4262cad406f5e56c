package postgres

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"

	"github.com/shenikar/pop_field_ops/internal/models"
	"github.com/shenikar/pop_field_ops/internal/repository"
)

const uniqueViolation = "23505"

// schema описывает отображение модели на таблицу
type schema[P models.Entity] struct {
	table string
	// columns - колонки кроме id, created_at, updated_at
	columns []string
	search  []string
	// filters - параметр запроса -> колонка
	filters map[string]string
	values  func(P) []any
	// fields возвращает указатели для Scan в порядке columns
	fields    func(P) []any
	afterScan func(P)
}

// Table - репозиторий ресурса в PostgreSQL
type Table[M any, P interface {
	*M
	models.Entity
}] struct {
	pool   *pgxpool.Pool
	schema schema[P]
}

func newTable[M any, P interface {
	*M
	models.Entity
}](pool *pgxpool.Pool, s schema[P]) *Table[M, P] {
	return &Table[M, P]{pool: pool, schema: s}
}

func (t *Table[M, P]) selectColumns() []any {
	cols := make([]any, 0, len(t.schema.columns)+3)
	cols = append(cols, "id", "created_at", "updated_at")
	for _, c := range t.schema.columns {
		cols = append(cols, c)
	}
	return cols
}

func (t *Table[M, P]) scan(row pgx.CollectableRow) (P, error) {
	item := P(new(M))
	var base models.Base
	dst := append([]any{&base.ID, &base.CreatedAt, &base.UpdatedAt}, t.schema.fields(item)...)
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}
	item.SetID(base.ID)
	item.SetTimestamps(base.CreatedAt, base.UpdatedAt)
	if t.schema.afterScan != nil {
		t.schema.afterScan(item)
	}
	return item, nil
}

func (t *Table[M, P]) insertQuery(item P) bob.BaseQuery[*dialect.InsertQuery] {
	cols := append([]string{"created_at", "updated_at"}, t.schema.columns...)
	vals := append([]any{item.GetCreatedAt(), item.GetUpdatedAt()}, t.schema.values(item)...)

	args := make([]bob.Expression, len(vals))
	for i, v := range vals {
		args[i] = psql.Arg(v)
	}

	return psql.Insert(
		im.Into(t.schema.table, cols...),
		im.Values(args...),
		im.Returning("id"),
	)
}

// Create вставляет запись и заполняет ее id
func (t *Table[M, P]) Create(ctx context.Context, item P) error {
	sql, qargs, err := t.insertQuery(item).Build(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to build insert into %s", t.schema.table)
	}

	var id int64
	if err := t.pool.QueryRow(ctx, sql, qargs...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return errors.Wrapf(repository.ErrAlreadyExists, "%s with key %q", t.schema.table, item.UniqueKey())
		}
		return errors.Wrapf(err, "failed to insert into %s", t.schema.table)
	}
	item.SetID(id)
	return nil
}

func (t *Table[M, P]) selectByIDQuery(id int64) bob.BaseQuery[*dialect.SelectQuery] {
	return psql.Select(
		sm.Columns(t.selectColumns()...),
		sm.From(t.schema.table),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
}

// GetByID возвращает запись по идентификатору
func (t *Table[M, P]) GetByID(ctx context.Context, id int64) (P, error) {
	sql, args, err := t.selectByIDQuery(id).Build(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build select from %s", t.schema.table)
	}

	rows, err := t.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s by id", t.schema.table)
	}
	item, err := pgx.CollectExactlyOneRow(rows, t.scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(repository.ErrNotFound, "%s with id %d", t.schema.table, id)
		}
		return nil, errors.Wrapf(err, "failed to scan %s", t.schema.table)
	}
	return item, nil
}

func (t *Table[M, P]) updateQuery(item P) bob.BaseQuery[*dialect.UpdateQuery] {
	vals := t.schema.values(item)
	sets := make([]bob.Mod[*dialect.UpdateQuery], 0, len(vals)+1)
	for i, col := range t.schema.columns {
		sets = append(sets, um.SetCol(col).ToArg(vals[i]))
	}
	sets = append(sets, um.SetCol("updated_at").ToArg(item.GetUpdatedAt()))

	q := psql.Update(
		um.Table(t.schema.table),
		um.Where(psql.Quote("id").EQ(psql.Arg(item.GetID()))),
	)
	q.Apply(sets...)
	return q
}

// Update перезаписывает все колонки записи, created_at не трогает
func (t *Table[M, P]) Update(ctx context.Context, item P) error {
	sql, args, err := t.updateQuery(item).Build(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to build update of %s", t.schema.table)
	}

	tag, err := t.pool.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Wrapf(repository.ErrAlreadyExists, "%s with key %q", t.schema.table, item.UniqueKey())
		}
		return errors.Wrapf(err, "failed to update %s", t.schema.table)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(repository.ErrNotFound, "%s with id %d", t.schema.table, item.GetID())
	}
	return nil
}

func (t *Table[M, P]) deleteQuery(id int64) bob.BaseQuery[*dialect.DeleteQuery] {
	return psql.Delete(
		dm.From(t.schema.table),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
}

// Delete удаляет запись
func (t *Table[M, P]) Delete(ctx context.Context, id int64) error {
	sql, args, err := t.deleteQuery(id).Build(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to build delete from %s", t.schema.table)
	}

	tag, err := t.pool.Exec(ctx, sql, args...)
	if err != nil {
		return errors.Wrapf(err, "failed to delete from %s", t.schema.table)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(repository.ErrNotFound, "%s with id %d", t.schema.table, id)
	}
	return nil
}

func (t *Table[M, P]) countQuery(q models.ListQuery) bob.BaseQuery[*dialect.SelectQuery] {
	mods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("count(*)"),
		sm.From(t.schema.table),
	}
	for _, w := range t.conditions(q) {
		mods = append(mods, sm.Where(w))
	}
	return psql.Select(mods...)
}

func (t *Table[M, P]) pageQuery(q models.ListQuery) bob.BaseQuery[*dialect.SelectQuery] {
	mods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(t.selectColumns()...),
		sm.From(t.schema.table),
		sm.OrderBy("id"),
		sm.Limit(q.Limit),
		sm.Offset(q.Offset()),
	}
	for _, w := range t.conditions(q) {
		mods = append(mods, sm.Where(w))
	}
	return psql.Select(mods...)
}

// List возвращает страницу записей по поиску и фильтрам и общее количество совпадений
func (t *Table[M, P]) List(ctx context.Context, q models.ListQuery) ([]P, int, error) {
	sql, args, err := t.countQuery(q).Build(ctx)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to build count of %s", t.schema.table)
	}
	var total int
	if err := t.pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, errors.Wrapf(err, "failed to count %s", t.schema.table)
	}

	items, err := t.query(ctx, t.pageQuery(q))
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// All возвращает все записи по возрастанию id
func (t *Table[M, P]) All(ctx context.Context) ([]P, error) {
	return t.query(ctx, psql.Select(
		sm.Columns(t.selectColumns()...),
		sm.From(t.schema.table),
		sm.OrderBy("id"),
	))
}

func (t *Table[M, P]) query(ctx context.Context, q bob.BaseQuery[*dialect.SelectQuery]) ([]P, error) {
	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build select from %s", t.schema.table)
	}

	rows, err := t.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", t.schema.table)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, t.scan)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scan %s rows", t.schema.table)
	}
	return items, nil
}

// conditions строит WHERE: поиск ILIKE по нескольким колонкам через OR, фильтры через AND
func (t *Table[M, P]) conditions(q models.ListQuery) []bob.Expression {
	where := make([]bob.Expression, 0, len(q.Filters)+1)

	if q.Search != "" && len(t.schema.search) > 0 {
		pattern := "%" + escapeLike(q.Search) + "%"
		ors := make([]bob.Expression, len(t.schema.search))
		for i, col := range t.schema.search {
			ors[i] = psql.Raw(fmt.Sprintf("%s ILIKE ?", col), pattern)
		}
		where = append(where, psql.Or(ors...))
	}

	for _, key := range slices.Sorted(maps.Keys(q.Filters)) {
		col, ok := t.schema.filters[key]
		if !ok {
			continue
		}
		where = append(where, psql.Raw(fmt.Sprintf("%s::text = ?", col), q.Filters[key]))
	}
	return where
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
