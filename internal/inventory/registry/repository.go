package registry

import (
	"fmt"
	"strconv"

	"github.com/muhryhan/be-aset-dlh/internal/repository"
	"github.com/muhryhan/be-aset-dlh/pkg/apperrors"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

// Repository is the goqu-backed store shared by every asset category. The
// model's db tags drive column mapping; skipinsert/skipupdate on the id
// keeps goqu away from the serial primary key.
type Repository[T any] struct {
	db   *goqu.Database
	def  Definition
	meta structMeta
}

func NewRepository[T any](r *repository.Repository, def Definition) (*Repository[T], error) {
	meta, err := newStructMeta[T]()
	if err != nil {
		return nil, err
	}
	return &Repository[T]{db: r.GoquDBWrapper, def: def, meta: meta}, nil
}

func (r *Repository[T]) List() ([]T, error) {
	var items []T
	query := r.db.From(r.def.Table).Order(goqu.I(r.meta.idCol).Asc())
	if err := query.Executor().ScanStructs(&items); err != nil {
		return nil, fmt.Errorf("unable to select %s records: %w", r.def.Resource, err)
	}
	return items, nil
}

func (r *Repository[T]) GetByID(id int) (*T, bool, error) {
	return r.fetchOne(goqu.Ex{r.meta.idCol: id})
}

// GetByKey looks a record up by its registration string, the join key the
// dashboard and the scanner use. Numeric key columns (the plant movement
// tables key on the parent plant id) are converted before the comparison.
func (r *Repository[T]) GetByKey(key string) (*T, bool, error) {
	value, err := r.keyValue(key)
	if err != nil {
		return nil, false, err
	}
	return r.fetchOne(goqu.Ex{r.def.KeyColumn: value})
}

// ListByKey returns every row sharing the key, oldest first. The plant
// movement tables use it: one plant accumulates many movements, so a
// single-row lookup would drop history.
func (r *Repository[T]) ListByKey(key string) ([]T, error) {
	value, err := r.keyValue(key)
	if err != nil {
		return nil, err
	}

	var items []T
	query := r.db.From(r.def.Table).
		Where(goqu.Ex{r.def.KeyColumn: value}).
		Order(goqu.I(r.meta.idCol).Asc())
	if err := query.Executor().ScanStructs(&items); err != nil {
		return nil, fmt.Errorf("unable to select %s records: %w", r.def.Resource, err)
	}
	return items, nil
}

func (r *Repository[T]) keyValue(key string) (interface{}, error) {
	if col, ok := r.def.column(r.def.KeyColumn); ok && col.Kind == KindInt {
		n, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("key for %s must be numeric: %w", r.def.Resource, err)
		}
		return n, nil
	}
	return key, nil
}

func (r *Repository[T]) fetchOne(condition goqu.Ex) (*T, bool, error) {
	var item T
	found, err := r.db.From(r.def.Table).Where(condition).Executor().ScanStruct(&item)
	if err != nil {
		return nil, false, fmt.Errorf("unable to select %s record: %w", r.def.Resource, err)
	}
	return &item, found, nil
}

func (r *Repository[T]) Insert(item *T) (int, error) {
	var id int
	query := r.db.Insert(r.def.Table).Rows(item).Returning(r.meta.idCol)
	if _, err := query.Executor().ScanVal(&id); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, apperrors.WrapDBError("duplicate value for "+r.def.Resource, string(pqErr.Code))
		}
		return 0, fmt.Errorf("failed to insert %s record: %w", r.def.Resource, err)
	}
	r.meta.setID(item, id)
	return id, nil
}

func (r *Repository[T]) Update(id int, item *T) (bool, error) {
	query := r.db.Update(r.def.Table).Set(item).Where(goqu.Ex{r.meta.idCol: id})
	result, err := query.Executor().Exec()
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, apperrors.WrapDBError("duplicate value for "+r.def.Resource, string(pqErr.Code))
		}
		return false, fmt.Errorf("failed to update %s record: %w", r.def.Resource, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// UpdateColumn writes a single server-owned column (the generated QR path).
func (r *Repository[T]) UpdateColumn(id int, column string, value interface{}) error {
	query := r.db.Update(r.def.Table).
		Set(goqu.Record{column: value}).
		Where(goqu.Ex{r.meta.idCol: id})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to update %s.%s: %w", r.def.Table, column, err)
	}
	return nil
}

// Delete removes the record outright. There is no soft delete; the only
// confirmation is the dialog the dashboard shows first.
func (r *Repository[T]) Delete(id int) (bool, error) {
	result, err := r.db.Delete(r.def.Table).Where(goqu.Ex{r.meta.idCol: id}).Executor().Exec()
	if err != nil {
		return false, fmt.Errorf("failed to delete %s record: %w", r.def.Resource, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *Repository[T]) Count() (int, error) {
	var count int
	query := r.db.From(r.def.Table).Select(goqu.COUNT("*"))
	if _, err := query.Executor().ScanVal(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s records: %w", r.def.Resource, err)
	}
	return count, nil
}
