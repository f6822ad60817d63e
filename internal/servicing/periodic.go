package servicing

import (
	"fmt"
	"strings"
	"time"

	"github.com/muhryhan/be-aset-dlh/internal/inventory/registry"
	"github.com/muhryhan/be-aset-dlh/internal/repository"
	"github.com/muhryhan/be-aset-dlh/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// PeriodicStore owns the fixed-shape servis_berkala rows across the four
// categories that have them: seeding on asset registration, in-place date
// updates from berkala service parts, and the scanner's cross-category
// lookup by registration key.
type PeriodicStore struct {
	repo *repository.Repository
}

func NewPeriodicStore(r *repository.Repository) *PeriodicStore {
	return &PeriodicStore{repo: r}
}

// Seed inserts the checklist row for a newly registered asset. Re-seeding
// an existing key is a no-op, so asset updates can call it safely.
func (s *PeriodicStore) Seed(def registry.Definition, key string) error {
	query := s.repo.GoquDBWrapper.Insert(def.Table).
		Rows(goqu.Record{def.KeyColumn: key}).
		OnConflict(goqu.DoNothing())

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to seed %s row for %q: %w", def.Table, key, err)
	}
	return nil
}

// RemoveFor drops the checklist row when its asset is deleted.
func (s *PeriodicStore) RemoveFor(def registry.Definition, key string) error {
	query := s.repo.GoquDBWrapper.Delete(def.Table).Where(goqu.Ex{def.KeyColumn: key})
	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to remove %s row for %q: %w", def.Table, key, err)
	}
	return nil
}

// NormalizePart maps a part name to its checklist column: lowercased,
// whitespace collapsed to underscores ("Filter Oli Mesin" -> filter_oli_mesin).
func NormalizePart(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "_")
}

// ApplyPart writes the service date into the checklist column named by the
// normalized part, on whichever periodic table knows the key. Parts that
// match no checklist column report false without error; itemized one-off
// parts are expected to fall through.
func (s *PeriodicStore) ApplyPart(tx *goqu.TxDatabase, key, part string, date models.Date) (bool, error) {
	column := NormalizePart(part)

	for _, def := range periodicDefinitions {
		if !hasDateColumn(def, column) {
			continue
		}

		result, err := tx.Update(def.Table).
			Set(goqu.Record{column: date}).
			Where(goqu.Ex{def.KeyColumn: key}).
			Executor().Exec()
		if err != nil {
			return false, fmt.Errorf("failed to update %s.%s: %w", def.Table, column, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return false, err
		}
		if affected > 0 {
			return true, nil
		}
	}

	return false, nil
}

// Lookup resolves a scanned registration key against every periodic table
// and returns the matching checklist with its category name.
func (s *PeriodicStore) Lookup(key string) (string, map[string]interface{}, bool, error) {
	for _, def := range periodicDefinitions {
		sqlStr, args, err := s.repo.GoquDBWrapper.
			From(def.Table).
			Where(goqu.Ex{def.KeyColumn: key}).
			Prepared(true).
			ToSQL()
		if err != nil {
			return "", nil, false, err
		}

		rows, err := s.repo.DB.Query(sqlStr, args...)
		if err != nil {
			return "", nil, false, fmt.Errorf("failed to query %s: %w", def.Table, err)
		}

		record, found, err := scanRowMap(rows)
		rows.Close()
		if err != nil {
			return "", nil, false, err
		}
		if found {
			record["kategori"] = def.Resource
			return def.Resource, record, true, nil
		}
	}

	return "", nil, false, nil
}

func hasDateColumn(def registry.Definition, column string) bool {
	for _, col := range def.Columns {
		if col.Kind == registry.KindDate && col.Name == column {
			return true
		}
	}
	return false
}

// scanRowMap reads the first row into a JSON-friendly map. Dates collapse
// to the canonical YYYY-MM-DD string, NULLs to the empty string.
func scanRowMap(rows interface {
	Next() bool
	Columns() ([]string, error)
	Scan(dest ...interface{}) error
	Err() error
}) (map[string]interface{}, bool, error) {
	if !rows.Next() {
		return nil, false, rows.Err()
	}

	columns, err := rows.Columns()
	if err != nil {
		return nil, false, err
	}

	values := make([]interface{}, len(columns))
	ptrs := make([]interface{}, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, false, err
	}

	record := make(map[string]interface{}, len(columns))
	for i, col := range columns {
		switch v := values[i].(type) {
		case nil:
			record[col] = ""
		case time.Time:
			record[col] = v.Format(models.DateLayout)
		case []byte:
			record[col] = string(v)
		default:
			record[col] = v
		}
	}

	return record, true, nil
}
