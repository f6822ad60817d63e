package servicing

import (
	"fmt"

	"github.com/muhryhan/be-aset-dlh/internal/repository"
	"github.com/muhryhan/be-aset-dlh/pkg/apperrors"
	"github.com/muhryhan/be-aset-dlh/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

// ServisRepository persists itemized service records together with their
// part line items. Every write runs in one transaction so a record and its
// parts never drift apart, and berkala parts update the periodic checklist
// inside the same transaction.
type ServisRepository struct {
	repo     *repository.Repository
	periodic *PeriodicStore
}

func NewServisRepository(r *repository.Repository, periodic *PeriodicStore) *ServisRepository {
	return &ServisRepository{repo: r, periodic: periodic}
}

func (r *ServisRepository) List() ([]models.Servis, error) {
	var records []models.Servis
	query := r.repo.GoquDBWrapper.From("servis").Order(goqu.I("id_servis").Asc())
	if err := query.Executor().ScanStructs(&records); err != nil {
		return nil, fmt.Errorf("unable to select servis records: %w", err)
	}
	return r.attachParts(records)
}

// ListByKey returns the service history of one asset, newest first.
func (r *ServisRepository) ListByKey(key string) ([]models.Servis, error) {
	var records []models.Servis
	query := r.repo.GoquDBWrapper.From("servis").
		Where(goqu.Ex{"no_registrasi": key}).
		Order(goqu.I("tanggal").Desc())
	if err := query.Executor().ScanStructs(&records); err != nil {
		return nil, fmt.Errorf("unable to select servis records for %q: %w", key, err)
	}
	return r.attachParts(records)
}

func (r *ServisRepository) GetByID(id int) (*models.Servis, bool, error) {
	var record models.Servis
	found, err := r.repo.GoquDBWrapper.From("servis").
		Where(goqu.Ex{"id_servis": id}).
		Executor().ScanStruct(&record)
	if err != nil {
		return nil, false, fmt.Errorf("unable to select servis record: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	records, err := r.attachParts([]models.Servis{record})
	if err != nil {
		return nil, false, err
	}
	return &records[0], true, nil
}

func (r *ServisRepository) Create(record *models.Servis) error {
	return repository.WithTransaction(r.repo.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		var id int
		query := tx.Insert("servis").Rows(record).Returning("id_servis")
		if _, err := query.Executor().ScanVal(&id); err != nil {
			return wrapServisError(err)
		}
		record.ID = id

		return r.persistParts(tx, record)
	})
}

func (r *ServisRepository) Update(id int, record *models.Servis) (bool, error) {
	updated := false
	err := repository.WithTransaction(r.repo.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		result, err := tx.Update("servis").Set(record).Where(goqu.Ex{"id_servis": id}).Executor().Exec()
		if err != nil {
			return wrapServisError(err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return nil
		}
		updated = true
		record.ID = id

		// Line items are replaced wholesale; the form always submits the
		// full part list.
		if _, err := tx.Delete("onderdil").Where(goqu.Ex{"id_servis": id}).Executor().Exec(); err != nil {
			return fmt.Errorf("failed to clear part items: %w", err)
		}

		return r.persistParts(tx, record)
	})
	return updated, err
}

func (r *ServisRepository) Delete(id int) (bool, error) {
	// onderdil rows go with the record via ON DELETE CASCADE.
	result, err := r.repo.GoquDBWrapper.Delete("servis").
		Where(goqu.Ex{"id_servis": id}).
		Executor().Exec()
	if err != nil {
		return false, fmt.Errorf("failed to delete servis record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// TotalCostForYear sums service spending for the dashboard summary.
func (r *ServisRepository) TotalCostForYear(year int) (int64, error) {
	var total int64
	query := r.repo.GoquDBWrapper.From("servis").
		Select(goqu.COALESCE(goqu.SUM("biaya_servis"), 0)).
		Where(goqu.L("EXTRACT(YEAR FROM tanggal) = ?", year))

	if _, err := query.Executor().ScanVal(&total); err != nil {
		return 0, fmt.Errorf("failed to sum service cost: %w", err)
	}
	return total, nil
}

func (r *ServisRepository) persistParts(tx *goqu.TxDatabase, record *models.Servis) error {
	for i := range record.Onderdil {
		part := &record.Onderdil[i]
		part.ServisID = record.ID

		if _, err := tx.Insert("onderdil").Rows(part).Executor().Exec(); err != nil {
			return fmt.Errorf("failed to insert part item %q: %w", part.NamaOnderdil, err)
		}

		if part.IsBerkala {
			applied, err := r.periodic.ApplyPart(tx, record.NoRegistrasi, part.NamaOnderdil, record.Tanggal)
			if err != nil {
				return err
			}
			if !applied {
				// Part flagged berkala but no checklist column matches;
				// keep the line item, the checklist simply stays as is.
				continue
			}
		}
	}
	return nil
}

func (r *ServisRepository) attachParts(records []models.Servis) ([]models.Servis, error) {
	if len(records) == 0 {
		return records, nil
	}

	ids := make([]int, len(records))
	index := make(map[int]int, len(records))
	for i := range records {
		records[i].Onderdil = []models.Onderdil{}
		ids[i] = records[i].ID
		index[records[i].ID] = i
	}

	var parts []models.Onderdil
	query := r.repo.GoquDBWrapper.From("onderdil").
		Where(goqu.Ex{"id_servis": ids}).
		Order(goqu.I("id_onderdil").Asc())
	if err := query.Executor().ScanStructs(&parts); err != nil {
		return nil, fmt.Errorf("unable to select part items: %w", err)
	}

	for _, part := range parts {
		if i, ok := index[part.ServisID]; ok {
			records[i].Onderdil = append(records[i].Onderdil, part)
		}
	}

	return records, nil
}

func wrapServisError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return apperrors.WrapDBError("servis record", string(pqErr.Code))
	}
	return fmt.Errorf("failed to persist servis record: %w", err)
}
