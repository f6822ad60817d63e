package users

import (
	"fmt"

	"github.com/muhryhan/be-aset-dlh/internal/repository"
	"github.com/muhryhan/be-aset-dlh/pkg/apperrors"
	"github.com/muhryhan/be-aset-dlh/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type UserRepository interface {
	PersistUser(req models.CreateUserRequest, hashedPassword []byte) error
	GetUser(id int) (*models.User, bool, error)
	GetUsers() ([]models.User, error)
	UpdateUser(id int, changes *models.UserChanges) error
	DeleteUser(id int) (bool, error)
}

type userRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) UserRepository {
	return &userRepositoryImpl{repository: r}
}

func (r *userRepositoryImpl) PersistUser(req models.CreateUserRequest, hashedPassword []byte) error {
	query := r.repository.GoquDBWrapper.Insert("users").
		Rows(goqu.Record{
			"password_hash": string(hashedPassword),
			"username":      req.Username,
			"fullname":      req.Fullname,
			"role":          req.Role,
		})

	if _, err := query.Executor().Exec(); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return apperrors.WrapDBError("user", string(pqErr.Code))
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (r *userRepositoryImpl) GetUsers() ([]models.User, error) {
	var users []models.User
	query := r.repository.GoquDBWrapper.
		Select("id_user", "username", "fullname", "role").
		From("users").
		Order(goqu.I("id_user").Asc())

	if err := query.Executor().ScanStructs(&users); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return users, nil
}

func (r *userRepositoryImpl) GetUser(id int) (*models.User, bool, error) {
	var user models.User
	query := r.repository.GoquDBWrapper.
		Select("id_user", "username", "fullname", "password_hash", "role").
		From("users").
		Where(goqu.Ex{"id_user": id})

	found, err := query.Executor().ScanStruct(&user)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, found, nil
}

func (r *userRepositoryImpl) UpdateUser(id int, changes *models.UserChanges) error {
	record := goqu.Record{}
	if changes.PasswordHash != nil {
		record["password_hash"] = *changes.PasswordHash
	}
	if changes.Fullname != nil {
		record["fullname"] = *changes.Fullname
	}
	if changes.Role != nil {
		record["role"] = *changes.Role
	}
	if len(record) == 0 {
		return nil
	}

	query := r.repository.GoquDBWrapper.Update("users").
		Set(record).
		Where(goqu.Ex{"id_user": id})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (r *userRepositoryImpl) DeleteUser(id int) (bool, error) {
	result, err := r.repository.GoquDBWrapper.Delete("users").
		Where(goqu.Ex{"id_user": id}).
		Executor().Exec()
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
