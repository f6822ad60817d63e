package models

type User struct {
	ID           int    `json:"id_user" db:"id_user"`
	Username     string `json:"username" db:"username"`
	Fullname     string `json:"fullname" db:"fullname"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Fullname string `json:"fullname" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	Password *string `json:"password,omitempty"`
	Fullname *string `json:"fullname,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// UserChanges holds only the columns an update actually touches.
type UserChanges struct {
	PasswordHash *string
	Fullname     *string
	Role         *string
}

func (c *UserChanges) HasChanges() bool {
	return c.PasswordHash != nil || c.Fullname != nil || c.Role != nil
}
