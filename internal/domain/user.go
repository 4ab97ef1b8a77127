package domain

import "fmt"

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	RoleID   int64  `json:"role_id"`
}

func (u User) Validate() error {
	if u.Username == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	if u.Password == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	if u.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if u.RoleID == 0 {
		return fmt.Errorf("%w: role_id is required", ErrValidation)
	}
	return nil
}

func (u User) WithID(id int64) User {
	u.ID = id
	return u
}
