package domain

import "fmt"

// Administrator is the privileged-role profile attached one-to-one to a User.
type Administrator struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	UserID    int64  `json:"user_id"`
}

func (a Administrator) Validate() error {
	if a.FirstName == "" {
		return fmt.Errorf("%w: first_name is required", ErrValidation)
	}
	if a.LastName == "" {
		return fmt.Errorf("%w: last_name is required", ErrValidation)
	}
	if a.UserID == 0 {
		return fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	return nil
}

func (a Administrator) WithID(id int64) Administrator {
	a.ID = id
	return a
}
