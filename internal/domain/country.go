package domain

import "fmt"

type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (c Country) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: country name is required", ErrValidation)
	}
	return nil
}

// WithID returns a copy of the row with its primary key forced to id.
// Update handlers use this to keep the original key while replacing
// every other field.
func (c Country) WithID(id int64) Country {
	c.ID = id
	return c
}
