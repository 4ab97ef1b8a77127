package domain

import "fmt"

type AirlineCompany struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CountryID int64  `json:"country_id"`
	UserID    int64  `json:"user_id"`
}

func (a AirlineCompany) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if a.CountryID == 0 {
		return fmt.Errorf("%w: country_id is required", ErrValidation)
	}
	if a.UserID == 0 {
		return fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	return nil
}

func (a AirlineCompany) WithID(id int64) AirlineCompany {
	a.ID = id
	return a
}
