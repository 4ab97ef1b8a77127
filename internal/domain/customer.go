package domain

import "fmt"

type Customer struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Address      string `json:"address"`
	PhoneNo      string `json:"phone_no"`
	CreditCardNo string `json:"credit_card_no"`
	UserID       int64  `json:"user_id"`
}

func (c Customer) Validate() error {
	if c.FirstName == "" {
		return fmt.Errorf("%w: first_name is required", ErrValidation)
	}
	if c.LastName == "" {
		return fmt.Errorf("%w: last_name is required", ErrValidation)
	}
	if c.PhoneNo == "" {
		return fmt.Errorf("%w: phone_no is required", ErrValidation)
	}
	if c.CreditCardNo == "" {
		return fmt.Errorf("%w: credit_card_no is required", ErrValidation)
	}
	if c.UserID == 0 {
		return fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	return nil
}

func (c Customer) WithID(id int64) Customer {
	c.ID = id
	return c
}
