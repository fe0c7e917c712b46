package models

import "time"

// Address is the postal address attached to every user record. The fields are
// required as a group: a user without a complete address fails validation.
type Address struct {
	Country     string `json:"country" validate:"required"`
	State       string `json:"state" validate:"required"`
	City        string `json:"city" validate:"required"`
	PostalCode  string `json:"postalCode" validate:"required"`
	Street      string `json:"street" validate:"required"`
	HouseNumber string `json:"houseNumber" validate:"required"`
}

// User represents a registered customer.
//
// Password holds a bcrypt hash once the record has been persisted. Hashing is
// an explicit UserService step at the boundary where plaintext arrives;
// nothing below the service layer ever rewrites this column.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"password" gorm:"type:varchar(255)" validate:"required,min=6"`
	Name      string    `json:"name" validate:"required"`
	Surname   string    `json:"surname" validate:"required"`
	Address   Address   `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
