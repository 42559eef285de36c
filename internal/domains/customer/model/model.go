package model

import "inn/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldIDNumber  = "id_number"
	FieldAddress   = "address"
	FieldActive    = "active"
)

type Customer struct {
	ID        string `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	IDNumber  string `db:"id_number"`
	Address   string `db:"address"`
	Active    bool   `db:"active"`
	model.Metadata
}
