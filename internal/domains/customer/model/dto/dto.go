package dto

import (
	"inn/internal/domains/customer/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"omitempty,max=100"`
	Email     string `json:"email"      validate:"omitempty,email,max=255"`
	Phone     string `json:"phone"      validate:"omitempty,max=20"`
	IDNumber  string `json:"id_number"  validate:"omitempty,max=50"`
	Address   string `json:"address"    validate:"omitempty,max=255"`
}

func (c *CreateCustomerRequest) ToModel(user string) model.Customer {
	return model.Customer{
		ID:        uuid.NewString(),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		IDNumber:  c.IDNumber,
		Address:   c.Address,
		Active:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCustomerRequest struct {
	FirstName string `db:"first_name" json:"first_name" validate:"omitempty,max=100"`
	LastName  string `db:"last_name"  json:"last_name"  validate:"omitempty,max=100"`
	Email     string `db:"email"      json:"email"      validate:"omitempty,email,max=255"`
	Phone     string `db:"phone"      json:"phone"      validate:"omitempty,max=20"`
	IDNumber  string `db:"id_number"  json:"id_number"  validate:"omitempty,max=50"`
	Address   string `db:"address"    json:"address"    validate:"omitempty,max=255"`
	Active    *bool  `db:"active"     json:"active"     validate:"omitempty"`
}

type CustomerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IDNumber  string `json:"id_number"`
	Address   string `json:"address"`
	Active    bool   `json:"active"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.IDNumber = model.IDNumber
	r.Address = model.Address
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
