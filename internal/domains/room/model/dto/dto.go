package dto

import (
	"mime/multipart"

	"inn/internal/domains/room/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number     string                `json:"number"         validate:"required,max=10"`
	Floor      int                   `json:"floor"          validate:"omitempty,min=0"`
	RoomTypeID string                `json:"room_type_id"   validate:"required,uuid"`
	Price      float64               `json:"price"          validate:"omitempty,gte=0"`
	Image      *multipart.FileHeader `json:"image"          validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
	Active     *bool                 `json:"active"         validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:           uuid.NewString(),
		Number:       c.Number,
		Floor:        c.Floor,
		RoomTypeID:   c.RoomTypeID,
		RoomStatusID: model.StatusAvailable,
		Price:        c.Price,
		Image:        imageURL,
		Active:       active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number       string                `db:"number"         json:"number"                                                               validate:"omitempty,max=10"`
	Floor        *int                  `db:"floor"          json:"floor"                                                                validate:"omitempty,min=0"`
	RoomTypeID   string                `db:"room_type_id"   json:"room_type_id"                                                         validate:"omitempty,uuid"`
	RoomStatusID *int                  `db:"room_status_id" json:"room_status_id"                                                       validate:"omitempty,min=1,max=4"`
	Price        *float64              `db:"price"          json:"price"                                                                validate:"omitempty,gte=0"`
	Image        *multipart.FileHeader `json:"image" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
	Active       *bool                 `db:"active"         json:"active"                                                               validate:"omitempty"`
}

// AvailableRoomsRequest carries the stay window as date-only strings. The
// window is half-open, check-out day excluded.
type AvailableRoomsRequest struct {
	CheckInDate  string `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}

type RoomResponse struct {
	ID           string  `json:"id"`
	Number       string  `json:"number"`
	Floor        int     `json:"floor"`
	RoomTypeID   string  `json:"room_type_id"`
	RoomStatusID int     `json:"room_status_id"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	Active       bool    `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Floor = model.Floor
	r.RoomTypeID = model.RoomTypeID
	r.RoomStatusID = model.RoomStatusID
	r.Price = model.Price
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type RoomAvailabilityRequest struct {
	RoomID       string `json:"room_id"        validate:"required,uuid"`
	CheckInDate  string `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}

type RoomAvailabilityResponse struct {
	RoomID       string `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Available    bool   `json:"available"`
}

type AvailableRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}

func (r *AvailableRoomsResponse) FromModels(models []model.Room) {
	r.Total = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
