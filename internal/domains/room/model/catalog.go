package model

const (
	RoomTypeTableName   = "room_types"
	RoomStatusTableName = "room_statuses"
)

type RoomType struct {
	ID       string  `db:"id"       json:"id"`
	Name     string  `db:"name"     json:"name"`
	Capacity int     `db:"capacity" json:"capacity"`
	BaseRate float64 `db:"base_rate" json:"base_rate"`
}

type RoomStatus struct {
	ID   int    `db:"id"   json:"id"`
	Name string `db:"name" json:"name"`
}
