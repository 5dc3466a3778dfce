package models

type DeliveryMode string

const (
	DeliveryModeZone DeliveryMode = "zone"
	DeliveryModeCity DeliveryMode = "city"
)

type HistoryMode string

const (
	HistoryModeLocal  HistoryMode = "local"
	HistoryModeRemote HistoryMode = "remote"
)

type DeliveryZone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type DeliveryDateInfo struct {
	Found   bool    `json:"found"`
	Message string  `json:"message"`
	Date    *string `json:"date"`
	DayName *string `json:"day_name"`
}
