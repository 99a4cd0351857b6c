package rental

type OpenRentalReq struct {
	BikeID       int64 `json:"bike_id" validate:"required,gt=0"`
	PlannedHours int   `json:"planned_duration_hours" validate:"required,gt=0"`
}
