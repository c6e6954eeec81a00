// Package motorcyclev1 holds the JSON shapes of the motorcycle HTTP API.
package motorcyclev1

type Motorcycle struct {
	ID             int64   `json:"id"`
	VIN            string  `json:"vin"`
	MotorcycleType string  `json:"motorcycle_type"`
	OdometerValue  float64 `json:"odometer_value"`
	OdometerUnit   string  `json:"odometer_unit"`
	IsElectric     bool    `json:"is_electric"`
	NumberOfSeats  int     `json:"number_of_seats"`
}

// CreateMotorcycleRequest requires every field. Pointers tell a missing
// field apart from a zero value.
type CreateMotorcycleRequest struct {
	VIN            *string  `json:"vin" validate:"required,min=1,max=64"`
	MotorcycleType *string  `json:"motorcycle_type" validate:"required,max=64"`
	OdometerValue  *float64 `json:"odometer_value" validate:"required,gte=0"`
	OdometerUnit   *string  `json:"odometer_unit" validate:"required,min=1,max=16"`
	IsElectric     *bool    `json:"is_electric" validate:"required"`
	NumberOfSeats  *int     `json:"number_of_seats" validate:"required,gte=0,lte=2147483647"`
}

// ReplaceMotorcycleRequest is the PUT body: same rules as create.
type ReplaceMotorcycleRequest CreateMotorcycleRequest

// PatchMotorcycleRequest is the PATCH body: vin plus any subset of fields.
type PatchMotorcycleRequest struct {
	VIN            *string  `json:"vin" validate:"required,min=1,max=64"`
	MotorcycleType *string  `json:"motorcycle_type" validate:"omitempty,max=64"`
	OdometerValue  *float64 `json:"odometer_value" validate:"omitempty,gte=0"`
	OdometerUnit   *string  `json:"odometer_unit" validate:"omitempty,min=1,max=16"`
	IsElectric     *bool    `json:"is_electric"`
	NumberOfSeats  *int     `json:"number_of_seats" validate:"omitempty,gte=0,lte=2147483647"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
