package repository

// MotorcycleEntity mirrors a vehicle.motorcycle row.
type MotorcycleEntity struct {
	ID             int64   `db:"id"`
	VIN            string  `db:"vin"`
	MotorcycleType *string `db:"motorcycle_type"`
	OdometerValue  float64 `db:"odometer_value"`
	OdometerUnit   string  `db:"odometer_unit"`
	IsElectric     bool    `db:"is_electric"`
	NumberOfSeats  int     `db:"number_of_seats"`
}
