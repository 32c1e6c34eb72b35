package dto

type BookingListDTO struct {
	ID                 uint     `json:"id"`
	BookingToken       string   `json:"booking_token"`
	SalonID            uint     `json:"salon_id"`
	SalonName          string   `json:"salon_name"`
	BookingDate        string   `json:"booking_date"`
	BookingTime        string   `json:"booking_time"`
	TotalDurationMin   int      `json:"total_duration_min"`
	Status             string   `json:"status"`
	BookingType        string   `json:"booking_type"`
	TotalServiceAmount float64  `json:"total_service_amount"`
	Services           []string `json:"services"`
}

type SalonBookingDTO struct {
	ID               uint     `json:"id"`
	BookingToken     string   `json:"booking_token"`
	CustomerName     string   `json:"customer_name"`
	CustomerPhone    string   `json:"customer_phone"`
	BookingTime      string   `json:"booking_time"`
	TotalDurationMin int      `json:"total_duration_min"`
	Status           string   `json:"status"`
	BookingType      string   `json:"booking_type"`
	SalonEarning     float64  `json:"salon_earning"`
	Services         []string `json:"services"`
}
