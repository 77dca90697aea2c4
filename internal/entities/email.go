package entities

type OTPEmailData struct {
	Code          string
	ExpiryMinutes int
	CurrentYear   int
}

type BookingEmailData struct {
	UserName        string
	VehicleName     string
	PickupFormatted string
	DropFormatted   string
	Duration        string
	Location        string
	VehicleCost     string
	HelmetCost      string
	InsuranceCost   string
	Tax             string
	Discount        string
	Total           string
	CurrentYear     int
}
