package entities

type ReservationEmailData struct {
	ClientName          string
	ReservationCode     string
	EstablishmentName   string
	ServiceLabel        string
	ResourceNumber      int
	StartDateFormatted  string
	EndDateFormatted    string
	TotalPriceFormatted string
	CurrentYear         int
	Status              string
}
