package utils

// Service types offered by an establishment. The set is closed: three
// exclusive-unit services where each resource number is a distinct bookable
// unit, and one headcount service where occupancy is counted in people.
const (
	ServiceCarpa     = "carpa"
	ServiceSombrilla = "sombrilla"
	ServiceParking   = "parking"
	ServicePileta    = "pileta"
)

// AllServiceTypes fixes the order services appear in reports.
var AllServiceTypes = []string{ServiceCarpa, ServiceSombrilla, ServiceParking, ServicePileta}

func IsKnownServiceType(serviceType string) bool {
	switch serviceType {
	case ServiceCarpa, ServiceSombrilla, ServiceParking, ServicePileta:
		return true
	}
	return false
}

// IsHeadcountService reports whether occupancy for the service is measured
// in people per day rather than in booked units. Headcount services have no
// per-unit exclusivity: overlapping bookings never conflict with each other.
func IsHeadcountService(serviceType string) bool {
	return serviceType == ServicePileta
}

// ServiceLabel returns the customer-facing name used in emails and SMS.
func ServiceLabel(serviceType string) string {
	switch serviceType {
	case ServiceCarpa:
		return "Carpa"
	case ServiceSombrilla:
		return "Sombrilla"
	case ServiceParking:
		return "Estacionamiento"
	case ServicePileta:
		return "Pileta"
	}
	return serviceType
}
