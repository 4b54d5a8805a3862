package entities

type AvailabilityStatus string

const (
	AvailabilityAvailable AvailabilityStatus = "Available"
	AvailabilityBusy      AvailabilityStatus = "Busy"
)

// Technician is the directory view of a field technician.
type Technician struct {
	ID                 string             `json:"id"`
	FirstName          string             `json:"first_name"`
	LastName           string             `json:"last_name"`
	TechnicianType     string             `json:"technician_type"`
	OrganizationName   string             `json:"organization_name,omitempty"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status"`
}

func (t Technician) FullName() string {
	switch {
	case t.FirstName == "":
		return t.LastName
	case t.LastName == "":
		return t.FirstName
	}
	return t.FirstName + " " + t.LastName
}
