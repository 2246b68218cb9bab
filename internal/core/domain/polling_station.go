package domain

type PollingStationType string

const (
	PollingStationTypeFixedLocation PollingStationType = "FixedLocation"
	PollingStationTypeSpecial       PollingStationType = "Special"
	PollingStationTypeMobile        PollingStationType = "Mobile"
)

// PollingStation belongs to exactly one Election. Its ID is unique across all
// elections.
type PollingStation struct {
	ID                  int64               `json:"id" yaml:"id"`
	ElectionID          int64               `json:"election_id" yaml:"election_id"`
	Name                string              `json:"name" yaml:"name"`
	Number              int64               `json:"number" yaml:"number"`
	NumberOfVoters      *int64              `json:"number_of_voters,omitempty" yaml:"number_of_voters,omitempty"`
	PollingStationType  *PollingStationType `json:"polling_station_type,omitempty" yaml:"polling_station_type,omitempty"`
	Street              string              `json:"street" yaml:"street"`
	HouseNumber         string              `json:"house_number" yaml:"house_number"`
	HouseNumberAddition *string             `json:"house_number_addition,omitempty" yaml:"house_number_addition,omitempty"`
	PostalCode          string              `json:"postal_code" yaml:"postal_code"`
	Locality            string              `json:"locality" yaml:"locality"`
}

type PollingStationListResponse struct {
	PollingStations []PollingStation `json:"polling_stations"`
}

// NewPollingStationListResponse never yields a null list in JSON.
func NewPollingStationListResponse(stations []PollingStation) PollingStationListResponse {
	if stations == nil {
		stations = []PollingStation{}
	}
	return PollingStationListResponse{PollingStations: stations}
}
