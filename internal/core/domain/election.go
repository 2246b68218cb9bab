package domain

type ElectionCategory string

const ElectionCategoryMunicipal ElectionCategory = "Municipal"

type ElectionStatus string

const (
	ElectionStatusDataEntryInProgress ElectionStatus = "DataEntryInProgress"
	ElectionStatusDataEntryFinished   ElectionStatus = "DataEntryFinished"
)

type Election struct {
	ID             int64            `json:"id" yaml:"id"`
	Name           string           `json:"name" yaml:"name"`
	Location       string           `json:"location" yaml:"location"`
	NumberOfVoters int64            `json:"number_of_voters" yaml:"number_of_voters"`
	Category       ElectionCategory `json:"category" yaml:"category"`
	ElectionDate   Date             `json:"election_date" yaml:"election_date"`
	NominationDate Date             `json:"nomination_date" yaml:"nomination_date"`
	Status         ElectionStatus   `json:"status" yaml:"status"`
}

type ElectionListResponse struct {
	Elections []Election `json:"elections"`
}

type ElectionDetailsResponse struct {
	Election        Election         `json:"election"`
	PollingStations []PollingStation `json:"polling_stations"`
}
