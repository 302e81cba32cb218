package model

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type ConservationStatus string

const (
	ConservationLeastConcern         ConservationStatus = "Least Concern"
	ConservationNearThreatened       ConservationStatus = "Near Threatened"
	ConservationVulnerable           ConservationStatus = "Vulnerable"
	ConservationEndangered           ConservationStatus = "Endangered"
	ConservationCriticallyEndangered ConservationStatus = "Critically Endangered"
)

type Animal struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Species            string             `json:"species"`
	Category           string             `json:"category"`
	Age                int                `json:"age"`
	Gender             Gender             `json:"gender"`
	Habitat            string             `json:"habitat"`
	Diet               string             `json:"diet"`
	Description        string             `json:"description"`
	Image              string             `json:"image"`
	ConservationStatus ConservationStatus `json:"conservationStatus"`
	FunFact            string             `json:"funFact"`
}
