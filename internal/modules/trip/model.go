// README: Multi-leg trip plan model.
package trip

// Leg is one transportation segment of a plan.
type Leg struct {
	Mode string `json:"mode"` // "flight", "car", "train", ...
	From string `json:"from"`
	To   string `json:"to"`
}

// Dates bound the whole journey. Both are YYYY-MM-DD.
type Dates struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Plan is a structured multi-destination itinerary. Built once per
// trip-planning request and read-only during orchestration.
type Plan struct {
	IsValid            bool     `json:"isValid"`
	Origin             string   `json:"origin"`
	FinalDestination   string   `json:"finalDestination"`
	IntermediateStops  []string `json:"intermediateStops,omitempty"`
	TransportationLegs []Leg    `json:"transportationLegs,omitempty"`
	Activities         []string `json:"activities,omitempty"`
	Dates              Dates    `json:"dates"`

	// Clarification is the question to ask when IsValid is false.
	Clarification string `json:"clarification,omitempty"`
}
