package models

// Urgency is the extracted urgency tier for a request.
type Urgency string

const (
	UrgencyEmergency Urgency = "emergency"
	UrgencyHigh      Urgency = "high"
	UrgencyMedium    Urgency = "medium"
	UrgencyLow       Urgency = "low"
	UrgencyUnknown   Urgency = "unknown"
)

// Property types recognized by extraction and lead routing.
const (
	PropertyCommercial  = "commercial"
	PropertyResidential = "residential"
)

// Entity is the bag of attributes extracted from free text. Every field is
// optional; the zero value means "absent", and absence drives the router's
// missing-field checks. An Entity is never mutated after extraction.
type Entity struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`

	Address string `json:"address,omitempty"`
	Zip     string `json:"zip,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`

	ProblemDescription string  `json:"problemDescription,omitempty"`
	SystemType         string  `json:"systemType,omitempty"`
	Urgency            Urgency `json:"urgency,omitempty"`

	PreferredWindow string `json:"preferredWindow,omitempty"`
	PreferredDate   string `json:"preferredDate,omitempty"`

	PropertyType   string `json:"propertyType,omitempty"`
	SquareFootage  int    `json:"squareFootage,omitempty"`
	SystemAgeYears int    `json:"systemAgeYears,omitempty"`
	BudgetRange    string `json:"budgetRange,omitempty"`
	Timeline       string `json:"timeline,omitempty"`

	TemperatureF int `json:"temperatureF,omitempty"`
}

// HasContact reports whether at least one identity field is present.
func (e Entity) HasContact() bool {
	return e.Phone != "" || e.Email != "" || e.Name != ""
}

// FieldCount returns how many entity fields were populated. Used by the
// extractor's confidence model.
func (e Entity) FieldCount() int {
	n := 0
	for _, s := range []string{
		e.Name, e.Phone, e.Email, e.Address, e.Zip, e.City, e.State,
		e.ProblemDescription, e.SystemType, e.PreferredWindow, e.PreferredDate,
		e.PropertyType, e.BudgetRange, e.Timeline,
	} {
		if s != "" {
			n++
		}
	}
	switch e.Urgency {
	case UrgencyEmergency, UrgencyHigh, UrgencyMedium:
		n++
	}
	if e.SquareFootage > 0 {
		n++
	}
	if e.SystemAgeYears > 0 {
		n++
	}
	if e.TemperatureF > 0 {
		n++
	}
	return n
}
