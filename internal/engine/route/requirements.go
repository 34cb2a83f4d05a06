package route

import "command-engine/internal/models"

// fieldCheck is one named requirement. missing_fields reports names in the
// declaration order below, never in discovery order.
type fieldCheck struct {
	name    string
	present func(models.Entity) bool
}

type moduleRequirements struct {
	required    []fieldCheck
	recommended []fieldCheck
}

var contactCheck = fieldCheck{
	name:    "contact",
	present: func(e models.Entity) bool { return e.HasContact() },
}

// requirementsByModule drives per-module validation. A module absent from
// this table has no field requirements.
var requirementsByModule = map[models.Module]moduleRequirements{
	models.ModuleOps: {
		required: []fieldCheck{
			contactCheck,
			{name: "problem_description", present: func(e models.Entity) bool { return e.ProblemDescription != "" }},
			{name: "urgency", present: func(e models.Entity) bool { return e.Urgency != "" && e.Urgency != models.UrgencyUnknown }},
		},
	},
	models.ModuleRevenue: {
		required: []fieldCheck{
			contactCheck,
			{name: "property_type", present: func(e models.Entity) bool { return e.PropertyType != "" }},
		},
		recommended: []fieldCheck{
			{name: "square_footage", present: func(e models.Entity) bool { return e.SquareFootage > 0 }},
			{name: "system_age", present: func(e models.Entity) bool { return e.SystemAgeYears > 0 }},
		},
	},
	models.ModuleCore: {
		required: []fieldCheck{contactCheck},
	},
	models.ModulePeople: {
		required: []fieldCheck{contactCheck},
	},
}

func checkFields(checks []fieldCheck, e models.Entity) []string {
	var missing []string
	for _, c := range checks {
		if !c.present(e) {
			missing = append(missing, c.name)
		}
	}
	return missing
}
