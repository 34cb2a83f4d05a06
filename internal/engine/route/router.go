// Package route maps a classified extraction onto a target module and
// decides whether a human has to look at the request. Routing is a pure
// function: the same ExtractionResult always produces the same RoutingResult.
package route

import (
	"fmt"
	"strings"

	"command-engine/internal/models"
)

// ConfidenceThreshold is the human-review gate. Anything classified below it
// is never auto-processed, regardless of field completeness.
const ConfidenceThreshold = 0.5

// moduleByIntent covers every defined intent exactly once.
var moduleByIntent = map[models.Intent]models.Module{
	models.IntentServiceRequest:    models.ModuleOps,
	models.IntentScheduleAppt:      models.ModuleCore,
	models.IntentCancelAppointment: models.ModuleCore,
	models.IntentBillingInquiry:    models.ModuleCore,
	models.IntentQuoteRequest:      models.ModuleRevenue,
	models.IntentHiringInquiry:     models.ModulePeople,
	models.IntentPayrollInquiry:    models.ModulePeople,
	models.IntentUnknown:           models.ModuleUnknown,
}

// Route resolves the target module and validates its required fields.
func Route(extraction models.ExtractionResult) models.RoutingResult {
	module, ok := moduleByIntent[extraction.Intent]
	if !ok {
		module = models.ModuleUnknown
	}

	if module == models.ModuleUnknown {
		return models.RoutingResult{
			TargetModule:  models.ModuleUnknown,
			RequiresHuman: true,
			MissingFields: []string{"intent"},
			RoutingReason: "intent could not be classified",
		}
	}

	reqs := requirementsByModule[module]
	missing := checkFields(reqs.required, extraction.Entities)
	recommended := checkFields(reqs.recommended, extraction.Entities)

	requiresHuman := len(missing) > 0
	reason := fmt.Sprintf("intent %s routed to %s module", extraction.Intent, module)

	if len(missing) > 0 {
		reason = fmt.Sprintf("%s; missing required fields: %s", reason, strings.Join(missing, ", "))
	}
	if extraction.Confidence < ConfidenceThreshold {
		requiresHuman = true
		reason = fmt.Sprintf("%s; confidence %.2f below threshold", reason, extraction.Confidence)
	}
	if len(recommended) > 0 {
		reason = fmt.Sprintf("%s; recommended fields absent: %s", reason, strings.Join(recommended, ", "))
	}

	return models.RoutingResult{
		TargetModule:       module,
		RequiresHuman:      requiresHuman,
		MissingFields:      missing,
		RecommendedMissing: recommended,
		RoutingReason:      reason,
	}
}
