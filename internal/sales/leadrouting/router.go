// Package leadrouting maps a qualified lead to the humans who should own it.
package leadrouting

import (
	"regexp"
	"strconv"
	"strings"

	"command-engine/internal/models"
)

// Config carries the assignee tables. Values come from application config so
// the business can retune them without a deploy.
type Config struct {
	HighValueThreshold   float64
	HighValueAssignees   []string
	CommercialAssignees  []string
	ResidentialAssignees []string
}

// DefaultConfig mirrors the production routing tables.
func DefaultConfig() *Config {
	return &Config{
		HighValueThreshold:   10000,
		HighValueAssignees:   []string{"sales_manager", "owner"},
		CommercialAssignees:  []string{"commercial_rep", "sales_manager"},
		ResidentialAssignees: []string{"residential_rep"},
	}
}

type Router struct {
	cfg *Config
}

func NewRouter(cfg *Config) *Router {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Router{cfg: cfg}
}

var commercialKeywords = []string{"commercial", "office", "business", "industrial", "warehouse", "retail"}

var residentialKeywords = []string{"residential", "home", "house", "apartment", "condo", "townhouse"}

var numberPattern = regexp.MustCompile(`\$?\s*(\d[\d,]*(?:\.\d+)?)\s*([kK]?)`)

// Route returns the ordered assignee list plus a reason string. The
// high-value check runs first and short-circuits property-type routing; an
// unknown property type falls back to the residential list with a distinct
// reason so callers can flag it for review.
func (r *Router) Route(propertyType, budgetRange string, estimatedValue float64, _ models.Qualification) ([]string, string) {
	if estimatedValue > r.cfg.HighValueThreshold || maxBudgetValue(budgetRange) > r.cfg.HighValueThreshold {
		return append([]string(nil), r.cfg.HighValueAssignees...), "high-value lead routing"
	}

	pt := strings.ToLower(propertyType)
	if containsAny(pt, commercialKeywords) {
		return append([]string(nil), r.cfg.CommercialAssignees...), "commercial property routing"
	}
	if containsAny(pt, residentialKeywords) {
		return append([]string(nil), r.cfg.ResidentialAssignees...), "residential property routing"
	}

	return append([]string(nil), r.cfg.ResidentialAssignees...), "unknown property type, default residential routing"
}

// PrimaryAssignee returns the first assignee, or false when the list is empty.
func (r *Router) PrimaryAssignee(assignees []string) (string, bool) {
	if len(assignees) == 0 {
		return "", false
	}
	return assignees[0], true
}

// maxBudgetValue parses the largest numeric token out of free-form budget
// text ("$8,000-$12,000", "around 15k"). Unparseable text scores zero.
func maxBudgetValue(budgetRange string) float64 {
	max := 0.0
	for _, m := range numberPattern.FindAllStringSubmatch(budgetRange, -1) {
		raw := strings.ReplaceAll(m[1], ",", "")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if m[2] != "" {
			v *= 1000
		}
		if v > max {
			max = v
		}
	}
	return max
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
