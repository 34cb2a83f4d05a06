// internal/sales/leadrouting/router_test.go
package leadrouting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"command-engine/internal/models"
)

func TestRoute_HighValueOverridesPropertyType(t *testing.T) {
	r := NewRouter(nil)

	// A 15k residential job goes to the high-value list, not the
	// residential rep.
	assignees, reason := r.Route("residential", "", 15000, models.QualificationWarm)
	assert.Equal(t, []string{"sales_manager", "owner"}, assignees)
	assert.Equal(t, "high-value lead routing", reason)
}

func TestRoute_HighValueFromBudgetText(t *testing.T) {
	r := NewRouter(nil)

	tests := []struct {
		name      string
		budget    string
		highValue bool
	}{
		{"range crossing threshold", "$8,000-$12,000", true},
		{"k suffix", "around 15k", true},
		{"below threshold", "$5,000", false},
		{"exactly threshold", "$10,000", false},
		{"unparseable", "whatever it takes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignees, _ := r.Route("residential", tt.budget, 0, models.QualificationWarm)
			if tt.highValue {
				assert.Equal(t, []string{"sales_manager", "owner"}, assignees)
			} else {
				assert.Equal(t, []string{"residential_rep"}, assignees)
			}
		})
	}
}

func TestRoute_PropertyTypes(t *testing.T) {
	r := NewRouter(nil)

	tests := []struct {
		name         string
		propertyType string
		assignees    []string
		reason       string
	}{
		{"commercial", "commercial office", []string{"commercial_rep", "sales_manager"}, "commercial property routing"},
		{"warehouse is commercial", "warehouse", []string{"commercial_rep", "sales_manager"}, "commercial property routing"},
		{"residential", "residential", []string{"residential_rep"}, "residential property routing"},
		{"condo is residential", "condo", []string{"residential_rep"}, "residential property routing"},
		{"unknown falls back", "", []string{"residential_rep"}, "unknown property type, default residential routing"},
		{"garbage falls back", "spaceship", []string{"residential_rep"}, "unknown property type, default residential routing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignees, reason := r.Route(tt.propertyType, "", 0, models.QualificationWarm)
			assert.Equal(t, tt.assignees, assignees)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestRoute_CustomConfig(t *testing.T) {
	r := NewRouter(&Config{
		HighValueThreshold:   5000,
		HighValueAssignees:   []string{"vp_sales"},
		CommercialAssignees:  []string{"biz_team"},
		ResidentialAssignees: []string{"home_team"},
	})

	assignees, _ := r.Route("residential", "$6,000", 0, models.QualificationWarm)
	assert.Equal(t, []string{"vp_sales"}, assignees)

	assignees, _ = r.Route("office", "", 0, models.QualificationWarm)
	assert.Equal(t, []string{"biz_team"}, assignees)
}

func TestPrimaryAssignee(t *testing.T) {
	r := NewRouter(nil)

	primary, ok := r.PrimaryAssignee([]string{"sales_manager", "owner"})
	assert.True(t, ok)
	assert.Equal(t, "sales_manager", primary)

	_, ok = r.PrimaryAssignee(nil)
	assert.False(t, ok)
}

func TestMaxBudgetValue(t *testing.T) {
	tests := []struct {
		budget   string
		expected float64
	}{
		{"$8,000-$12,000", 12000},
		{"around 15k", 15000},
		{"$5,000", 5000},
		{"between 3k and 7k", 7000},
		{"", 0},
		{"cheap as possible", 0},
	}

	for _, tt := range tests {
		t.Run(tt.budget, func(t *testing.T) {
			assert.Equal(t, tt.expected, maxBudgetValue(tt.budget))
		})
	}
}
