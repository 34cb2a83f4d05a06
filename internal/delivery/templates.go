package delivery

import "fmt"

type messageTemplate struct {
	subject string
	body    string
}

// Canned message bodies. The full HTML versions live with the marketing
// templates; these are the plain-text fallbacks the engine ships with.
var templates = map[string]messageTemplate{
	"quote_thank_you_sms":      {"", "Thanks for requesting a quote! Book anytime: %s"},
	"quote_thank_you_email":    {"Your quote is on the way", "Thanks for requesting a quote. Financing is available through %s. Book anytime: %s"},
	"quote_reminder_sms":       {"", "Still thinking it over? Your quote is ready whenever you are: %s"},
	"quote_reminder_email":     {"Your quote is still available", "Just checking in on the quote we sent. Financing is available through %s. Book anytime: %s"},
	"maybe_education":          {"What goes into a system replacement", "A quick overview of what to expect from an installation."},
	"maybe_testimonial":        {"What our customers say", "A few words from homeowners who recently upgraded."},
	"maybe_financing":          {"Flexible financing options", "Monthly payment options are available through %s."},
	"reactivation_check_in":    {"Checking in", "We wanted to see how things are going with your system."},
	"reactivation_seasonal_promo": {"Seasonal tune-up offer", "Our seasonal maintenance special is now available."},
	"reactivation_rebate_alert": {"New rebates available", "New utility rebates may apply to your replacement."},
	"new_lead_initial_contact": {"We received your request", "Thanks for reaching out. A member of our team will contact you shortly."},
}

// renderTemplate resolves a template name to a subject/body pair, filling in
// the financing partner and scheduling link when the body expects them.
// Unknown template names degrade to sending the name itself so a typo in a
// sequence definition is visible rather than silent.
func renderTemplate(name string, metadata map[string]interface{}) (string, string) {
	tpl, ok := templates[name]
	if !ok {
		return name, name
	}

	partner, _ := metadata["financingPartner"].(string)
	link, _ := metadata["schedulingLink"].(string)

	body := tpl.body
	switch countVerbs(body) {
	case 2:
		body = fmt.Sprintf(body, partner, link)
	case 1:
		if partner != "" && link == "" {
			body = fmt.Sprintf(body, partner)
		} else {
			body = fmt.Sprintf(body, link)
		}
	}
	return tpl.subject, body
}

func countVerbs(s string) int {
	n := 0
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '%' && s[i+1] == 's' {
			n++
		}
	}
	return n
}
