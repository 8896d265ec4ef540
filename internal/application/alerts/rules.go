package alerts

import (
	"fmt"
	"strings"
	"time"

	"sitetrack-backend/internal/domain"
	"sitetrack-backend/internal/pkg/dates"

	"github.com/dustin/go-humanize"
)

const (
	expiryCriticalDays = 30
	expiryWarningDays  = 60
	expiryInfoDays     = 90
	approachingDays    = 30
)

// expirySeverity buckets days to expiry. Already expired is critical; beyond
// 90 days raises nothing.
func expirySeverity(days int) (domain.AlertSeverity, bool) {
	switch {
	case days <= expiryCriticalDays:
		return domain.SeverityCritical, true
	case days <= expiryWarningDays:
		return domain.SeverityWarning, true
	case days <= expiryInfoDays:
		return domain.SeverityInfo, true
	}
	return "", false
}

func daysPtr(d int) *int { return &d }

func label(p domain.Project) string {
	if p.WorkName != "" {
		return fmt.Sprintf("JAN %d (%s)", p.JAN, p.WorkName)
	}
	return fmt.Sprintf("JAN %d", p.JAN)
}

// rupees uses international digit grouping and keeps paise when present.
func rupees(v float64) string {
	return "Rs. " + humanize.CommafWithDigits(v, 2)
}

func whenText(days int) string {
	switch {
	case days < -1:
		return fmt.Sprintf("%d days ago", -days)
	case days == -1:
		return "yesterday"
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	}
	return fmt.Sprintf("in %d days", days)
}

type expiryRule struct {
	key      string
	category domain.AlertCategory
	subject  string
	action   string
}

func (r expiryRule) evaluate(p domain.Project, due time.Time, now time.Time, extra string) (domain.Alert, bool) {
	days := dates.DaysUntil(due, now)
	sev, ok := expirySeverity(days)
	if !ok {
		return domain.Alert{}, false
	}
	title := r.subject + " expiring soon"
	verb := "expires"
	if days < 0 {
		title = r.subject + " expired"
		verb = "expired"
	} else if sev != domain.SeverityCritical {
		title = r.subject + " expiring"
	}
	msg := fmt.Sprintf("%s for %s %s %s (%s)", r.subject, label(p), verb, whenText(days), due.Format("02 Jan 2006"))
	if extra != "" {
		msg += ". " + extra
	}
	return domain.Alert{
		ID:            fmt.Sprintf("%d-%s", p.JAN, r.key),
		Severity:      sev,
		Category:      r.category,
		Title:         title,
		Message:       msg,
		ProjectJAN:    p.JAN,
		ProjectName:   p.WorkName,
		DaysRemaining: daysPtr(days),
		Action:        r.action,
	}, true
}

var (
	bankGuaranteeRule = expiryRule{
		key:      "bg-expiry",
		category: domain.CategoryBankGuarantee,
		subject:  "Bank guarantee",
		action:   "Extend the bank guarantee or file the claim with the bank",
	}
	policyRule = expiryRule{
		key:      "policy-expiry",
		category: domain.CategoryCompliance,
		subject:  "Insurance policy",
		action:   "Renew the CAR/WC policy with the insurer",
	}
	labourLicenseRule = expiryRule{
		key:      "labour-license-expiry",
		category: domain.CategoryCompliance,
		subject:  "Labour license",
		action:   "Apply for labour license renewal",
	}
)

func checkBankGuarantee(p domain.Project, now time.Time) (domain.Alert, bool) {
	due, ok := dates.Parse(p.BankGuarantee.ExpiryDate)
	if !ok {
		return domain.Alert{}, false
	}
	extra := ""
	if p.BankGuarantee.Value > 0 {
		extra = "Guarantee value " + rupees(p.BankGuarantee.Value)
	}
	return bankGuaranteeRule.evaluate(p, due, now, extra)
}

func checkPolicy(p domain.Project, now time.Time) (domain.Alert, bool) {
	due, ok := dates.Parse(p.Compliance.PolicyExpiry)
	if !ok {
		return domain.Alert{}, false
	}
	return policyRule.evaluate(p, due, now, "")
}

func checkLabourLicense(p domain.Project, now time.Time) (domain.Alert, bool) {
	due, ok := dates.FindISODate(p.Compliance.LabourLicense)
	if !ok {
		return domain.Alert{}, false
	}
	return labourLicenseRule.evaluate(p, due, now, "")
}

func checkApproachingCompletion(p domain.Project, now time.Time) (domain.Alert, bool) {
	due, ok := dates.Parse(p.Dates.LatestComplete)
	if !ok {
		return domain.Alert{}, false
	}
	days := dates.DaysUntil(due, now)
	if days < 0 || days > approachingDays {
		return domain.Alert{}, false
	}
	return domain.Alert{
		ID:            fmt.Sprintf("%d-completion-approaching", p.JAN),
		Severity:      domain.SeverityInfo,
		Category:      domain.CategoryDueDates,
		Title:         "Completion date approaching",
		Message:       fmt.Sprintf("%s is due for completion %s (%s)", label(p), whenText(days), due.Format("02 Jan 2006")),
		ProjectJAN:    p.JAN,
		ProjectName:   p.WorkName,
		DaysRemaining: daysPtr(days),
		Action:        "Confirm progress with the site EIC or request an extension",
	}, true
}

func checkOverdueCompletion(p domain.Project, now time.Time) (domain.Alert, bool) {
	due, ok := dates.Parse(p.Dates.LatestComplete)
	if !ok {
		return domain.Alert{}, false
	}
	days := dates.DaysUntil(due, now)
	if days >= 0 {
		return domain.Alert{}, false
	}
	return domain.Alert{
		ID:            fmt.Sprintf("%d-completion-overdue", p.JAN),
		Severity:      domain.SeverityCritical,
		Category:      domain.CategoryDueDates,
		Title:         "Completion overdue",
		Message:       fmt.Sprintf("%s passed its completion date %s (%s)", label(p), whenText(days), due.Format("02 Jan 2006")),
		ProjectJAN:    p.JAN,
		ProjectName:   p.WorkName,
		DaysRemaining: daysPtr(days),
		Action:        "Record the completion or apply for an extension of time",
	}, true
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func missingDocs(p domain.Project) []domain.Alert {
	var out []domain.Alert
	if blank(p.Documents.LOALink) {
		out = append(out, domain.Alert{
			ID:          fmt.Sprintf("%d-missing-loa", p.JAN),
			Severity:    domain.SeverityWarning,
			Category:    domain.CategoryMissingDocs,
			Title:       "LOA document missing",
			Message:     fmt.Sprintf("No LOA document is linked for %s", label(p)),
			ProjectJAN:  p.JAN,
			ProjectName: p.WorkName,
			Action:      "Upload the Letter of Award and add its link",
		})
	}
	if a := p.Documents.AgreementLink; blank(a) || strings.Contains(strings.ToLower(a), "not found") {
		out = append(out, domain.Alert{
			ID:          fmt.Sprintf("%d-missing-agreement", p.JAN),
			Severity:    domain.SeverityWarning,
			Category:    domain.CategoryMissingDocs,
			Title:       "Agreement document missing",
			Message:     fmt.Sprintf("No agreement document is linked for %s", label(p)),
			ProjectJAN:  p.JAN,
			ProjectName: p.WorkName,
			Action:      "Upload the signed agreement and add its link",
		})
	}
	return out
}

func pending(s string) bool {
	return blank(s) || strings.Contains(strings.ToLower(s), "pending")
}

func hrPF(p domain.Project) []domain.Alert {
	var out []domain.Alert
	if pending(p.Compliance.HRClearance) {
		out = append(out, domain.Alert{
			ID:          fmt.Sprintf("%d-hr-pending", p.JAN),
			Severity:    domain.SeverityWarning,
			Category:    domain.CategoryHRPF,
			Title:       "HR clearance pending",
			Message:     fmt.Sprintf("HR clearance is pending for %s", label(p)),
			ProjectJAN:  p.JAN,
			ProjectName: p.WorkName,
			Action:      "Follow up with HR for clearance",
		})
	}
	if pending(p.Compliance.PFESICStatus) {
		out = append(out, domain.Alert{
			ID:          fmt.Sprintf("%d-pf-esic-pending", p.JAN),
			Severity:    domain.SeverityWarning,
			Category:    domain.CategoryHRPF,
			Title:       "PF/ESIC compliance pending",
			Message:     fmt.Sprintf("PF/ESIC registration or filing is pending for %s", label(p)),
			ProjectJAN:  p.JAN,
			ProjectName: p.WorkName,
			Action:      "Complete PF/ESIC registration for site labour",
		})
	}
	return out
}

// ForProject runs every rule against p. Missing or unparseable dates only
// suppress the rule that needed them.
func ForProject(p domain.Project, now time.Time) []domain.Alert {
	var out []domain.Alert
	for _, check := range []func(domain.Project, time.Time) (domain.Alert, bool){
		checkBankGuarantee,
		checkPolicy,
		checkLabourLicense,
		checkApproachingCompletion,
		checkOverdueCompletion,
	} {
		if a, ok := check(p, now); ok {
			out = append(out, a)
		}
	}
	out = append(out, missingDocs(p)...)
	out = append(out, hrPF(p)...)
	return out
}
