package domain

type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityWarning  AlertSeverity = "warning"
	SeverityInfo     AlertSeverity = "info"
)

// Rank orders severities critical < warning < info.
func (s AlertSeverity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	}
	return 3
}

type AlertCategory string

const (
	CategoryBankGuarantee AlertCategory = "bank-guarantee"
	CategoryCompliance    AlertCategory = "compliance"
	CategoryDueDates      AlertCategory = "due-dates"
	CategoryMissingDocs   AlertCategory = "missing-docs"
	CategoryHRPF          AlertCategory = "hr-pf"
)

// AlertCategories is the fixed category order used for grouping.
var AlertCategories = []AlertCategory{
	CategoryBankGuarantee,
	CategoryCompliance,
	CategoryDueDates,
	CategoryMissingDocs,
	CategoryHRPF,
}

// Alert is derived on every request and never persisted.
// DaysRemaining is negative once overdue and nil when the rule is not date based.
type Alert struct {
	ID            string        `json:"id"`
	Severity      AlertSeverity `json:"severity"`
	Category      AlertCategory `json:"category"`
	Title         string        `json:"title"`
	Message       string        `json:"message"`
	ProjectJAN    int           `json:"projectJan"`
	ProjectName   string        `json:"projectName"`
	DaysRemaining *int          `json:"daysRemaining,omitempty"`
	Action        string        `json:"action,omitempty"`
}
