package records

import (
	"testing"

	"sitetrack-backend/internal/domain"
	"sitetrack-backend/internal/infrastructure/dataset"

	"github.com/stretchr/testify/assert"
)

func TestMapToProject_Scenario(t *testing.T) {
	p := MapToProject(dataset.RawRecord{
		ColJAN:           42.0,
		ColStatus:        "Work in Progress",
		ColValueInternal: "1,00,00,000",
	})
	assert.Equal(t, 42, p.JAN)
	assert.Equal(t, "Work in Progress", p.Status)
	assert.Equal(t, 10000000.0, p.Contract.ValueInternal)
	assert.Equal(t, domain.StatusOngoing, p.CanonicalStatus())
}

func TestMapToProject_EmptyRecord(t *testing.T) {
	p := MapToProject(dataset.RawRecord{})
	assert.Equal(t, domain.Project{}, p)
}

func TestMapToProject_Coercion(t *testing.T) {
	p := MapToProject(dataset.RawRecord{
		ColJAN:             "1044",
		ColState:           "  Maharashtra ",
		ColCity:            nil,
		ColValueInternal:   "N/A",
		ColValueUpdated:    2500000.0,
		ColBGValue:         "Rs. 1,25,000/-",
		ColBGExpiry:        " 2026-03-31 ",
		ColClientName:      "Executive Engineer, PWD",
		ColLabourLicense:   "LL/2024/118 valid till 2026-01-15",
		ColAgreementLink:   "Not Found",
		ColSubWOValue:      "3,40,000",
		ColFinalCompletion: "nil",
	})
	assert.Equal(t, 0, p.JAN, "text JAN is rejected")
	assert.Equal(t, "Maharashtra", p.State)
	assert.Equal(t, "", p.City)
	assert.Equal(t, 0.0, p.Contract.ValueInternal)
	assert.Equal(t, 2500000.0, p.Contract.ValueUpdated)
	assert.Equal(t, 125000.0, p.BankGuarantee.Value)
	assert.Equal(t, "2026-03-31", p.BankGuarantee.ExpiryDate)
	assert.Equal(t, "Executive Engineer, PWD", p.Client.Name)
	assert.Equal(t, "Not Found", p.Documents.AgreementLink)
	assert.Equal(t, 340000.0, p.Subcontractor.WorkOrderValue)
	assert.Equal(t, "nil", p.Extra.FinalCompletionDate)
}

func TestMapAll_PreservesOrder(t *testing.T) {
	ps := MapAll([]dataset.RawRecord{{ColJAN: 3.0}, {ColJAN: 1.0}, {ColJAN: 2.0}})
	assert.Equal(t, []int{3, 1, 2}, []int{ps[0].JAN, ps[1].JAN, ps[2].JAN})
}
