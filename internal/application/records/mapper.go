// Package records maps rows of the bulk project export to domain.Project.
package records

import (
	"sitetrack-backend/internal/domain"
	"sitetrack-backend/internal/infrastructure/dataset"
	"sitetrack-backend/internal/pkg/coerce"
)

// MapToProject never fails: missing or malformed cells become "" or 0.
// JAN is only taken from a numeric cell; anything else yields 0 (an unsaved draft).
func MapToProject(rec dataset.RawRecord) domain.Project {
	str := func(col string) string { return coerce.String(rec[col]) }
	num := func(col string) float64 { return coerce.Number(rec[col]) }

	return domain.Project{
		JAN:      coerce.Int(rec[ColJAN]),
		FY:       str(ColFY),
		WorkName: str(ColWorkName),
		Status:   str(ColStatus),
		State:    str(ColState),
		City:     str(ColCity),
		Tender:   ParseTenderDetails(str(ColTenderDetails)),
		Dates: domain.ProjectDates{
			Tender:           str(ColTenderDate),
			LOA:              str(ColLOADate),
			WorkStart:        str(ColWorkStartDate),
			OriginalComplete: str(ColOriginalCompletion),
			LatestComplete:   str(ColLatestCompletion),
		},
		Contract: domain.ContractInfo{
			ValueInternal: num(ColValueInternal),
			ValueUpdated:  num(ColValueUpdated),
			GSTTerms:      str(ColGSTTerms),
		},
		BankGuarantee: domain.BankGuarantee{
			Status:     str(ColBGStatus),
			Value:      num(ColBGValue),
			ExpiryDate: str(ColBGExpiry),
			ClaimDate:  str(ColBGClaim),
		},
		Compliance: domain.ComplianceInfo{
			EMDStatus:        str(ColEMDStatus),
			EMDPaymentStatus: str(ColEMDPayment),
			HRClearance:      str(ColHRClearance),
			PolicyExpiry:     str(ColPolicyExpiry),
			LabourLicense:    str(ColLabourLicense),
			PFESICStatus:     str(ColPFESICStatus),
		},
		Client: domain.ContactInfo{
			Name:           str(ColClientName),
			Designation:    str(ColClientDesignation),
			Mobile:         str(ColClientMobile),
			Email:          str(ColClientEmail),
			CCEmail:        str(ColClientCCEmail),
			BillingAddress: str(ColBillingAddress),
		},
		Subcontractor: domain.SubcontractorInfo{
			Name:            str(ColSubName),
			Proprietor:      str(ColSubProprietor),
			Contact:         str(ColSubContact),
			GSTIN:           str(ColSubGSTIN),
			WorkOrderNumber: str(ColSubWONumber),
			WorkOrderDate:   str(ColSubWODate),
			WorkOrderValue:  num(ColSubWOValue),
		},
		Documents: domain.DocumentLinks{
			LOALink:                str(ColLOALink),
			AgreementLink:          str(ColAgreementLink),
			SubcontractorWorkOrder: str(ColSubWOLink),
		},
		Extra: domain.ExtraInfo{
			EICName:             str(ColEIC),
			PODetails:           str(ColPODetails),
			FinalCompletionDate: str(ColFinalCompletion),
		},
	}
}

// MapAll maps every record, preserving source order.
func MapAll(recs []dataset.RawRecord) []domain.Project {
	out := make([]domain.Project, 0, len(recs))
	for _, r := range recs {
		out = append(out, MapToProject(r))
	}
	return out
}
