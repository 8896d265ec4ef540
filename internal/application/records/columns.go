package records

// Column headers of the bulk project export.
const (
	ColJAN                = "JAN"
	ColFY                 = "FY"
	ColWorkName           = "Name of Work"
	ColStatus             = "Current Status"
	ColState              = "State"
	ColCity               = "City / Location"
	ColTenderDetails      = "Tender Reference Number / Tender ID / EMD UTR Details"
	ColTenderDate         = "Tender Date"
	ColLOADate            = "LOA / Work Order Date"
	ColWorkStartDate      = "Work Start Date"
	ColOriginalCompletion = "Original Date of Completion as per LOA"
	ColLatestCompletion   = "Latest Date of Completion (incl. Extensions)"
	ColValueInternal      = "Contract Value (Internal) incl. GST"
	ColValueUpdated       = "Updated Contract Value after Deviation incl. GST"
	ColGSTTerms           = "GST Terms as per Contract"

	ColBGStatus = "Bank Guarantee (PBG) Status"
	ColBGValue  = "Bank Guarantee (PBG) Value"
	ColBGExpiry = "Bank Guarantee (PBG) Expiry Date"
	ColBGClaim  = "Bank Guarantee (PBG) Claim Date"

	ColEMDStatus     = "EMD Status"
	ColEMDPayment    = "EMD Payment Status (Refund / Adjusted)"
	ColHRClearance   = "HR Clearance Status"
	ColPolicyExpiry  = "Insurance Policy (CAR / WC) Expiry Date"
	ColLabourLicense = "Labour License Number & Validity"
	ColPFESICStatus  = "PF / ESIC Registration & Compliance Status"

	ColClientName        = "Client Contact Person Name"
	ColClientDesignation = "Client Contact Person Designation"
	ColClientMobile      = "Client Contact Mobile Number"
	ColClientEmail       = "Client Contact Email ID"
	ColClientCCEmail     = "Client CC Email IDs"
	ColBillingAddress    = "Client Billing Address"

	ColSubName       = "Sub-Contractor Firm Name"
	ColSubProprietor = "Sub-Contractor Proprietor Name"
	ColSubContact    = "Sub-Contractor Contact Details"
	ColSubGSTIN      = "Sub-Contractor GSTIN"
	ColSubWONumber   = "Sub-Contractor Work Order Number"
	ColSubWODate     = "Sub-Contractor Work Order Date"
	ColSubWOValue    = "Sub-Contractor Work Order Value"

	ColLOALink       = "LOA Document Link"
	ColAgreementLink = "Agreement Document Link"
	ColSubWOLink     = "Sub-Contractor Work Order Link"

	ColEIC             = "Internal EIC (Engineer-in-Charge)"
	ColPODetails       = "PO Details"
	ColFinalCompletion = "Final Date of Completion (after Deviation)"
)
