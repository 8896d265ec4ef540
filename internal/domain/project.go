package domain

// Project is one construction job as normalized from the bulk export.
// Dates are kept as the loosely formatted strings they arrive as; see pkg/dates.
type Project struct {
	JAN           int               `json:"jan"`
	FY            string            `json:"fy"`
	WorkName      string            `json:"workName"`
	Status        string            `json:"status"`
	State         string            `json:"state"`
	City          string            `json:"city"`
	Tender        TenderInfo        `json:"tender"`
	Dates         ProjectDates      `json:"dates"`
	Contract      ContractInfo      `json:"contract"`
	BankGuarantee BankGuarantee     `json:"bankGuarantee"`
	Compliance    ComplianceInfo    `json:"compliance"`
	Client        ContactInfo       `json:"clientContact"`
	Subcontractor SubcontractorInfo `json:"subcontractor"`
	Documents     DocumentLinks     `json:"documents"`
	Extra         ExtraInfo         `json:"extra"`
}

// CanonicalStatus derives the grouping status from the free-text one. Never persisted.
func (p Project) CanonicalStatus() CanonicalStatus {
	return NormalizeProjectStatus(p.Status)
}

type TenderInfo struct {
	Reference string `json:"reference"`
	ID        string `json:"id"`
	UTR       string `json:"utr"`
}

type ProjectDates struct {
	Tender           string `json:"tenderDate"`
	LOA              string `json:"loaDate"`
	WorkStart        string `json:"workStartDate"`
	OriginalComplete string `json:"originalCompletionDate"`
	LatestComplete   string `json:"latestCompletionDate"`
}

// ContractInfo amounts are in rupees. ValueUpdated is expected to be >= ValueInternal
// but this is not enforced.
type ContractInfo struct {
	ValueInternal float64 `json:"valueInternal"`
	ValueUpdated  float64 `json:"valueUpdated"`
	GSTTerms      string  `json:"gstTerms"`
}

type BankGuarantee struct {
	Status     string  `json:"status"`
	Value      float64 `json:"value"`
	ExpiryDate string  `json:"expiryDate"`
	ClaimDate  string  `json:"claimDate"`
}

type ComplianceInfo struct {
	EMDStatus        string `json:"emdStatus"`
	EMDPaymentStatus string `json:"emdPaymentStatus"`
	HRClearance      string `json:"hrClearance"`
	PolicyExpiry     string `json:"policyExpiry"`
	LabourLicense    string `json:"labourLicense"`
	PFESICStatus     string `json:"pfEsicStatus"`
}

// ContactInfo is shared by the project's client snapshot and the Client entity.
type ContactInfo struct {
	Name           string `json:"name"`
	Designation    string `json:"designation"`
	Mobile         string `json:"mobile"`
	Email          string `json:"email"`
	CCEmail        string `json:"ccEmail"`
	BillingAddress string `json:"billingAddress"`
}

type SubcontractorInfo struct {
	Name            string  `json:"name"`
	Proprietor      string  `json:"proprietor"`
	Contact         string  `json:"contact"`
	GSTIN           string  `json:"gstin"`
	WorkOrderNumber string  `json:"workOrderNumber"`
	WorkOrderDate   string  `json:"workOrderDate"`
	WorkOrderValue  float64 `json:"workOrderValue"`
}

type DocumentLinks struct {
	LOALink                string `json:"loaLink"`
	AgreementLink          string `json:"agreementLink"`
	SubcontractorWorkOrder string `json:"subcontractorWorkOrderLink"`
}

type ExtraInfo struct {
	EICName             string `json:"eicName"`
	PODetails           string `json:"poDetails"`
	FinalCompletionDate string `json:"finalCompletionDate"`
}
