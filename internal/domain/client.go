package domain

import "time"

// Client is an explicitly managed client record. Name uniqueness is a caller
// convention (lookup before create), not enforced by storage.
type Client struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Logo      string      `json:"logo,omitempty"`
	Contact   ContactInfo `json:"contact"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// ClientInput is the user-supplied part of a Client.
type ClientInput struct {
	Name    string      `json:"name"`
	Logo    string      `json:"logo,omitempty"`
	Contact ContactInfo `json:"contact"`
}

// ClientPatch is a partial update; nil fields are left untouched.
type ClientPatch struct {
	Name    *string       `json:"name,omitempty"`
	Logo    *string       `json:"logo,omitempty"`
	Contact *ContactPatch `json:"contact,omitempty"`
}

type ContactPatch struct {
	Name           *string `json:"name,omitempty"`
	Designation    *string `json:"designation,omitempty"`
	Mobile         *string `json:"mobile,omitempty"`
	Email          *string `json:"email,omitempty"`
	CCEmail        *string `json:"ccEmail,omitempty"`
	BillingAddress *string `json:"billingAddress,omitempty"`
}

// Apply merges the non-nil fields of p into c.
func (p ContactPatch) Apply(c *ContactInfo) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&c.Name, p.Name)
	set(&c.Designation, p.Designation)
	set(&c.Mobile, p.Mobile)
	set(&c.Email, p.Email)
	set(&c.CCEmail, p.CCEmail)
	set(&c.BillingAddress, p.BillingAddress)
}
