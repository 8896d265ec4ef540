package clients

import (
	"strings"

	"sitetrack-backend/internal/domain"
)

const (
	SourceExplicit = "explicit"
	SourceProjects = "projects"
)

// MergedClient is a client as the dashboard lists it: either a managed record
// or one implied by the client contact on project rows.
type MergedClient struct {
	ID                 string             `json:"id,omitempty"`
	Name               string             `json:"name"`
	Logo               string             `json:"logo,omitempty"`
	Contact            domain.ContactInfo `json:"contact"`
	Source             string             `json:"source"`
	ProjectJANs        []int              `json:"projectJans"`
	TotalContractValue float64            `json:"totalContractValue"`
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Merge joins managed clients with project contact names on the trimmed,
// lower-cased name. Managed records win; implied clients take the contact
// snapshot of their first project. Projects without a contact name are ignored.
// Spelling variants of one name still produce separate entries.
func Merge(explicit []domain.Client, projects []domain.Project) []MergedClient {
	out := make([]MergedClient, 0, len(explicit))
	index := make(map[string]int, len(explicit))
	for _, c := range explicit {
		k := nameKey(c.Name)
		if _, dup := index[k]; dup {
			continue
		}
		index[k] = len(out)
		out = append(out, MergedClient{
			ID:          c.ID,
			Name:        c.Name,
			Logo:        c.Logo,
			Contact:     c.Contact,
			Source:      SourceExplicit,
			ProjectJANs: []int{},
		})
	}
	for _, p := range projects {
		k := nameKey(p.Client.Name)
		if k == "" {
			continue
		}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, MergedClient{
				Name:        p.Client.Name,
				Contact:     p.Client,
				Source:      SourceProjects,
				ProjectJANs: []int{},
			})
		}
		out[i].ProjectJANs = append(out[i].ProjectJANs, p.JAN)
		out[i].TotalContractValue += p.Contract.ValueInternal
	}
	return out
}
