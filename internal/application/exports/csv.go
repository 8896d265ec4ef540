// Package exports writes project and alert lists as CSV downloads.
package exports

import (
	"encoding/csv"
	"io"
	"strconv"

	"sitetrack-backend/internal/domain"
)

var projectHeader = []string{
	"JAN", "FY", "Name of Work", "Status", "Canonical Status", "State", "City",
	"Client", "Contract Value (Internal)", "Contract Value (Updated)",
	"Original Completion", "Latest Completion", "BG Expiry", "EIC",
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ProjectsCSV writes one row per project in the given order.
func ProjectsCSV(w io.Writer, ps []domain.Project) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(projectHeader); err != nil {
		return err
	}
	for _, p := range ps {
		row := []string{
			strconv.Itoa(p.JAN),
			p.FY,
			p.WorkName,
			p.Status,
			string(p.CanonicalStatus()),
			p.State,
			p.City,
			p.Client.Name,
			money(p.Contract.ValueInternal),
			money(p.Contract.ValueUpdated),
			p.Dates.OriginalComplete,
			p.Dates.LatestComplete,
			p.BankGuarantee.ExpiryDate,
			p.Extra.EICName,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var alertHeader = []string{"Severity", "Category", "JAN", "Project", "Title", "Message", "Days Remaining", "Action"}

// AlertsCSV writes one row per alert; the day count is blank when not date based.
func AlertsCSV(w io.Writer, as []domain.Alert) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(alertHeader); err != nil {
		return err
	}
	for _, a := range as {
		days := ""
		if a.DaysRemaining != nil {
			days = strconv.Itoa(*a.DaysRemaining)
		}
		row := []string{
			string(a.Severity),
			string(a.Category),
			strconv.Itoa(a.ProjectJAN),
			a.ProjectName,
			a.Title,
			a.Message,
			days,
			a.Action,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
