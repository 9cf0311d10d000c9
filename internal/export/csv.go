// Package export renders admin data sets as CSV downloads.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Submissions renders form submissions with a fixed header row.
// Zero rows still produce the header.
func Submissions(rows []*domain.FormSubmission) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"ID", "Name", "Email", "Phone", "Type", "Service", "Message", "Created At"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatInt(r.ID, 10),
			r.Name,
			r.Email,
			deref(r.Phone),
			string(r.Type),
			deref(r.Service),
			deref(r.Message),
			r.CreatedAt.Format(timeLayout),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// Users renders user accounts with a fixed header row.
func Users(rows []*domain.User) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"ID", "Email", "First Name", "Company", "Address", "Created At"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatInt(r.ID, 10),
			r.Email,
			deref(r.Firstname),
			deref(r.CompanyName),
			deref(r.Address),
			r.CreatedAt.Format(timeLayout),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// Partners renders partner rows with a fixed header row.
func Partners(rows []*domain.Partner) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"ID", "Name", "Email", "Phone", "Company", "Website", "Partner Type", "Status", "Created At"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatInt(r.ID, 10),
			r.Name,
			r.Email,
			deref(r.Phone),
			deref(r.Company),
			deref(r.Website),
			deref(r.PartnerType),
			string(r.Status),
			r.CreatedAt.Format(timeLayout),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// Filename derives a dated attachment name like "partners-2024-05-01.csv".
func Filename(prefix string, now time.Time) string {
	return prefix + "-" + now.Format("2006-01-02") + ".csv"
}
