package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
)

func TestSubmissionsEmptyHasHeaderOnly(t *testing.T) {
	body, err := Submissions(nil)
	require.NoError(t, err)
	require.Equal(t, "ID,Name,Email,Phone,Type,Service,Message,Created At\n", string(body))
}

func TestUsersEmptyHasHeaderOnly(t *testing.T) {
	body, err := Users(nil)
	require.NoError(t, err)
	require.Equal(t, "ID,Email,First Name,Company,Address,Created At\n", string(body))
}

func TestPartnersEmptyHasHeaderOnly(t *testing.T) {
	body, err := Partners(nil)
	require.NoError(t, err)
	require.Equal(t, "ID,Name,Email,Phone,Company,Website,Partner Type,Status,Created At\n", string(body))
}

func TestSubmissionsQuotesDelimiter(t *testing.T) {
	msg := "hello, world"
	sub := &domain.FormSubmission{
		ID:        7,
		Name:      "Jo",
		Email:     "jo@example.com",
		Type:      domain.SubmissionTypeContact,
		Message:   &msg,
		CreatedAt: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
	}
	body, err := Submissions([]*domain.FormSubmission{sub})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], `"hello, world"`)
	require.Contains(t, lines[1], "2024-05-01 10:30:00")
}

func TestPartnersRendersNilFieldsEmpty(t *testing.T) {
	p := &domain.Partner{
		ID:        3,
		Name:      "Acme",
		Email:     "acme@example.com",
		Status:    domain.PartnerStatusApproved,
		CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	body, err := Partners([]*domain.Partner{p})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "3,Acme,acme@example.com,,,,,approved,2024-01-02 00:00:00", lines[1])
}

func TestFilename(t *testing.T) {
	name := Filename("partners", time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	require.Equal(t, "partners-2024-05-01.csv", name)
}
