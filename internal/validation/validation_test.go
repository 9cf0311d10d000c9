package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/dto"
	apperrors "github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

func TestValidateStructPasses(t *testing.T) {
	req := dto.LoginRequest{Email: "jo@example.com", Password: "secret"}
	require.NoError(t, ValidateStruct(req))
}

func TestValidateStructFieldErrors(t *testing.T) {
	req := dto.RegisterRequest{Email: "not-an-email", Password: "x"}
	err := ValidateStruct(req)
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, 400, domainErr.HTTPStatus)
	require.Contains(t, domainErr.Details, "email")
	require.Contains(t, domainErr.Details, "password")
	require.Contains(t, domainErr.Details, "firstname")
}

func TestValidateStructOneOf(t *testing.T) {
	req := dto.CreateSubmissionRequest{Name: "Jo", Email: "jo@example.com", Type: "spam"}
	err := ValidateStruct(req)
	require.Error(t, err)
	require.Contains(t, apperrors.ToDomainError(err).Details, "type")
}
