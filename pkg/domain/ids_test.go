package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "salescredit/pkg/domain"
	dErrors "salescredit/pkg/domain-errors"
)

func TestParseSalesmanID(t *testing.T) {
	fresh := id.NewSalesmanID()
	parsed, err := id.ParseSalesmanID(fresh.String())
	require.NoError(t, err)
	assert.Equal(t, fresh, parsed)

	for name, input := range map[string]string{
		"empty":    "",
		"spaces":   "   ",
		"garbage":  "not-a-uuid",
		"nil uuid": "00000000-0000-0000-0000-000000000000",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := id.ParseSalesmanID(input)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
		})
	}
}

func TestParseCreditID(t *testing.T) {
	fresh := id.NewCreditID()
	parsed, err := id.ParseCreditID(fresh.String())
	require.NoError(t, err)
	assert.Equal(t, fresh, parsed)

	_, err = id.ParseCreditID("not-a-uuid")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func TestParseLicenseID(t *testing.T) {
	parsed, err := id.ParseLicenseID("  lic-42  ")
	require.NoError(t, err)
	assert.Equal(t, id.LicenseID("lic-42"), parsed)

	_, err = id.ParseLicenseID("   ")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func TestParseUserID(t *testing.T) {
	parsed, err := id.ParseUserID("42")
	require.NoError(t, err)
	assert.Equal(t, id.UserID("42"), parsed)

	_, err = id.ParseUserID("")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}
