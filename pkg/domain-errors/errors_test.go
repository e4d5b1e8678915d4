package domainerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "salescredit/pkg/domain-errors"
)

func TestWrapPreservesDomainCode(t *testing.T) {
	inner := dErrors.New(dErrors.CodeLimitExceeded, "over the limit")
	wrapped := dErrors.Wrap(fmt.Errorf("issuing: %w", inner), dErrors.CodeInternal, "issue failed")

	assert.Equal(t, dErrors.CodeLimitExceeded, dErrors.CodeOf(wrapped))
	assert.True(t, dErrors.HasCode(wrapped, dErrors.CodeLimitExceeded))
}

func TestWrapPlainError(t *testing.T) {
	cause := errors.New("disk full")
	wrapped := dErrors.Wrap(cause, dErrors.CodeInternal, "store failed")

	assert.Equal(t, dErrors.CodeInternal, dErrors.CodeOf(wrapped))
	assert.ErrorIs(t, wrapped, cause)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, dErrors.Wrap(nil, dErrors.CodeInternal, "ignored"))
}

func TestUpstreamDetailSurvivesWrapping(t *testing.T) {
	up := dErrors.NewUpstream(503, `{"message":"maintenance"}`)
	wrapped := dErrors.Wrap(up, dErrors.CodeInternal, "fetch failed")

	detail := dErrors.UpstreamOf(wrapped)
	require.NotNil(t, detail)
	assert.Equal(t, 503, detail.Status)
	assert.Contains(t, detail.Body, "maintenance")
	assert.Equal(t, dErrors.CodeUpstream, dErrors.CodeOf(wrapped))
}

func TestCodeOfUnknownError(t *testing.T) {
	assert.Equal(t, dErrors.CodeInternal, dErrors.CodeOf(errors.New("anonymous")))
}
