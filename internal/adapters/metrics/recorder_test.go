package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding/internal/core/domain/form"
	"onboarding/internal/core/domain/validation"
	"onboarding/internal/core/ports"
	platformMetrics "onboarding/internal/platform/metrics"
)

var _ ports.ActivityRecorder = (*Recorder)(nil)

func scrape(t *testing.T, provider *platformMetrics.Provider) string {
	t.Helper()
	rr := httptest.NewRecorder()
	provider.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	return rr.Body.String()
}

func TestRecorder_RecordSubmission(t *testing.T) {
	provider, err := platformMetrics.NewProvider()
	require.NoError(t, err)
	recorder := NewRecorder(provider)
	ctx := context.Background()

	recorder.RecordSubmission(ctx, form.KindRegistration, false, validation.FieldPhone)
	recorder.RecordSubmission(ctx, form.KindLogin, true, "")

	body := scrape(t, provider)
	assert.Contains(t, body, "onboarding_form_submissions")
	assert.Contains(t, body, `form="registration"`)
	assert.Contains(t, body, `field="phone"`)
	assert.Contains(t, body, `outcome="rejected"`)
	assert.Contains(t, body, `outcome="accepted"`)
}

func TestRecorder_RecordFieldCheck(t *testing.T) {
	provider, err := platformMetrics.NewProvider()
	require.NoError(t, err)
	recorder := NewRecorder(provider)

	recorder.RecordFieldCheck(context.Background(), validation.FieldEmail, validation.KindFormat)

	body := scrape(t, provider)
	assert.Contains(t, body, "onboarding_field_checks")
	assert.Contains(t, body, `result="format"`)
}
