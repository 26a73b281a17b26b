package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.severity.String())
		})
	}
}

func TestSeverityOrdering(t *testing.T) {
	// Error is the zero value so uninitialized issues read as errors,
	// never silently as info.
	assert.Equal(t, Severity(0), SeverityError)
	assert.Less(t, int(SeverityError), int(SeverityWarning))
	assert.Less(t, int(SeverityWarning), int(SeverityInfo))
	assert.Less(t, int(SeverityInfo), int(SeverityCritical))
}
