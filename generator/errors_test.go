package generator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   Failure
		wantOK bool
	}{
		{
			name:   "reported",
			err:    &ReportedError{Message: "quota exceeded"},
			want:   Failure{RecordMessage: "quota exceeded", ClientMessage: "quota exceeded"},
			wantOK: true,
		},
		{
			name:   "timeout",
			err:    fmt.Errorf("call: %w", ErrTimeout),
			want:   Failure{RecordMessage: "Request timed out", ClientMessage: "Request timed out. Please try again."},
			wantOK: true,
		},
		{
			name: "transport",
			err:  &TransportError{Err: errors.New("dial tcp: connection refused")},
			want: Failure{
				RecordMessage: "API request failed: dial tcp: connection refused",
				ClientMessage: "Failed to connect to image generation service",
			},
			wantOK: true,
		},
		{
			name:   "unexpected",
			err:    errors.New("boom"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
