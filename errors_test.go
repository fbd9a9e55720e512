package riskengine

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that all sentinel errors are defined correctly.
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "ErrFrameworkNotFound",
			err:  ErrFrameworkNotFound,
			want: "framework not found",
		},
		{
			name: "ErrNilResolver",
			err:  ErrNilResolver,
			want: "asset resolver is nil",
		},
		{
			name: "ErrInvalidConfig",
			err:  ErrInvalidConfig,
			want: "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatalf("sentinel error %s is nil", tt.name)
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("error message = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestEngineError_Error verifies the formatted message for each shape.
func TestEngineError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *EngineError
		want string
	}{
		{
			name: "with underlying error",
			err:  &EngineError{Op: "Engine.ScoreFindings", Kind: KindValidation, Err: ErrNilResolver},
			want: "riskengine: Engine.ScoreFindings (validation): asset resolver is nil",
		},
		{
			name: "without underlying error",
			err:  &EngineError{Op: "Engine.AnalyzeGaps", Kind: KindNotFound},
			want: "riskengine: Engine.AnalyzeGaps: not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestEngineError_Unwrap verifies errors.Is reaches the wrapped error.
func TestEngineError_Unwrap(t *testing.T) {
	wrapped := fmt.Errorf("framework %q: %w", "sox", ErrFrameworkNotFound)
	err := newError("Engine.AnalyzeGaps", KindNotFound, wrapped)

	if !errors.Is(err, ErrFrameworkNotFound) {
		t.Error("errors.Is() should match the wrapped sentinel")
	}
	if !strings.Contains(err.Error(), "sox") {
		t.Errorf("Error() = %q, should contain framework id", err.Error())
	}

	var engineErr *EngineError
	if !errors.As(err, &engineErr) {
		t.Fatal("errors.As() should extract *EngineError")
	}
	if engineErr.Kind != KindNotFound {
		t.Errorf("Kind = %q, want %q", engineErr.Kind, KindNotFound)
	}
}

// TestEngineError_Is verifies Kind and Op based matching.
func TestEngineError_Is(t *testing.T) {
	err := newError("Engine.ScoreFindings", KindValidation, ErrNilResolver)

	if !errors.Is(err, &EngineError{Kind: KindValidation}) {
		t.Error("should match on Kind alone")
	}
	if !errors.Is(err, &EngineError{Op: "Engine.ScoreFindings", Kind: KindValidation}) {
		t.Error("should match on Op and Kind")
	}
	if errors.Is(err, &EngineError{Op: "Engine.AnalyzeGaps", Kind: KindValidation}) {
		t.Error("should not match a different Op")
	}
	if errors.Is(err, &EngineError{Kind: KindAnalysis}) {
		t.Error("should not match a different Kind")
	}
}
