package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := MissingMethod("account", "total")

	msg := err.Error()
	if !strings.HasPrefix(msg, "[dispatch] missing_method") {
		t.Fatalf("Unexpected prefix: %s", msg)
	}
	if !strings.Contains(msg, "account.total") {
		t.Fatalf("Expected object.method in message, got: %s", msg)
	}
}

func TestError_FormatWithCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(PhasePlan, KindDecode, cause, "decode manifest")

	msg := err.Error()
	if !strings.Contains(msg, "caused by: boom") {
		t.Fatalf("Expected cause in message, got: %s", msg)
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("Expected errors.Is to reach the cause")
	}
}

func TestError_IsMatchesPhaseAndKind(t *testing.T) {
	err := InvalidArgument(PhaseCompose, "target is nil")

	if !stderrors.Is(err, &Error{Phase: PhaseCompose, Kind: KindInvalidArgument}) {
		t.Fatal("Expected match on same phase and kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseDispatch, Kind: KindInvalidArgument}) {
		t.Fatal("Should not match a different phase")
	}
	if stderrors.Is(err, &Error{Phase: PhaseCompose, Kind: KindMissingMethod}) {
		t.Fatal("Should not match a different kind")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseCompose, KindInvalidArgument).
		Object("alice").
		Method("inc").
		Detail("provider %s is nil", "counter").
		Build()

	if err.Object != "alice" || err.Method != "inc" {
		t.Fatalf("Builder lost fields: %+v", err)
	}
	if err.Detail != "provider counter is nil" {
		t.Fatalf("Detail not formatted: %s", err.Detail)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"not found", NotFound(PhasePlan, "object", "alice"), PhasePlan, KindNotFound},
		{"invalid mode", InvalidMode(PhasePlan, "merge"), PhasePlan, KindInvalidMode},
		{"decode", Decode("bad toml", nil), PhasePlan, KindDecode},
		{"closed", Closed(PhaseRegistry, "table"), PhaseRegistry, KindClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Fatalf("Expected phase %s, got %s", tt.phase, tt.err.Phase)
			}
			if tt.err.Kind != tt.kind {
				t.Fatalf("Expected kind %s, got %s", tt.kind, tt.err.Kind)
			}
		})
	}
}
