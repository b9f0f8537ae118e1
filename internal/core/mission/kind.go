package mission

import "fmt"

// Kind is the typed work descriptor for a mission. Work executors switch
// on Kind; it is an explicit field, never inferred from identifier text.
type Kind string

const (
	KindFoundation   Kind = "foundation"
	KindDataProtocol Kind = "data-protocol"
	KindTestSuite    Kind = "test-suite"
	KindGeneral      Kind = "general"
)

// AllKinds lists every legal mission kind.
var AllKinds = []Kind{
	KindFoundation,
	KindDataProtocol,
	KindTestSuite,
	KindGeneral,
}

// DefaultKind returns the kind assigned when a mission does not declare one.
func DefaultKind() Kind {
	return KindGeneral
}

// ParseKind validates a raw kind string from the ledger or user input.
// An empty string maps to the default kind.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return DefaultKind(), nil
	}
	for _, kind := range AllKinds {
		if Kind(s) == kind {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown mission kind %q", s)
}
