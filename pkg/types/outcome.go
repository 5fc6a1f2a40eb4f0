package types

import "fmt"

// Status is the tri-state result of one removal attempt.
type Status string

const (
	// StatusRemoved means the target existed and was deleted.
	StatusRemoved Status = "removed"
	// StatusNotFound means the target was already absent. This is the
	// expected steady-state outcome and never an error.
	StatusNotFound Status = "not_found"
	// StatusFailed means the target could not be removed. The reason is
	// carried on the Outcome; the failure never aborts sibling targets.
	StatusFailed Status = "failed"
)

// Outcome records what happened to a single target. Immutable once created.
type Outcome struct {
	Status Status
	Reason string
}

// Removed returns the outcome for a target that was deleted.
func Removed() Outcome {
	return Outcome{Status: StatusRemoved}
}

// NotFound returns the outcome for a target that was already absent.
func NotFound() Outcome {
	return Outcome{Status: StatusNotFound}
}

// Failed converts an error into a failure outcome.
func Failed(err error) Outcome {
	return Outcome{Status: StatusFailed, Reason: err.Error()}
}

// Failedf builds a failure outcome from a format string.
func Failedf(format string, args ...interface{}) Outcome {
	return Outcome{Status: StatusFailed, Reason: fmt.Sprintf(format, args...)}
}

func (o Outcome) String() string {
	if o.Status == StatusFailed && o.Reason != "" {
		return fmt.Sprintf("%s (%s)", o.Status, o.Reason)
	}
	return string(o.Status)
}

// TargetKind identifies which component produced a result.
type TargetKind string

const (
	KindDataPath   TargetKind = "data_path"
	KindShortcut   TargetKind = "shortcut"
	KindMachineKey TargetKind = "machine_key"
	KindUserSubkey TargetKind = "user_subkey"
	KindPackage    TargetKind = "package"
)

// TargetResult pairs one target with its outcome. Target is the
// human-readable identity of the thing acted on: a path, a registry key,
// a shortcut file, or a package name.
type TargetResult struct {
	Kind    TargetKind
	Target  string
	Profile string // owning profile name, empty for machine-wide targets
	Outcome Outcome
}
