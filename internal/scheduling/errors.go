package scheduling

import "errors"

// Sentinel errors for booking and lookup failures. Callers (the tool
// dispatcher) match these with errors.Is to turn them into structured
// failure payloads rather than transport errors.
var (
	ErrSlotNotFound         = errors.New("scheduling: slot not found")
	ErrSlotUnavailable      = errors.New("scheduling: slot is no longer available")
	ErrPatientNotFound      = errors.New("scheduling: patient not found")
	ErrProviderNotFound     = errors.New("scheduling: provider not found")
	ErrInsuranceNotAccepted = errors.New("scheduling: provider does not accept patient insurance")
	ErrNotAcceptingPatients = errors.New("scheduling: provider is not accepting new patients")
	ErrPolicyNotFound       = errors.New("scheduling: no policy on file for carrier")
	ErrProtocolNotFound     = errors.New("scheduling: no clinical protocol matches")
)
