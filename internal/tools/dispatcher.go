package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harborhealth/scheduling-agent/internal/scheduling"
	"github.com/harborhealth/scheduling-agent/pkg/logging"
)

// Result is the envelope every tool execution produces. Success is false for
// domain failures (unknown patient, booked slot, malformed arguments); the
// Error text is written for the model to read and relay.
type Result struct {
	Tool    string `json:"tool"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON renders the envelope for the tool role message. Marshal failures
// degrade to a minimal error payload rather than propagating.
func (r Result) JSON() string {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Sprintf(`{"tool":%q,"success":false,"error":"result serialization failed"}`, r.Tool)
	}
	return string(b)
}

// Recorder observes tool executions. Implemented by the metrics registry;
// a nil Recorder disables observation.
type Recorder interface {
	RecordToolExecution(tool string, success bool, duration time.Duration)
}

// Dispatcher decodes tool calls from the model and runs them against the
// scheduling engine.
type Dispatcher struct {
	engine  *scheduling.Engine
	logger  *logging.Logger
	metrics Recorder
}

// NewDispatcher creates a dispatcher. The engine is required; metrics may be
// nil.
func NewDispatcher(engine *scheduling.Engine, logger *logging.Logger, metrics Recorder) *Dispatcher {
	if engine == nil {
		panic("tools: engine is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Dispatcher{engine: engine, logger: logger, metrics: metrics}
}

// Execute runs one tool call and always returns a Result; it never returns
// an error to the loop. The ctx is accepted for symmetry with future
// IO-backed tools; the current engine is fully in-memory.
func (d *Dispatcher) Execute(ctx context.Context, name, rawArgs string) Result {
	start := time.Now()
	res := d.execute(ctx, name, rawArgs)
	if d.metrics != nil {
		d.metrics.RecordToolExecution(name, res.Success, time.Since(start))
	}
	if res.Success {
		d.logger.Debug("tool executed", "tool", name)
	} else {
		d.logger.Warn("tool failed", "tool", name, "error", res.Error)
	}
	return res
}

func (d *Dispatcher) execute(_ context.Context, name, rawArgs string) Result {
	kind, err := ParseKind(name)
	if err != nil {
		return failure(name, err)
	}

	switch kind {
	case KindFindNearestProviders:
		var args FindNearestProvidersArgs
		if err := decodeArgs(rawArgs, &args); err != nil {
			return failure(name, err)
		}
		return outcome(name)(d.engine.FindNearestProviders(args.PatientID, args.Specialty, args.City))

	case KindCheckProviderAvailability:
		var args CheckProviderAvailabilityArgs
		if err := decodeArgs(rawArgs, &args); err != nil {
			return failure(name, err)
		}
		return outcome(name)(d.engine.CheckProviderAvailability(args.ProviderID, args.DateFrom, args.DateTo))

	case KindSearchAppointmentSlots:
		var args SearchAppointmentSlotsArgs
		if err := decodeArgs(rawArgs, &args); err != nil {
			return failure(name, err)
		}
		data := d.engine.SearchSlots(scheduling.SearchRequest{
			Specialty:       args.Specialty,
			ProviderID:      args.ProviderID,
			Location:        args.Location,
			AppointmentType: args.AppointmentType,
			DateFrom:        args.DateFrom,
			DateTo:          args.DateTo,
			MaxResults:      args.MaxResults,
		})
		return Result{Tool: name, Success: true, Data: data}

	case KindVerifyInsurance:
		var args VerifyInsuranceArgs
		if err := decodeArgs(rawArgs, &args); err != nil {
			return failure(name, err)
		}
		return outcome(name)(d.engine.VerifyInsurance(args.PatientID, args.Specialty, args.ServiceType))

	case KindCheckReferralStatus:
		var args CheckReferralStatusArgs
		if err := decodeArgs(rawArgs, &args); err != nil {
			return failure(name, err)
		}
		return outcome(name)(d.engine.CheckReferral(args.PatientID, args.Specialty))

	case KindGetPatientInfo:
		var args GetPatientInfoArgs
		if err := decodeArgs(rawArgs, &args); err != nil {
			return failure(name, err)
		}
		return outcome(name)(d.engine.GetPatientInfo(args.PatientID))

	case KindGetClinicalProtocol:
		var args GetClinicalProtocolArgs
		if err := decodeArgs(rawArgs, &args); err != nil {
			return failure(name, err)
		}
		return outcome(name)(d.engine.GetClinicalProtocol(args.Condition, args.Specialty))

	case KindBookAppointment:
		var args BookAppointmentArgs
		if err := decodeArgs(rawArgs, &args); err != nil {
			return failure(name, err)
		}
		return outcome(name)(d.engine.BookAppointment(scheduling.BookRequest{
			SlotID:          args.SlotID,
			PatientID:       args.PatientID,
			ProviderID:      args.ProviderID,
			AppointmentType: args.AppointmentType,
			Reason:          args.ReasonForVisit,
			Notes:           args.Notes,
		}))

	case KindGetProviderTeam:
		var args GetProviderTeamArgs
		if err := decodeArgs(rawArgs, &args); err != nil {
			return failure(name, err)
		}
		return outcome(name)(d.engine.GetProviderTeam(args.ProviderID))
	}

	// Unreachable: ParseKind rejects anything outside the closed set.
	return failure(name, fmt.Errorf("tools: no dispatch arm for %q", kind))
}

func decodeArgs(raw string, into any) error {
	if raw == "" {
		raw = "{}"
	}
	if err := json.Unmarshal([]byte(raw), into); err != nil {
		return fmt.Errorf("tools: malformed arguments: %w", err)
	}
	if v, ok := into.(interface{ validate() error }); ok {
		return v.validate()
	}
	return nil
}

// outcome adapts the engine's (value, error) shape into a Result.
func outcome(tool string) func(data any, err error) Result {
	return func(data any, err error) Result {
		if err != nil {
			return failure(tool, err)
		}
		return Result{Tool: tool, Success: true, Data: data}
	}
}

func failure(tool string, err error) Result {
	return Result{Tool: tool, Success: false, Error: err.Error()}
}
