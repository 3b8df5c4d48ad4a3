package workflow

import (
	"fmt"

	"pawrescue-be/internal/pkg/apperror"
	"pawrescue-be/pkg/access"
)

// EntityKind selects which state machine a transition check runs against.
type EntityKind string

const (
	KindAnimal          EntityKind = "animal"
	KindAdoptionRequest EntityKind = "adoption_request"
	KindRescueReport    EntityKind = "rescue_report"
)

const (
	AnimalAvailable  = "available"
	AnimalAdoptable  = "adoptable"
	AnimalPending    = "pending"
	AnimalAdopted    = "adopted"
	AnimalTreatment  = "treatment"
	AnimalCritical   = "critical"
	AnimalRecovering = "recovering"

	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"

	ReportNew        = "new"
	ReportProcessing = "processing"
	ReportCompleted  = "completed"
)

var animalStatuses = map[string]bool{
	AnimalAvailable:  true,
	AnimalAdoptable:  true,
	AnimalPending:    true,
	AnimalAdopted:    true,
	AnimalTreatment:  true,
	AnimalCritical:   true,
	AnimalRecovering: true,
}

// reportOrder encodes the forward-only rescue report lifecycle. Skipping an
// intermediate state is legal; moving backward is not.
var reportOrder = map[string]int{
	ReportNew:        0,
	ReportProcessing: 1,
	ReportCompleted:  2,
}

// Check decides whether the acting role may move an entity from its current
// status to the requested one. An illegal transition surfaces as a transition
// error; a legal transition attempted by an unauthorized role surfaces as a
// role error. Callers must not conflate the two.
func Check(kind EntityKind, current, requested string, role access.Role) error {
	switch kind {
	case KindAnimal:
		return checkAnimal(current, requested, role)
	case KindAdoptionRequest:
		return checkAdoptionRequest(current, requested, role)
	case KindRescueReport:
		return checkRescueReport(current, requested, role)
	default:
		return apperror.Transition(fmt.Sprintf("unknown entity kind %q", kind))
	}
}

// checkAnimal: statuses are freely reachable from one another under vet/admin
// authority. The one exception is "adopted": leaving it is an admin-only
// escape hatch, not a normal transition.
func checkAnimal(current, requested string, role access.Role) error {
	if !animalStatuses[requested] {
		return apperror.Transition(fmt.Sprintf("%q is not a valid animal status", requested))
	}
	if current == requested {
		return apperror.Transition(fmt.Sprintf("animal is already %q", current))
	}
	if !access.IsStaff(role) {
		return roleDenied(role)
	}
	if current == AnimalAdopted && role != access.RoleAdmin {
		return apperror.Forbidden("reverting an adopted animal requires admin authority")
	}
	return nil
}

func checkAdoptionRequest(current, requested string, role access.Role) error {
	if requested != RequestApproved && requested != RequestRejected {
		return apperror.Transition(fmt.Sprintf("%q is not a valid adoption request decision", requested))
	}
	if current != RequestPending {
		return apperror.Transition(fmt.Sprintf("adoption request is already %s and cannot change", current))
	}
	if !access.IsStaff(role) {
		return roleDenied(role)
	}
	return nil
}

func checkRescueReport(current, requested string, role access.Role) error {
	currentRank, ok := reportOrder[current]
	if !ok {
		return apperror.Transition(fmt.Sprintf("%q is not a valid rescue report status", current))
	}
	requestedRank, ok := reportOrder[requested]
	if !ok {
		return apperror.Transition(fmt.Sprintf("%q is not a valid rescue report status", requested))
	}
	if requestedRank <= currentRank {
		return apperror.Transition(fmt.Sprintf("rescue report cannot move from %s back to %s", current, requested))
	}
	if !access.IsStaff(role) {
		return roleDenied(role)
	}
	return nil
}

func roleDenied(role access.Role) error {
	if role == access.RoleAnonymous {
		return apperror.Unauthenticated("authentication required")
	}
	return apperror.Forbidden("your role is not authorized for this transition")
}
