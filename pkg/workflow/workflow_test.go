package workflow

import (
	"testing"

	"pawrescue-be/internal/pkg/apperror"
	"pawrescue-be/pkg/access"
)

func TestCheckAnimal(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		requested string
		role      access.Role
		wantKind  apperror.Kind
		wantOK    bool
	}{
		{
			name:      "vet moves available to treatment",
			current:   AnimalAvailable,
			requested: AnimalTreatment,
			role:      access.RoleVet,
			wantOK:    true,
		},
		{
			name:      "admin marks recovering as adoptable",
			current:   AnimalRecovering,
			requested: AnimalAdoptable,
			role:      access.RoleAdmin,
			wantOK:    true,
		},
		{
			name:      "vet cannot revert adopted",
			current:   AnimalAdopted,
			requested: AnimalAvailable,
			role:      access.RoleVet,
			wantKind:  apperror.KindForbidden,
		},
		{
			name:      "admin can revert adopted",
			current:   AnimalAdopted,
			requested: AnimalAvailable,
			role:      access.RoleAdmin,
			wantOK:    true,
		},
		{
			name:      "same status is rejected",
			current:   AnimalCritical,
			requested: AnimalCritical,
			role:      access.RoleAdmin,
			wantKind:  apperror.KindTransition,
		},
		{
			name:      "unknown status is rejected",
			current:   AnimalAvailable,
			requested: "hibernating",
			role:      access.RoleAdmin,
			wantKind:  apperror.KindTransition,
		},
		{
			name:      "regular user is forbidden",
			current:   AnimalAvailable,
			requested: AnimalPending,
			role:      access.RoleUser,
			wantKind:  apperror.KindForbidden,
		},
		{
			name:      "anonymous must authenticate",
			current:   AnimalAvailable,
			requested: AnimalPending,
			role:      access.RoleAnonymous,
			wantKind:  apperror.KindUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(KindAnimal, tt.current, tt.requested, tt.role)
			assertOutcome(t, err, tt.wantOK, tt.wantKind)
		})
	}
}

func TestCheckAdoptionRequest(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		requested string
		role      access.Role
		wantKind  apperror.Kind
		wantOK    bool
	}{
		{
			name:      "vet approves pending",
			current:   RequestPending,
			requested: RequestApproved,
			role:      access.RoleVet,
			wantOK:    true,
		},
		{
			name:      "admin rejects pending",
			current:   RequestPending,
			requested: RequestRejected,
			role:      access.RoleAdmin,
			wantOK:    true,
		},
		{
			name:      "approved is terminal",
			current:   RequestApproved,
			requested: RequestRejected,
			role:      access.RoleAdmin,
			wantKind:  apperror.KindTransition,
		},
		{
			name:      "rejected is terminal",
			current:   RequestRejected,
			requested: RequestApproved,
			role:      access.RoleAdmin,
			wantKind:  apperror.KindTransition,
		},
		{
			name:      "cannot decide back to pending",
			current:   RequestPending,
			requested: RequestPending,
			role:      access.RoleAdmin,
			wantKind:  apperror.KindTransition,
		},
		{
			name:      "regular user cannot decide",
			current:   RequestPending,
			requested: RequestApproved,
			role:      access.RoleUser,
			wantKind:  apperror.KindForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(KindAdoptionRequest, tt.current, tt.requested, tt.role)
			assertOutcome(t, err, tt.wantOK, tt.wantKind)
		})
	}
}

func TestCheckRescueReport(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		requested string
		role      access.Role
		wantKind  apperror.Kind
		wantOK    bool
	}{
		{
			name:      "new to processing",
			current:   ReportNew,
			requested: ReportProcessing,
			role:      access.RoleVet,
			wantOK:    true,
		},
		{
			name:      "skipping processing is allowed",
			current:   ReportNew,
			requested: ReportCompleted,
			role:      access.RoleVet,
			wantOK:    true,
		},
		{
			name:      "cannot move backward",
			current:   ReportCompleted,
			requested: ReportProcessing,
			role:      access.RoleAdmin,
			wantKind:  apperror.KindTransition,
		},
		{
			name:      "cannot repeat current status",
			current:   ReportProcessing,
			requested: ReportProcessing,
			role:      access.RoleAdmin,
			wantKind:  apperror.KindTransition,
		},
		{
			name:      "unknown requested status",
			current:   ReportNew,
			requested: "archived",
			role:      access.RoleAdmin,
			wantKind:  apperror.KindTransition,
		},
		{
			name:      "regular user cannot advance",
			current:   ReportNew,
			requested: ReportProcessing,
			role:      access.RoleUser,
			wantKind:  apperror.KindForbidden,
		},
		{
			name:      "anonymous must authenticate",
			current:   ReportNew,
			requested: ReportProcessing,
			role:      access.RoleAnonymous,
			wantKind:  apperror.KindUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(KindRescueReport, tt.current, tt.requested, tt.role)
			assertOutcome(t, err, tt.wantOK, tt.wantKind)
		})
	}
}

func TestCheckUnknownKind(t *testing.T) {
	err := Check(EntityKind("donation"), "a", "b", access.RoleAdmin)
	if !apperror.Is(err, apperror.KindTransition) {
		t.Errorf("unknown kind: got %v, want transition error", err)
	}
}

func assertOutcome(t *testing.T, err error, wantOK bool, wantKind apperror.Kind) {
	t.Helper()
	if wantOK {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		return
	}
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if !apperror.Is(err, wantKind) {
		t.Errorf("got %v, want kind %d", err, wantKind)
	}
}
