package access

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"user", RoleUser},
		{"vet", RoleVet},
		{"admin", RoleAdmin},
		{"", RoleAnonymous},
		{"superadmin", RoleAnonymous},
		{"Admin", RoleAnonymous},
	}

	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name         string
		role         Role
		op           Operation
		wantAllowed  bool
		wantAuthHint bool
	}{
		{"anonymous browses animals", RoleAnonymous, OpViewAnimals, true, false},
		{"anonymous reads reports", RoleAnonymous, OpViewReports, true, false},
		{"anonymous reads treatments", RoleAnonymous, OpViewTreatments, true, false},
		{"anonymous cannot submit adoption", RoleAnonymous, OpSubmitAdoption, false, true},
		{"anonymous cannot submit report", RoleAnonymous, OpSubmitReport, false, true},
		{"user submits adoption", RoleUser, OpSubmitAdoption, true, false},
		{"user submits report", RoleUser, OpSubmitReport, true, false},
		{"user cannot create animal", RoleUser, OpCreateAnimal, false, false},
		{"user cannot review adoptions", RoleUser, OpReviewAdoptions, false, false},
		{"user cannot add progress note", RoleUser, OpAddProgressNote, false, false},
		{"vet creates animal", RoleVet, OpCreateAnimal, true, false},
		{"vet changes animal status", RoleVet, OpChangeAnimalStatus, true, false},
		{"vet adds treatment", RoleVet, OpAddTreatment, true, false},
		{"vet cannot delete animal", RoleVet, OpDeleteAnimal, false, false},
		{"vet cannot remove treatment", RoleVet, OpRemoveTreatment, false, false},
		{"vet cannot manage users", RoleVet, OpManageUsers, false, false},
		{"admin deletes animal", RoleAdmin, OpDeleteAnimal, true, false},
		{"admin removes treatment", RoleAdmin, OpRemoveTreatment, true, false},
		{"admin manages users", RoleAdmin, OpManageUsers, true, false},
		{"unknown operation denies", RoleAdmin, Operation("export_everything"), false, false},
		{"unknown operation hints auth for anonymous", RoleAnonymous, Operation("export_everything"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.role, tt.op)
			if d.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", d.Allowed, tt.wantAllowed)
			}
			if d.RequiresAuth != tt.wantAuthHint {
				t.Errorf("RequiresAuth = %v, want %v", d.RequiresAuth, tt.wantAuthHint)
			}
		})
	}
}

func TestPolicyListsEveryRole(t *testing.T) {
	roles := []Role{RoleAnonymous, RoleUser, RoleVet, RoleAdmin}
	for op, table := range policy {
		for _, role := range roles {
			if _, ok := table[role]; !ok {
				t.Errorf("operation %q has no entry for role %q", op, role)
			}
		}
	}
}

func TestIsStaff(t *testing.T) {
	if IsStaff(RoleUser) || IsStaff(RoleAnonymous) {
		t.Error("user and anonymous must not count as staff")
	}
	if !IsStaff(RoleVet) || !IsStaff(RoleAdmin) {
		t.Error("vet and admin must count as staff")
	}
}
