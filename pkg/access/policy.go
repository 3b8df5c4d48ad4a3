package access

// Role is the acting identity class. RoleAnonymous is a valid role state:
// it is what an absent identity checks as.
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleUser      Role = "user"
	RoleVet       Role = "vet"
	RoleAdmin     Role = "admin"
)

// ParseRole maps a claim value to a Role, defaulting unknown values to
// anonymous so a forged claim never gains privileges.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleUser, RoleVet, RoleAdmin:
		return Role(s)
	default:
		return RoleAnonymous
	}
}

// Operation names every gated action in the system.
type Operation string

const (
	OpViewAnimals        Operation = "view_animals"
	OpViewAnimal         Operation = "view_animal"
	OpCreateAnimal       Operation = "create_animal"
	OpEditAnimal         Operation = "edit_animal"
	OpChangeAnimalStatus Operation = "change_animal_status"
	OpDeleteAnimal       Operation = "delete_animal"

	OpSubmitAdoption   Operation = "submit_adoption"
	OpViewOwnAdoptions Operation = "view_own_adoptions"
	OpReviewAdoptions  Operation = "review_adoptions"

	OpSubmitReport  Operation = "submit_report"
	OpViewReports   Operation = "view_reports"
	OpAdvanceReport Operation = "advance_report"

	OpAddTreatment    Operation = "add_treatment"
	OpViewTreatments  Operation = "view_treatments"
	OpRemoveTreatment Operation = "remove_treatment"

	OpAddProgressNote   Operation = "add_progress_note"
	OpViewProgressNotes Operation = "view_progress_notes"

	OpViewProfile       Operation = "view_profile"
	OpManageUsers       Operation = "manage_users"
	OpViewNotifications Operation = "view_notifications"
)

// Decision is the outcome of a capability check. On deny, RequiresAuth tells
// the boundary whether to redirect to authentication or simply refuse.
type Decision struct {
	Allowed      bool
	RequiresAuth bool
}

// policy is the exhaustive role capability table. Every operation lists the
// full role set; there are no fallthrough defaults.
var policy = map[Operation]map[Role]bool{
	OpViewAnimals:  {RoleAnonymous: true, RoleUser: true, RoleVet: true, RoleAdmin: true},
	OpViewAnimal:   {RoleAnonymous: true, RoleUser: true, RoleVet: true, RoleAdmin: true},
	OpCreateAnimal: {RoleAnonymous: false, RoleUser: false, RoleVet: true, RoleAdmin: true},
	OpEditAnimal:   {RoleAnonymous: false, RoleUser: false, RoleVet: true, RoleAdmin: true},

	OpChangeAnimalStatus: {RoleAnonymous: false, RoleUser: false, RoleVet: true, RoleAdmin: true},
	OpDeleteAnimal:       {RoleAnonymous: false, RoleUser: false, RoleVet: false, RoleAdmin: true},

	OpSubmitAdoption:   {RoleAnonymous: false, RoleUser: true, RoleVet: true, RoleAdmin: true},
	OpViewOwnAdoptions: {RoleAnonymous: false, RoleUser: true, RoleVet: true, RoleAdmin: true},
	OpReviewAdoptions:  {RoleAnonymous: false, RoleUser: false, RoleVet: true, RoleAdmin: true},

	OpSubmitReport:  {RoleAnonymous: false, RoleUser: true, RoleVet: true, RoleAdmin: true},
	OpViewReports:   {RoleAnonymous: true, RoleUser: true, RoleVet: true, RoleAdmin: true},
	OpAdvanceReport: {RoleAnonymous: false, RoleUser: false, RoleVet: true, RoleAdmin: true},

	OpAddTreatment:    {RoleAnonymous: false, RoleUser: false, RoleVet: true, RoleAdmin: true},
	OpViewTreatments:  {RoleAnonymous: true, RoleUser: true, RoleVet: true, RoleAdmin: true},
	OpRemoveTreatment: {RoleAnonymous: false, RoleUser: false, RoleVet: false, RoleAdmin: true},

	OpAddProgressNote:   {RoleAnonymous: false, RoleUser: false, RoleVet: true, RoleAdmin: true},
	OpViewProgressNotes: {RoleAnonymous: true, RoleUser: true, RoleVet: true, RoleAdmin: true},

	OpViewProfile:       {RoleAnonymous: false, RoleUser: true, RoleVet: true, RoleAdmin: true},
	OpManageUsers:       {RoleAnonymous: false, RoleUser: false, RoleVet: false, RoleAdmin: true},
	OpViewNotifications: {RoleAnonymous: false, RoleUser: true, RoleVet: true, RoleAdmin: true},
}

// Decide checks the policy table. Unknown operations deny.
func Decide(role Role, op Operation) Decision {
	roles, ok := policy[op]
	if !ok {
		return Decision{Allowed: false, RequiresAuth: role == RoleAnonymous}
	}
	if roles[role] {
		return Decision{Allowed: true}
	}
	return Decision{Allowed: false, RequiresAuth: role == RoleAnonymous}
}

// IsStaff reports whether the role carries vet or admin authority.
func IsStaff(role Role) bool {
	return role == RoleVet || role == RoleAdmin
}
