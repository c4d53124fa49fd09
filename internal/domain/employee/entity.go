package employee

import "time"

// Employee is the directory entity: personal profile plus the professional
// attributes HR screens care about. The attendance engine only ever reads
// these fields as display decoration.
type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	MobileNumber  *string
	PersonalEmail *string
	DateOfBirth   *string
	Gender        *string
	Address       *string
	City          *string
	State         *string
	ZipCode       *string
	AvatarURL     *string

	// Professional attributes
	EmployeeCode *string
	WorkEmail    *string
	Designation  *string
	EmployeeType *string // office | remote
	Department   *string
	JoiningDate  *string

	// Account link; nil means no login has been provisioned yet.
	UserID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins the name parts, skipping blanks.
func (e Employee) FullName() string {
	switch {
	case e.FirstName == "" && e.LastName == "":
		return "--"
	case e.LastName == "":
		return e.FirstName
	case e.FirstName == "":
		return e.LastName
	default:
		return e.FirstName + " " + e.LastName
	}
}

// Email prefers the work email over the personal one.
func (e Employee) Email() string {
	if e.WorkEmail != nil && *e.WorkEmail != "" {
		return *e.WorkEmail
	}
	if e.PersonalEmail != nil {
		return *e.PersonalEmail
	}
	return ""
}
