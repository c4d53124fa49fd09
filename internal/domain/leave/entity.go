package leave

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Leave is a flat leave request row; day counts are derived at apply time
// and stored as display strings ("3 Days").
type Leave struct {
	ID           string
	EmployeeID   *string
	EmployeeName string
	AvatarURL    *string
	LeaveType    string
	FromDate     time.Time
	ToDate       time.Time
	Days         string
	Manager      string
	Status       Status
	Reason       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
