package employee

import "context"

// EmployeeRepository defines data access for the employee directory.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (*Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error

	// List returns a page of the directory filtered by search (name, email,
	// designation, employee code) plus the unpaginated match count.
	List(ctx context.Context, search string, page, limit int) ([]Employee, int64, error)

	// ListAll returns every employee matching search, unpaginated. The
	// attendance today-view partitions this set into present and absent.
	ListAll(ctx context.Context, search string) ([]Employee, error)
}
