package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/employee"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, first_name, last_name, mobile_number, personal_email,
	   date_of_birth, gender, address, city, state, zip_code, avatar_url,
	   employee_code, work_email, designation, employee_type, department,
	   joining_date, user_id, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.MobileNumber, &emp.PersonalEmail,
		&emp.DateOfBirth, &emp.Gender, &emp.Address, &emp.City, &emp.State, &emp.ZipCode, &emp.AvatarURL,
		&emp.EmployeeCode, &emp.WorkEmail, &emp.Designation, &emp.EmployeeType, &emp.Department,
		&emp.JoiningDate, &emp.UserID, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func translateEmployeeConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "employees_employee_code_key":
			return employee.ErrCodeExists
		default:
			return employee.ErrEmailExists
		}
	}
	return err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			first_name, last_name, mobile_number, personal_email, date_of_birth,
			gender, address, city, state, zip_code, avatar_url,
			employee_code, work_email, designation, employee_type, department,
			joining_date, user_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.FirstName, emp.LastName, emp.MobileNumber, emp.PersonalEmail, emp.DateOfBirth,
		emp.Gender, emp.Address, emp.City, emp.State, emp.ZipCode, emp.AvatarURL,
		emp.EmployeeCode, emp.WorkEmail, emp.Designation, emp.EmployeeType, emp.Department,
		emp.JoiningDate, emp.UserID,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if tErr := translateEmployeeConstraint(err); tErr != err {
			return employee.Employee{}, tErr
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by user: %w", err)
	}

	return &emp, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, mobile_number = $4, personal_email = $5,
			date_of_birth = $6, gender = $7, address = $8, city = $9, state = $10,
			zip_code = $11, avatar_url = $12, employee_code = $13, work_email = $14,
			designation = $15, employee_type = $16, department = $17, joining_date = $18,
			user_id = $19, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID,
		emp.FirstName, emp.LastName, emp.MobileNumber, emp.PersonalEmail,
		emp.DateOfBirth, emp.Gender, emp.Address, emp.City, emp.State,
		emp.ZipCode, emp.AvatarURL, emp.EmployeeCode, emp.WorkEmail,
		emp.Designation, emp.EmployeeType, emp.Department, emp.JoiningDate,
		emp.UserID,
	)
	if err != nil {
		if tErr := translateEmployeeConstraint(err); tErr != err {
			return tErr
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

const employeeSearchClause = `
	(CONCAT(first_name, ' ', COALESCE(last_name, '')) ILIKE $1
	 OR work_email ILIKE $1
	 OR personal_email ILIKE $1
	 OR designation ILIKE $1
	 OR employee_code ILIKE $1)
`

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, search string, page, limit int) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ""
	args := []interface{}{}
	if search != "" {
		where = ` WHERE ` + employeeSearchClause
		args = append(args, "%"+search+"%")
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	offset := (page - 1) * limit
	query := `SELECT ` + employeeColumns + ` FROM employees` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var result []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		result = append(result, emp)
	}

	return result, total, rows.Err()
}

// ListAll implements employee.EmployeeRepository.
func (r *employeeRepository) ListAll(ctx context.Context, search string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE ` + employeeSearchClause
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY first_name, last_name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var result []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		result = append(result, emp)
	}

	return result, rows.Err()
}
