package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, employee_id, check_in, check_out, status, work_type,
	   break_start, break_end, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.CheckIn, &att.CheckOut, &att.Status, &att.WorkType,
		&att.BreakStart, &att.BreakEnd, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository. A unique index on
// (employee_id, day of check_in) backs the one-record-per-day invariant;
// the violation is translated so concurrent check-ins resolve cleanly.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, check_in, check_out, status, work_type, break_start, break_end
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.CheckIn,
		att.CheckOut,
		att.Status,
		att.WorkType,
		att.BreakStart,
		att.BreakEnd,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND check_in >= $2
		  AND check_in < $2 + INTERVAL '1 day'
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and day: %w", err)
	}

	return &att, nil
}

// GetOpenByEmployeeAndDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetOpenByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND check_in >= $2
		  AND check_in < $2 + INTERVAL '1 day'
		  AND check_out IS NULL
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open attendance: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out = $2,
			status = $3,
			break_start = $4,
			break_end = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, att.ID, att.CheckOut, att.Status, att.BreakStart, att.BreakEnd)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListOpenBefore implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListOpenBefore(ctx context.Context, employeeID string, day time.Time, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND check_in < $2
		  AND check_out IS NULL
		ORDER BY check_in DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, employeeID, day, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list open attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}

	return result, rows.Err()
}

// ListForDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListForDay(ctx context.Context, day time.Time, search string) ([]attendance.TodayRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.check_in, a.check_out, a.status, a.work_type,
			   a.break_start, a.break_end, a.created_at, a.updated_at,
			   TRIM(CONCAT(e.first_name, ' ', COALESCE(e.last_name, ''))) AS employee_name,
			   COALESCE(e.work_email, e.personal_email, '') AS email,
			   e.avatar_url, e.designation, e.employee_type
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.check_in >= $1
		  AND a.check_in < $1 + INTERVAL '1 day'
	`
	args := []interface{}{day}

	if search != "" {
		query += `
		  AND (CONCAT(e.first_name, ' ', COALESCE(e.last_name, '')) ILIKE $2
			   OR e.work_email ILIKE $2
			   OR e.personal_email ILIKE $2
			   OR e.designation ILIKE $2)
		`
		args = append(args, "%"+search+"%")
	}

	query += ` ORDER BY a.check_in DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances for day: %w", err)
	}
	defer rows.Close()

	var result []attendance.TodayRecord
	for rows.Next() {
		var rec attendance.TodayRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.CheckIn, &rec.CheckOut, &rec.Status, &rec.WorkType,
			&rec.BreakStart, &rec.BreakEnd, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.Email, &rec.AvatarURL, &rec.Designation, &rec.EmployeeType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan today record: %w", err)
		}
		result = append(result, rec)
	}

	return result, rows.Err()
}
