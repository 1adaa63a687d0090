package salary

import (
	"errors"

	salaryerrors "go-hrms/internal/salary/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryerrors.ErrSalaryNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505":
		if pgErr.ConstraintName == "uq_salaries_user_pay_date" {
			return salaryerrors.ErrSalaryExists
		}
	case "23503":
		if pgErr.ConstraintName == "fk_salaries_user" {
			return salaryerrors.ErrUserNotFound
		}
	case "23514":
		return salaryerrors.ErrInvalidNetSalary
	}
	return err
}
