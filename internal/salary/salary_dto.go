package salary

import (
	"go-hrms/internal/shared/scope"

	"github.com/shopspring/decimal"
)

// SalaryRequest accepts amounts as JSON numbers or numeric strings.
type SalaryRequest struct {
	UserID          string           `json:"user_id" binding:"required,uuid"`
	PayDate         string           `json:"pay_date" binding:"required,ymd"`
	NetSalary       *decimal.Decimal `json:"net_salary" binding:"required"`
	GrossSalary     *decimal.Decimal `json:"gross_salary"`
	PayrollFilePath string           `json:"payroll_file_path" binding:"max=255"`
	Notes           string           `json:"notes" binding:"max=500"`
}

type ListQuery struct {
	scope.ListQuery
	UserID string `form:"user_id" binding:"omitempty,uuid"`
}

type SalaryResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	StaffNumber     *string `json:"staff_number,omitempty"`
	UserName        *string `json:"user_name,omitempty"`
	PayDate         string  `json:"pay_date"`
	NetSalary       string  `json:"net_salary"`
	GrossSalary     string  `json:"gross_salary"`
	PayrollFilePath string  `json:"payroll_file_path"`
	Notes           string  `json:"notes"`
	CreatedAt       string  `json:"created_at"`
}
