package staff

import "go-hrms/internal/shared/scope"

type StaffFields struct {
	FirstName      string `json:"first_name" binding:"required,max=100"`
	LastName       string `json:"last_name" binding:"required,max=100"`
	Email          string `json:"email" binding:"required,email,max=255"`
	IdentityNumber string `json:"identity_number" binding:"required,len=11,numeric"`
	Phone          string `json:"phone" binding:"required,len=11,numeric"`
	Address        string `json:"address" binding:"max=500"`
	BirthDate      string `json:"birth_date" binding:"omitempty,ymd"`
	Gender         string `json:"gender" binding:"omitempty,oneof=male female"`
	Position       string `json:"position" binding:"max=100"`
	Role           string `json:"role" binding:"required,oneof=admin manager staff"`
	UnitID         string `json:"unit_id" binding:"omitempty,uuid"`
}

// CreateStaffRequest leaves Password empty to issue a random one; the owner
// is expected to reset it.
type CreateStaffRequest struct {
	StaffFields
	Password string `json:"password" binding:"omitempty,min=8,max=72"`
}

type UpdateStaffRequest struct {
	StaffFields
	Password string `json:"password" binding:"omitempty,min=8,max=72"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
}

type ListQuery struct {
	scope.ListQuery
	Role   string `form:"role"`
	UnitID string `form:"unit_id"`
}

type StaffResponse struct {
	ID             string  `json:"id"`
	StaffNumber    string  `json:"staff_number"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	IdentityNumber string  `json:"identity_number"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	BirthDate      *string `json:"birth_date"`
	Gender         string  `json:"gender"`
	Position       string  `json:"position"`
	Role           string  `json:"role"`
	UnitID         *string `json:"unit_id"`
	UnitName       *string `json:"unit_name"`
	CreatedAt      string  `json:"created_at"`
}
