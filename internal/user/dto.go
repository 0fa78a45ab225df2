package user

import "strings"

// CreateUserDTO is the transport shape for registering a new account.
type CreateUserDTO struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UpdateProfileDTO carries the editable profile fields. A password change
// requires the current password alongside the new one.
type UpdateProfileDTO struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateUserDTO) Validate() error {
	email := strings.TrimSpace(d.Email)
	if email == "" {
		return ValidationError{Msg: "email is required"}
	}
	if !strings.Contains(email, "@") {
		return ValidationError{Msg: "email is not valid"}
	}
	if len(d.Password) < 8 {
		return ValidationError{Msg: "password must be at least 8 characters"}
	}
	if strings.TrimSpace(d.FirstName) == "" {
		return ValidationError{Msg: "firstName is required"}
	}
	if strings.TrimSpace(d.LastName) == "" {
		return ValidationError{Msg: "lastName is required"}
	}
	return nil
}

func (d UpdateProfileDTO) Validate() error {
	if strings.TrimSpace(d.FirstName) == "" && strings.TrimSpace(d.LastName) == "" && d.NewPassword == "" {
		return ValidationError{Msg: "nothing to update"}
	}
	if d.NewPassword != "" {
		if len(d.NewPassword) < 8 {
			return ValidationError{Msg: "password must be at least 8 characters"}
		}
		if d.CurrentPassword == "" {
			return ValidationError{Msg: "currentPassword is required to change the password"}
		}
	}
	return nil
}
