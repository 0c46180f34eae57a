package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gojobly/jobly/users/models"
)

const (
	minUsernameLength = 1
	maxUsernameLength = 30
	maxNameLength     = 50
	maxEmailLength    = 120
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Fields accepted by PATCH /users/:username. Roles are only set on the
// admin create path, never via PATCH.
var updatableUserFields = map[string]bool{
	"firstName": true,
	"lastName":  true,
	"email":     true,
	"password":  true,
}

// ValidateRegisterRequest validates the self-registration request
func ValidateRegisterRequest(req *models.RegisterRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if err := validateUsername(req.Username); err != nil {
		return err
	}
	if req.Password == "" {
		return fmt.Errorf("password is required")
	}
	return validateProfile(req.FirstName, req.LastName, req.Email)
}

// ValidateLoginRequest validates the token request
func ValidateLoginRequest(req *models.LoginRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.Username == "" {
		return fmt.Errorf("username is required")
	}
	if req.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ValidateCreateUserRequest validates the admin create request
func ValidateCreateUserRequest(req *models.CreateUserRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if err := validateUsername(req.Username); err != nil {
		return err
	}
	if req.Password == "" {
		return fmt.Errorf("password is required")
	}
	return validateProfile(req.FirstName, req.LastName, req.Email)
}

// ValidateUserUpdates validates a partial update body field by field.
func ValidateUserUpdates(updates map[string]interface{}) error {
	if len(updates) == 0 {
		return fmt.Errorf("no fields to update")
	}

	for field, value := range updates {
		if !updatableUserFields[field] {
			return fmt.Errorf("field %q cannot be updated", field)
		}

		text, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s must be a string", field)
		}

		switch field {
		case "firstName", "lastName":
			if len(text) > maxNameLength {
				return fmt.Errorf("%s cannot exceed %d characters", field, maxNameLength)
			}
		case "email":
			if !emailPattern.MatchString(text) || len(text) > maxEmailLength {
				return fmt.Errorf("email must be a valid address")
			}
		case "password":
			if text == "" {
				return fmt.Errorf("password cannot be empty")
			}
		}
	}

	return nil
}

func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username is required")
	}
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return fmt.Errorf("username must be between %d and %d characters", minUsernameLength, maxUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("username may only contain letters, digits, '-' and '_'")
	}
	return nil
}

func validateProfile(firstName, lastName, email string) error {
	if len(firstName) > maxNameLength {
		return fmt.Errorf("firstName cannot exceed %d characters", maxNameLength)
	}
	if len(lastName) > maxNameLength {
		return fmt.Errorf("lastName cannot exceed %d characters", maxNameLength)
	}
	if email != "" && (!emailPattern.MatchString(email) || len(email) > maxEmailLength) {
		return fmt.Errorf("email must be a valid address")
	}
	return nil
}
