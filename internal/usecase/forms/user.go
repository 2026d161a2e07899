package forms

import (
	"net/url"

	"invoice-admin/internal/domain/user"
)

const (
	msgNameRequired = "name is required"
	msgInvalidEmail = "must enter a valid email address"
	msgRoleRequired = "role is required"

	msgCreateUserFailed = "Missing Fields. Failed to Create User."
	msgUpdateUserFailed = "Missing Fields. Failed to Update User."
)

type CreateUserData struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

type UpdateUserData struct {
	Name  string
	Email string
	Role  string
}

// ParseCreateUser requires every field but applies no format constraints;
// notably the email is taken as-is at create time. The id is read from the
// form field "ID" (upper case), matching what the create form submits.
func ParseCreateUser(form url.Values) (*CreateUserData, *State) {
	state := &State{}
	data := &CreateUserData{
		Name:     formValue(form, "name"),
		ID:       formValue(form, "ID"),
		Email:    formValue(form, "email"),
		Password: formValue(form, "password"),
		Role:     formValue(form, "role"),
	}

	if data.Name == "" {
		state.addError("name", msgNameRequired)
	}
	if data.ID == "" {
		state.addError("ID", "id is required")
	}
	if data.Email == "" {
		state.addError("email", "email is required")
	}
	if data.Password == "" {
		state.addError("password", "password is required")
	}
	if data.Role == "" {
		state.addError("role", msgRoleRequired)
	}

	if state.invalid() {
		state.Message = msgCreateUserFailed
		return nil, state
	}
	return data, nil
}

// ParseUpdateUser validates only the mutable fields; id and password are not
// part of the update input.
func ParseUpdateUser(form url.Values) (*UpdateUserData, *State) {
	state := &State{}
	data := &UpdateUserData{
		Name:  formValue(form, "name"),
		Email: formValue(form, "email"),
		Role:  formValue(form, "role"),
	}

	if data.Name == "" {
		state.addError("name", msgNameRequired)
	}
	if _, err := user.NewEmail(data.Email); err != nil {
		state.addError("email", msgInvalidEmail)
	}
	if data.Role == "" {
		state.addError("role", msgRoleRequired)
	}

	if state.invalid() {
		state.Message = msgUpdateUserFailed
		return nil, state
	}
	return data, nil
}
