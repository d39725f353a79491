package models

// User is a row of the users table. Password holds an opaque hash that this
// layer never inspects.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewUser carries the fields required to register a user. The generated ID is
// returned on the created User; NewUser itself is never modified.
type NewUser struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
