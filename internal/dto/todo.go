package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OptionalString is a PATCH field that distinguishes "absent" from "null"
// from a value. Absent fields never reach UnmarshalJSON, so Present stays
// false; an explicit null leaves Value nil with Present true.
type OptionalString struct {
	Present bool
	Value   *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true
	return json.Unmarshal(data, &o.Value)
}

// OptionalBool is the bool counterpart of OptionalString.
type OptionalBool struct {
	Present bool
	Value   *bool
}

func (o *OptionalBool) UnmarshalJSON(data []byte) error {
	o.Present = true
	return json.Unmarshal(data, &o.Value)
}

type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// UpdateTodoRequest is a partial update: absent = don't touch,
// description null = clear, title/completed null = invalid.
type UpdateTodoRequest struct {
	Title       OptionalString `json:"title"`
	Description OptionalString `json:"description"`
	Completed   OptionalBool   `json:"completed"`
}

type TodoResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ErrorResponse is the uniform failure envelope for every error status.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
