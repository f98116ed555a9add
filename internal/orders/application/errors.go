package application

import "fmt"

// NotFoundError reports that the entity identified by Field=Value does not
// exist in the store.
type NotFoundError struct {
	Entity string
	Field  string
	Value  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s : '%s'", e.Entity, e.Field, e.Value)
}

// AlreadyExistsError reports a write rejected by the store's uniqueness
// constraint. The low-level integrity error is deliberately not carried.
type AlreadyExistsError struct {
	Entity string
}

func (e *AlreadyExistsError) Error() string {
	return e.Entity + " already exist with same fields"
}
