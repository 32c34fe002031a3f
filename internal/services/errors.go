package services

import "fmt"

// ValidationError reports a referenced entity id that does not exist.
type ValidationError struct {
	Entity string
	ID     uint
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s id %d does not exist", e.Entity, e.ID)
}
