// Package records declares the record types of the granaboard API: the
// entities the backend owns and the editable subsets the client is allowed
// to send on create and update.
package records

import "strings"

// Category represents a category of expenses.
type Category struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// CategoryEditable is the set of fields accepted when creating a category.
type CategoryEditable struct {
	Name string `json:"name"`
}

// Validate checks the client-side preconditions for the category.
func (c CategoryEditable) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}

	return nil
}
