package kernel

import "marketplace/internal/pkg/errs"

// ErrIDIsNotConstructed indicates that an ID was not created via NewID.
// It is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is an opaque identifier assigned by the document store. The zero value is
// invalid; construct IDs with NewID.
//
// Example:
//
//	orderID, err := kernel.NewID("abc123")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(orderID.Suffix(6)) // "abc123"
type ID struct {
	value string
}

// NewID creates an ID from its string representation.
// Returns an error if the string is empty.
func NewID(value string) (ID, error) {
	if value == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	return ID{value: value}, nil
}

// String returns the identifier's string representation.
func (i ID) String() string {
	return i.value
}

// IsEqual compares two IDs by value.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Suffix returns the last n characters of the identifier, or the whole
// identifier when it is shorter than n. Used to embed a short order reference
// in user-facing notification text.
func (i ID) Suffix(n int) string {
	if n <= 0 || len(i.value) <= n {
		return i.value
	}
	return i.value[len(i.value)-n:]
}

// Validate checks that the ID was properly constructed.
// Returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
