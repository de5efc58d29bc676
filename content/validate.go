package content

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks every record in the store against its struct tags.
// The returned error wraps validator.ValidationErrors.
func (s *Store) Validate() error {
	if err := validatorInstance().Struct(s.data); err != nil {
		return fmt.Errorf("content: invalid records: %w", err)
	}
	return nil
}
