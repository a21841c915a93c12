// Package services contains server-side business logic. Every service
// takes the database handle, the repository manager and the server config,
// and binds repositories to either the handle or a transaction per call.
package services

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/minutesfolio/internal/common"
)

type field struct {
	name  string
	value string
}

// requireFields reports every blank field in one validation error.
func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return invalidf("missing required fields: %s", strings.Join(missing, ", "))
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorValidation, fmt.Sprintf(format, args...))
}

func conflict(msg string) error {
	return fmt.Errorf("%w: %s", common.ErrorConflict, msg)
}

// apply copies *src into *dst when src is set.
func apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
