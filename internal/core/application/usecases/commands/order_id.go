package commands

import (
	"fmt"

	"orderpanel/internal/pkg/errs"
)

func validateID(paramName string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is not a valid id", id))
	}
	return nil
}
