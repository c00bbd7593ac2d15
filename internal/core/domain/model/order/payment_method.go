package order

import (
	"fmt"
	"strings"

	"orderpanel/internal/pkg/errs"
)

// PaymentMethod is the channel the customer paid through.
type PaymentMethod string

const (
	PaymentBCA   PaymentMethod = "BCA"
	PaymentDANA  PaymentMethod = "DANA"
	PaymentGOPAY PaymentMethod = "GOPAY"
)

// ParsePaymentMethod normalizes raw to upper case and validates it.
// An empty value is reported as required rather than invalid.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError("paymentMethod")
	}
	pm := PaymentMethod(strings.ToUpper(trimmed))
	if err := pm.Validate(); err != nil {
		return "", err
	}
	return pm, nil
}

func (p PaymentMethod) Validate() error {
	switch p {
	case PaymentBCA, PaymentDANA, PaymentGOPAY:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod", fmt.Errorf("%q is not an accepted payment method", string(p)),
		)
	}
}

func (p PaymentMethod) String() string {
	return string(p)
}
