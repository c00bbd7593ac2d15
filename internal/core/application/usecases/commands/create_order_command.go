package commands

import (
	"errors"
	"strings"

	"orderpanel/internal/core/domain/model/order"
	"orderpanel/internal/core/domain/services"
	"orderpanel/internal/pkg/errs"
	"orderpanel/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's intake submission.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(CreateOrderInput{
//	    CustomerName:  "Budi",
//	    RobloxUser:    "FishingPro_99",
//	    ProductRef:    "7",
//	    PaymentMethod: "DANA",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	stored, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName      string
	robloxUser        string
	productRef        services.ProductRef
	submittedItemName string
	submittedPrice    int64
	paymentMethod     order.PaymentMethod
	proofImage        string

	guard guard.ConstructorGuard
}

// CreateOrderInput carries the raw intake form values.
type CreateOrderInput struct {
	CustomerName      string
	RobloxUser        string
	ProductRef        string
	SubmittedItemName string
	SubmittedPrice    int64
	PaymentMethod     string
	ProofImage        string
}

// NewCreateOrderCommand validates the customer fields and the payment method.
// The product ref never fails: anything that cannot name a catalog row is
// treated as a custom request.
func NewCreateOrderCommand(in CreateOrderInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		productRef:        services.ParseProductRef(in.ProductRef),
		submittedItemName: strings.TrimSpace(in.SubmittedItemName),
		submittedPrice:    in.SubmittedPrice,
		proofImage:        strings.TrimSpace(in.ProofImage),
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(in.CustomerName),
		cmd.setRobloxUser(in.RobloxUser),
		cmd.setPaymentMethod(in.PaymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

func (c CreateOrderCommand) RobloxUser() string {
	return c.robloxUser
}

func (c CreateOrderCommand) ProductRef() services.ProductRef {
	return c.productRef
}

// SubmittedItemName is only used when the order falls back to a custom request.
func (c CreateOrderCommand) SubmittedItemName() string {
	return c.submittedItemName
}

// SubmittedPrice is only used when the order falls back to a custom request.
func (c CreateOrderCommand) SubmittedPrice() int64 {
	return c.submittedPrice
}

func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c CreateOrderCommand) ProofImage() string {
	return c.proofImage
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setRobloxUser(handle string) error {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return errs.NewValueIsRequiredError("robloxUser")
	}
	c.robloxUser = handle
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(raw string) error {
	pm, err := order.ParsePaymentMethod(raw)
	if err != nil {
		return err
	}
	c.paymentMethod = pm
	return nil
}
