package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderpanel/internal/core/domain/model/kernel"
	"orderpanel/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a customer's purchase or service request together with its
// fulfillment status. It is the aggregate root of the order package.
//
// Order follows these invariants:
//   - customer name, Roblox handle and payment method are present
//   - the line item (category, item name, price) is fixed at creation
//   - status only moves along the Status adjacency table
//   - the ID is zero until the store assigns one on insert
type Order struct {
	// id is assigned by the store's auto-increment; zero before insert
	id int64
	// customerName is the name the customer gave at intake
	customerName string
	// robloxUser is the customer's game handle, used for public tracking
	robloxUser string
	// line is the copied catalog entry or the custom request
	line LineItem
	// paymentMethod is the channel the customer paid through
	paymentMethod PaymentMethod
	// proofImage optionally references an uploaded payment proof
	proofImage string
	// status is the current lifecycle state
	status Status
	// createdAt is stamped by the store on insert
	createdAt time.Time
	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a Pending order that has not been persisted yet.
//
// Parameters:
//   - customerName, robloxUser: required, surrounding whitespace is trimmed
//   - line: the resolved line item
//   - paymentMethod: one of the accepted payment methods
//   - proofImage: optional payment proof reference, may be empty
//
// All field errors are reported together via errors.Join.
//
// Example:
//
//	line, _ := order.NewLineItem(kernel.CategoryTopUp, "5,000 Gems", kernel.MustNewPrice(45000))
//	o, err := order.NewOrder("Budi", "FishingPro_99", line, order.PaymentDANA, "")
//	if err != nil {
//	    // errs.IsValidation(err) == true
//	}
func NewOrder(
	customerName, robloxUser string,
	line LineItem,
	paymentMethod PaymentMethod,
	proofImage string,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerName(customerName),
		o.setRobloxUser(robloxUser),
		o.setLine(line),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}
	o.proofImage = strings.TrimSpace(proofImage)

	return o, nil
}

// RestoreOrder rebuilds a persisted order. It applies the same field checks as
// NewOrder and additionally requires a positive ID and a valid status.
func RestoreOrder(
	id int64,
	customerName, robloxUser string,
	line LineItem,
	paymentMethod PaymentMethod,
	proofImage string,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(customerName, robloxUser, line, paymentMethod, proofImage)
	if err != nil {
		return nil, err
	}

	var idErr error
	if id <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a persisted order id", id))
	}
	if err = errors.Join(idErr, status.Validate()); err != nil {
		return nil, err
	}

	o.id = id
	o.status = status
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the Order instance was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two persisted orders by ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// IsPersisted reports whether the store has assigned an ID.
func (o *Order) IsPersisted() bool {
	return o.id > 0
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) RobloxUser() string {
	return o.robloxUser
}

// Line returns the immutable line item.
func (o *Order) Line() LineItem {
	return o.line
}

func (o *Order) Category() kernel.Category {
	return o.line.Category()
}

func (o *Order) ItemName() string {
	return o.line.Name()
}

func (o *Order) Price() kernel.Price {
	return o.line.Price()
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// ProofImage returns the payment proof reference, or "" when none was uploaded.
func (o *Order) ProofImage() string {
	return o.proofImage
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TransitionTo moves the order to target if the lifecycle allows it.
// On error the order is left unchanged.
func (o *Order) TransitionTo(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = name
	return nil
}

func (o *Order) setRobloxUser(handle string) error {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return errs.NewValueIsRequiredError("robloxUser")
	}
	o.robloxUser = handle
	return nil
}

func (o *Order) setLine(line LineItem) error {
	if err := line.Validate(); err != nil {
		return err
	}
	o.line = line
	return nil
}

func (o *Order) setPaymentMethod(pm PaymentMethod) error {
	if pm == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	if err := pm.Validate(); err != nil {
		return err
	}
	o.paymentMethod = pm
	return nil
}
