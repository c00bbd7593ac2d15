// Package catalog provides the Item aggregate: a purchasable template that an
// order's line item may be copied from.
//
// Items have an independent lifecycle. They are created and deleted freely by
// an operator, and orders never hold a live reference to them.
package catalog
