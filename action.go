package eway

// action identifies one of the managed payment service operations.
type action int

const (
	actionCreateCustomer action = iota
	actionUpdateCustomer
	actionQueryCustomer
	actionQueryCustomerByReference
	actionProcessPayment
	actionQueryPayment
)

var actionNames = [...]string{
	actionCreateCustomer:           "CreateCustomer",
	actionUpdateCustomer:           "UpdateCustomer",
	actionQueryCustomer:            "QueryCustomer",
	actionQueryCustomerByReference: "QueryCustomerByReference",
	actionProcessPayment:           "ProcessPayment",
	actionQueryPayment:             "QueryPayment",
}

func (a action) String() string {
	return actionNames[a]
}

// responseTag is the name of the element holding the operation result in a
// non-fault response.
func (a action) responseTag() string {
	return actionNames[a] + "Response"
}

// soapAction is the value of the SOAPAction HTTP header, quotes included,
// exactly as the service expects it.
func (a action) soapAction() string {
	return `"` + managedPaymentNS + "/" + actionNames[a] + `"`
}
