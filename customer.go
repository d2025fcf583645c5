package eway

// Titles the gateway accepts for Customer.Title. Any other value is rejected
// remotely with a schema fault.
const (
	TitleMr   = "Mr."
	TitleMs   = "Ms."
	TitleMrs  = "Mrs."
	TitleMiss = "Miss"
	TitleDr   = "Dr."
	TitleSir  = "Sir."
	TitleProf = "Prof."
)

// Customer describes a customer profile to be stored with the gateway.
// Title and Address are required; everything else may be left empty and is
// transmitted as an empty element. The profile is never retained locally,
// only the managed customer id the gateway returns identifies it afterwards.
type Customer struct {
	Title       string
	FirstName   string
	LastName    string
	Address     string
	Suburb      string
	State       string
	Company     string
	PostCode    string
	Country     string // two-letter code, lowercased for transmission
	Email       string
	Fax         string
	Phone       string
	Mobile      string
	CustomerRef string
	JobDesc     string
	Comments    string
	URL         string

	// Card, when non-nil, is stored against the customer profile.
	Card *Card
}

// Card is a credit card passed through to the gateway and discarded after
// the request is built.
type Card struct {
	Number string
	Name   string
	// ExpiryMonth is 1-12.
	ExpiryMonth int
	// ExpiryYear is the four-digit year; only its last two digits are
	// transmitted.
	ExpiryYear int
}

// Address is a conventional billing address accepted by the Store and Update
// convenience methods and flattened onto the Customer shape the service
// expects.
type Address struct {
	Address1 string
	City     string
	State    string
	Zip      string
	Country  string
	Phone    string
	Mobile   string
	Fax      string
}

// apply flattens the billing address onto the customer record.
func (a Address) apply(c *Customer) {
	c.Address = a.Address1
	c.Phone = a.Phone
	c.PostCode = a.Zip
	c.Suburb = a.City
	c.Country = a.Country
	c.State = a.State
	c.Mobile = a.Mobile
	c.Fax = a.Fax
}

// Payment describes a payment to be triggered against a stored customer.
type Payment struct {
	ManagedCustomerID string
	// Amount is in minor currency units (cents).
	Amount int
	// InvoiceReference and InvoiceDescription are optional and sent as
	// empty elements when unset.
	InvoiceReference   string
	InvoiceDescription string
}
