package eway

import (
	"fmt"
	"strings"

	"github.com/m29h/xml"
)

// Element names below are the literal field names of the remote service and
// must not be renamed. Struct field order fixes the serialized element order.

// customerElements is the customer fragment shared by CreateCustomer and
// UpdateCustomer. Card fields are appended only when a card is supplied;
// every other field is always emitted, empty or not.
type customerElements struct {
	Title       string `xml:"Title"`
	FirstName   string `xml:"FirstName"`
	LastName    string `xml:"LastName"`
	Address     string `xml:"Address"`
	Suburb      string `xml:"Suburb"`
	State       string `xml:"State"`
	Company     string `xml:"Company"`
	PostCode    string `xml:"PostCode"`
	Country     string `xml:"Country"`
	Email       string `xml:"Email"`
	Fax         string `xml:"Fax"`
	Phone       string `xml:"Phone"`
	Mobile      string `xml:"Mobile"`
	CustomerRef string `xml:"CustomerRef"`
	JobDesc     string `xml:"JobDesc"`
	Comments    string `xml:"Comments"`
	URL         string `xml:"URL"`

	CCNumber      string `xml:"CCNumber,omitempty"`
	CCNameOnCard  string `xml:"CCNameOnCard,omitempty"`
	CCExpiryMonth string `xml:"CCExpiryMonth,omitempty"`
	CCExpiryYear  string `xml:"CCExpiryYear,omitempty"`
}

type createCustomerRequest struct {
	XMLName xml.Name `xml:"https://www.eway.com.au/gateway/managedpayment CreateCustomer"`
	customerElements
}

type updateCustomerRequest struct {
	XMLName           xml.Name `xml:"https://www.eway.com.au/gateway/managedpayment UpdateCustomer"`
	ManagedCustomerID string   `xml:"managedCustomerID"`
	customerElements
}

type queryCustomerRequest struct {
	XMLName           xml.Name `xml:"https://www.eway.com.au/gateway/managedpayment QueryCustomer"`
	ManagedCustomerID string   `xml:"managedCustomerID"`
}

type queryCustomerByReferenceRequest struct {
	XMLName           xml.Name `xml:"https://www.eway.com.au/gateway/managedpayment QueryCustomerByReference"`
	CustomerReference string   `xml:"CustomerReference"`
}

type processPaymentRequest struct {
	XMLName            xml.Name `xml:"https://www.eway.com.au/gateway/managedpayment ProcessPayment"`
	ManagedCustomerID  string   `xml:"managedCustomerID"`
	Amount             int      `xml:"amount"`
	InvoiceReference   string   `xml:"invoiceReference"`
	InvoiceDescription string   `xml:"invoiceDescription"`
}

type queryPaymentRequest struct {
	XMLName           xml.Name `xml:"https://www.eway.com.au/gateway/managedpayment QueryPayment"`
	ManagedCustomerID string   `xml:"managedCustomerID"`
}

// buildCustomerElements validates and flattens a Customer into the wire
// fragment. Title and Address are the fields the service refuses to accept
// requests without.
func buildCustomerElements(c Customer) (customerElements, error) {
	if c.Title == "" {
		return customerElements{}, missingField("title")
	}
	if c.Address == "" {
		return customerElements{}, missingField("address")
	}

	el := customerElements{
		Title:       c.Title,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Address:     c.Address,
		Suburb:      c.Suburb,
		State:       c.State,
		Company:     c.Company,
		PostCode:    c.PostCode,
		Country:     strings.ToLower(c.Country),
		Email:       c.Email,
		Fax:         c.Fax,
		Phone:       c.Phone,
		Mobile:      c.Mobile,
		CustomerRef: c.CustomerRef,
		JobDesc:     c.JobDesc,
		Comments:    c.Comments,
		URL:         c.URL,
	}

	if c.Card != nil {
		el.CCNumber = c.Card.Number
		el.CCNameOnCard = c.Card.Name
		el.CCExpiryMonth = fmt.Sprintf("%02d", c.Card.ExpiryMonth)
		year := fmt.Sprintf("%04d", c.Card.ExpiryYear)
		el.CCExpiryYear = year[len(year)-2:]
	}

	return el, nil
}

func buildCreateCustomer(c Customer) (any, error) {
	el, err := buildCustomerElements(c)
	if err != nil {
		return nil, err
	}
	return &createCustomerRequest{customerElements: el}, nil
}

func buildUpdateCustomer(managedCustomerID string, c Customer) (any, error) {
	if managedCustomerID == "" {
		return nil, missingField("managed_customer_id")
	}
	el, err := buildCustomerElements(c)
	if err != nil {
		return nil, err
	}
	return &updateCustomerRequest{ManagedCustomerID: managedCustomerID, customerElements: el}, nil
}

func buildQueryCustomer(managedCustomerID string) (any, error) {
	if managedCustomerID == "" {
		return nil, missingField("managed_customer_id")
	}
	return &queryCustomerRequest{ManagedCustomerID: managedCustomerID}, nil
}

func buildQueryCustomerByReference(reference string) (any, error) {
	if reference == "" {
		return nil, missingField("customer_reference")
	}
	return &queryCustomerByReferenceRequest{CustomerReference: reference}, nil
}

func buildProcessPayment(p Payment) (any, error) {
	if p.ManagedCustomerID == "" {
		return nil, missingField("managed_customer_id")
	}
	if p.Amount <= 0 {
		return nil, missingField("amount")
	}
	return &processPaymentRequest{
		ManagedCustomerID:  p.ManagedCustomerID,
		Amount:             p.Amount,
		InvoiceReference:   p.InvoiceReference,
		InvoiceDescription: p.InvoiceDescription,
	}, nil
}

func buildQueryPayment(managedCustomerID string) (any, error) {
	if managedCustomerID == "" {
		return nil, missingField("managed_customer_id")
	}
	return &queryPaymentRequest{ManagedCustomerID: managedCustomerID}, nil
}
