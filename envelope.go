package eway

import (
	"bytes"

	"github.com/m29h/xml"
)

const (
	soapEnvNS        = "http://schemas.xmlsoap.org/soap/envelope/"
	xsiNS            = "http://www.w3.org/2001/XMLSchema-instance"
	xsdNS            = "http://www.w3.org/2001/XMLSchema"
	managedPaymentNS = "https://www.eway.com.au/gateway/managedpayment"
)

const xmlDeclaration = `<?xml version="1.0" encoding="utf-8"?>`

// Envelope is a SOAP 1.1 envelope. Only serialization is supported; responses
// are walked as a DOM by the normalizer instead of being decoded into structs.
type Envelope struct {
	// XMLName is the serialized name of this object.
	XMLName xml.Name `xml:"http://schemas.xmlsoap.org/soap/envelope/ Envelope"`

	XSI string `xml:"xmlns:xsi,attr"`
	XSD string `xml:"xmlns:xsd,attr"`

	Header *Header
	Body   *Body
}

// NewEnvelope creates a new SOAP Envelope with the specified data as the content to serialize.
// Headers are assumed to be omitted unless explicitly added via AddHeaders()
func NewEnvelope(content any) *Envelope {
	return &Envelope{
		XSI:  xsiNS,
		XSD:  xsdNS,
		Body: &Body{Content: []any{content}},
	}
}

// AddHeaders adds additional headers to be serialized to the resulting SOAP envelope.
func (e *Envelope) AddHeaders(elems ...any) {
	if e.Header == nil {
		e.Header = &Header{}
	}

	e.Header.Headers = append(e.Header.Headers, elems...)
}

// encode serializes the envelope, prefixed with the utf-8 XML declaration.
func (e *Envelope) encode() ([]byte, error) {
	buf := bytes.NewBufferString(xmlDeclaration)
	if err := xml.NewEncoder(buf).Encode(e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Header is a SOAP envelope header.
type Header struct {
	// XMLName is the serialized name of this object.
	XMLName xml.Name `xml:"http://schemas.xmlsoap.org/soap/envelope/ Header"`
	// Headers is an array of envelope headers to send.
	Headers []any `xml:",omitempty"`
}

// Body is a SOAP envelope body.
type Body struct {
	// XMLName is the serialized name of this object.
	XMLName xml.Name `xml:"http://schemas.xmlsoap.org/soap/envelope/ Body"`
	// Content is a SOAP request body.
	Content []any `xml:",omitempty"`
}

// ewayHeader is the authentication block the service requires in the Header
// of every request. Field order is fixed.
type ewayHeader struct {
	XMLName    xml.Name `xml:"https://www.eway.com.au/gateway/managedpayment eWAYHeader"`
	CustomerID string   `xml:"eWAYCustomerID"`
	Username   string   `xml:"Username"`
	Password   string   `xml:"Password"`
}
