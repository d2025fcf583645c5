package eway

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/beevik/etree"
)

// Value is one shape of a normalized response: a Scalar leaf, an ordered
// List of repeated siblings, or an Object keyed by snake_case element names.
// Consumers switch on the concrete type; the gateway's XML does not declare
// which fields repeat, so a field that is a Scalar in one response may be a
// List in another.
type Value interface {
	isValue()
}

// Scalar is the text content of a leaf element, possibly empty.
type Scalar string

// List holds the normalized values of same-named sibling elements in
// document order. It only appears once a tag occurs at least twice under one
// parent; a single occurrence stays unwrapped.
type List []Value

// Object maps normalized element names to their values.
type Object map[string]Value

func (Scalar) isValue() {}
func (List) isValue()   {}
func (Object) isValue() {}

// Text returns the scalar value stored under key, or "" when the key is
// absent or not a Scalar.
func (o Object) Text(key string) string {
	s, _ := o[key].(Scalar)
	return string(s)
}

// Child returns the nested Object stored under key, or nil.
func (o Object) Child(key string) Object {
	c, _ := o[key].(Object)
	return c
}

func (s Scalar) MarshalJSON() ([]byte, error) { return json.Marshal(string(s)) }
func (l List) MarshalJSON() ([]byte, error)   { return json.Marshal([]Value(l)) }
func (o Object) MarshalJSON() ([]byte, error) { return json.Marshal(map[string]Value(o)) }

var (
	underscoreAcronym = regexp.MustCompile(`([A-Z\d]+)([A-Z][a-z])`)
	underscoreWord    = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

// underscore converts a mixed-case element name to snake_case, keeping
// acronym runs intact: CCNumber -> cc_number, ewayTrxnStatus ->
// eway_trxn_status, CustomerURL -> customer_url.
func underscore(tag string) string {
	s := underscoreAcronym.ReplaceAllString(tag, "${1}_${2}")
	s = underscoreWord.ReplaceAllString(s, "${1}_${2}")
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ToLower(s)
}

// parseResponse parses the raw body and normalizes the subtree rooted at the
// action's response element, falling back to a SOAP Fault element. A nil
// Value with nil error means neither was found and the outcome is
// indeterminate.
func parseResponse(raw []byte, a action) (Value, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}

	root := doc.FindElement("//" + a.responseTag())
	if root == nil {
		root = doc.FindElement("//Fault")
	}
	if root == nil {
		return nil, nil
	}
	return normalizeElement(root), nil
}

// normalizeElement recursively converts an element subtree into a Value.
// Same-named siblings collapse into a List on their second occurrence and
// append from there on, preserving document order.
func normalizeElement(el *etree.Element) Value {
	children := el.ChildElements()
	if len(children) == 0 {
		return Scalar(el.Text())
	}

	obj := Object{}
	for _, child := range children {
		key := underscore(child.Tag)
		value := normalizeElement(child)
		switch existing := obj[key].(type) {
		case nil:
			obj[key] = value
		case List:
			obj[key] = append(existing, value)
		default:
			obj[key] = List{existing, value}
		}
	}
	return obj
}
