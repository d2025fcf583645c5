package eway

import "strings"

// Response is the unified outcome of a gateway call. All post-parse failures
// are expressed through Success and Message rather than errors, so every
// operation returns the same shape.
type Response struct {
	// Success reports whether the gateway accepted the operation.
	Success bool
	// Message is the human-readable half of the gateway's status, or the
	// SOAP fault string.
	Message string
	// Params is the normalized response payload keyed by snake_case
	// element names. Nil when no response root was found.
	Params Object
	// Authorization is the gateway auth code for approved payments, empty
	// otherwise.
	Authorization string
	// Test reports whether the call was made against the sandbox endpoint.
	Test bool
}

// classify turns a normalized response value into an outcome.
//
// Payment responses carry their own status envelope under eway_response and
// are judged by ewayTrxnStatus; everything else succeeds exactly when a
// response object was found and it is not a SOAP fault. The presence of
// eway_response is the only discriminator the wire format offers.
func classify(v Value) *Response {
	params, _ := v.(Object)

	if eresp := params.Child("eway_response"); eresp != nil {
		return &Response{
			Success:       eresp.Text("eway_trxn_status") == "True",
			Message:       trxnMessage(eresp.Text("eway_trxn_error")),
			Params:        params,
			Authorization: eresp.Text("eway_auth_code"),
		}
	}

	resp := &Response{Params: params}
	if params != nil {
		_, faulted := params["faultcode"]
		resp.Success = !faulted
		resp.Message = params.Text("faultstring")
	}
	return resp
}

// trxnMessage strips the numeric code the gateway prepends to its
// transaction status, e.g. "00,Transaction Approved(Test Gateway)". Without
// a comma the whole field is the message.
func trxnMessage(trxnError string) string {
	parts := strings.Split(trxnError, ",")
	return parts[len(parts)-1]
}
