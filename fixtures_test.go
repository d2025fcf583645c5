package eway

// Canned gateway responses captured from the managed payment sandbox.

const createCustomerOKResponse = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <CreateCustomerResponse xmlns="https://www.eway.com.au/gateway/managedpayment">
      <CreateCustomerResult>Test 123</CreateCustomerResult>
    </CreateCustomerResponse>
  </soap:Body>
</soap:Envelope>`

const createCustomerFaultResponse = `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <soap:Body>
    <soap:Fault>
      <faultcode>soap:Client</faultcode>
      <faultstring>The 'CustomerCountry' element is invalid - The value 'australia' is invalid according to its datatype 'Country' - The Pattern constraint failed.</faultstring>
    </soap:Fault>
  </soap:Body>
</soap:Envelope>`

const updateCustomerOKResponse = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <UpdateCustomerResponse xmlns="https://www.eway.com.au/gateway/managedpayment">
      <UpdateCustomerResult>true</UpdateCustomerResult>
    </UpdateCustomerResponse>
  </soap:Body>
</soap:Envelope>`

const queryCustomerOKResponse = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <QueryCustomerResponse xmlns="https://www.eway.com.au/gateway/managedpayment">
      <QueryCustomerResult>
        <ManagedCustomerID>127421360542</ManagedCustomerID>
        <CustomerRef>Testing - 123</CustomerRef>
        <CustomerTitle>Miss</CustomerTitle>
        <CustomerFirstName>Account</CustomerFirstName>
        <CustomerLastName>Test</CustomerLastName>
        <CustomerCompany>Testing</CustomerCompany>
        <CustomerJobDesc>Tester</CustomerJobDesc>
        <CustomerEmail>test@eway.com.au</CustomerEmail>
        <CustomerAddress>37 test</CustomerAddress>
        <CustomerSuburb>Ngu</CustomerSuburb>
        <CustomerState>ACT</CustomerState>
        <CustomerPostCode>2211</CustomerPostCode>
        <CustomerCountry>au</CustomerCountry>
        <CustomerPhone1>0255556677</CustomerPhone1>
        <CustomerPhone2>040411225588</CustomerPhone2>
        <CustomerFax>0255556666</CustomerFax>
        <CustomerURL>http://www.test-test.com</CustomerURL>
        <CustomerComments>Testing web services modified</CustomerComments>
        <CCName>Moe Oo</CCName>
        <CCNumber>44443XXXXXXX1111</CCNumber>
        <CCExpiryMonth>2</CCExpiryMonth>
        <CCExpiryYear>12</CCExpiryYear>
      </QueryCustomerResult>
    </QueryCustomerResponse>
  </soap:Body>
</soap:Envelope>`

const queryCustomerEmptyResponse = `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <soap:Body>
    <QueryCustomerResponse xmlns="https://www.eway.com.au/gateway/managedpayment"/>
  </soap:Body>
</soap:Envelope>`

const processPaymentOKResponse = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <ProcessPaymentResponse xmlns="https://www.eway.com.au/gateway/managedpayment">
      <ewayResponse>
        <ewayTrxnError>00,Transaction Approved(Test Gateway)</ewayTrxnError>
        <ewayTrxnNumber>1011138</ewayTrxnNumber>
        <ewayTrxnStatus>True</ewayTrxnStatus>
        <ewayReturnAmount>1000</ewayReturnAmount>
        <ewayAuthCode>12345</ewayAuthCode>
      </ewayResponse>
    </ProcessPaymentResponse>
  </soap:Body>
</soap:Envelope>`

const processPaymentDeclinedResponse = `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <soap:Body>
    <ProcessPaymentResponse xmlns="https://www.eway.com.au/gateway/managedpayment">
      <ewayResponse>
        <ewayTrxnError>Error: Invalid eWAY TEST Gateway account. Your credit card has not been billed for this transaction.(Test Gateway)</ewayTrxnError>
        <ewayTrxnStatus>False</ewayTrxnStatus>
        <ewayTrxnNumber>1011138</ewayTrxnNumber>
        <ewayReturnAmount>1000</ewayReturnAmount>
        <ewayAuthCode/>
      </ewayResponse>
    </ProcessPaymentResponse>
  </soap:Body>
</soap:Envelope>`

const queryPaymentOKResponse = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <QueryPaymentResponse xmlns="https://www.eway.com.au/gateway/managedpayment">
      <QueryPaymentResult>
        <ManagedTransaction>
          <TotalAmount>10</TotalAmount>
          <Result>0</Result>
          <ResponseText>Approved</ResponseText>
          <TransactionDate>2007-05-10T00:00:00</TransactionDate>
          <ewayTrxnNumber>1000788</ewayTrxnNumber>
        </ManagedTransaction>
        <ManagedTransaction>
          <TotalAmount>101</TotalAmount>
          <Result>1</Result>
          <ResponseText>Declined</ResponseText>
          <TransactionDate>2007-05-10T00:00:00</TransactionDate>
          <ewayTrxnNumber>1000791</ewayTrxnNumber>
        </ManagedTransaction>
        <ManagedTransaction>
          <TotalAmount>101</TotalAmount>
          <Result>1</Result>
          <ResponseText>Declined</ResponseText>
          <TransactionDate>2007-05-10T00:00:00</TransactionDate>
          <ewayTrxnNumber>1000792</ewayTrxnNumber>
        </ManagedTransaction>
      </QueryPaymentResult>
    </QueryPaymentResponse>
  </soap:Body>
</soap:Envelope>`

const queryPaymentEmptyResponse = `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <soap:Body>
    <QueryPaymentResponse xmlns="https://www.eway.com.au/gateway/managedpayment">
      <QueryPaymentResult/>
    </QueryPaymentResponse>
  </soap:Body>
</soap:Envelope>`

const invalidCustomerFaultResponse = `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <soap:Fault>
      <faultcode>soap:Client</faultcode>
      <faultstring>Invalid managedCustomerID</faultstring>
    </soap:Fault>
  </soap:Body>
</soap:Envelope>`

func testCustomer() Customer {
	return Customer{
		Title:       "Mr.",
		FirstName:   "Joe",
		LastName:    "Bloggs",
		Address:     "Bloggs Enterprise",
		Suburb:      "Capital City",
		State:       "ACT",
		Company:     "Bloggs",
		PostCode:    "2111",
		Country:     "AU",
		Email:       "test@eway.com.au",
		Fax:         "0298989898",
		Phone:       "0297979797",
		CustomerRef: "Ref123",
		Comments:    "Please Ship ASAP",
		URL:         "http://www.test.com.au",
		Card: &Card{
			Number:      "4444333322221111",
			Name:        "Joe Bloggs",
			ExpiryMonth: 2,
			ExpiryYear:  2012,
		},
	}
}
