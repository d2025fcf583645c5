package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/m29h/eway"
)

var customerFlags eway.Customer

func addCustomerFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&customerFlags.Title, "title", "", "customer title (Mr., Ms., Mrs., Miss, Dr., Sir., Prof.)")
	f.StringVar(&customerFlags.FirstName, "first-name", "", "first name")
	f.StringVar(&customerFlags.LastName, "last-name", "", "last name")
	f.StringVar(&customerFlags.Address, "address", "", "street address")
	f.StringVar(&customerFlags.Suburb, "suburb", "", "city or suburb")
	f.StringVar(&customerFlags.State, "state", "", "state")
	f.StringVar(&customerFlags.Company, "company", "", "company")
	f.StringVar(&customerFlags.PostCode, "post-code", "", "post code")
	f.StringVar(&customerFlags.Country, "country", "", "two-letter country code")
	f.StringVar(&customerFlags.Email, "email", "", "email address")
	f.StringVar(&customerFlags.Fax, "fax", "", "fax number")
	f.StringVar(&customerFlags.Phone, "phone", "", "phone number")
	f.StringVar(&customerFlags.Mobile, "mobile", "", "mobile number")
	f.StringVar(&customerFlags.CustomerRef, "customer-ref", "", "your own customer reference")
	f.StringVar(&customerFlags.JobDesc, "job-desc", "", "job description")
	f.StringVar(&customerFlags.Comments, "comments", "", "comments")
	f.StringVar(&customerFlags.URL, "url", "", "customer website")
}

var cardFlags eway.Card

func addCardFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&cardFlags.Number, "cc-number", "", "credit card number")
	f.StringVar(&cardFlags.Name, "cc-name", "", "name on card")
	f.IntVar(&cardFlags.ExpiryMonth, "cc-month", 0, "card expiry month (1-12)")
	f.IntVar(&cardFlags.ExpiryYear, "cc-year", 0, "card expiry year (four digits)")
}

func customerFromFlags() eway.Customer {
	c := customerFlags
	if cardFlags.Number != "" {
		card := cardFlags
		c.Card = &card
	}
	return c
}

// parseAmount converts a decimal dollar amount like "10.50" to cents.
func parseAmount(s string) (int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	cents := d.Mul(decimal.NewFromInt(100))
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %q has sub-cent precision", s)
	}
	return int(cents.IntPart()), nil
}

func printResponse(resp *eway.Response) error {
	status := "DECLINED"
	if resp.Success {
		status = "OK"
	}
	fmt.Printf("%s %s\n", status, resp.Message)
	if resp.Authorization != "" {
		fmt.Printf("authorization: %s\n", resp.Authorization)
	}
	if resp.Params != nil {
		out, err := json.MarshalIndent(resp.Params, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	if !resp.Success {
		os.Exit(1)
	}
	return nil
}

var createCustomerCmd = &cobra.Command{
	Use:   "create-customer",
	Short: "Store a new customer profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGateway()
		if err != nil {
			return err
		}
		resp, err := g.CreateCustomer(cmd.Context(), customerFromFlags())
		if err != nil {
			return err
		}
		return printResponse(resp)
	},
}

var updateCustomerCmd = &cobra.Command{
	Use:   "update-customer <managed-customer-id>",
	Short: "Replace a stored customer profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGateway()
		if err != nil {
			return err
		}
		resp, err := g.UpdateCustomer(cmd.Context(), args[0], customerFromFlags())
		if err != nil {
			return err
		}
		return printResponse(resp)
	},
}

var queryCustomerCmd = &cobra.Command{
	Use:   "query-customer <managed-customer-id>",
	Short: "Fetch a stored customer profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGateway()
		if err != nil {
			return err
		}
		resp, err := g.QueryCustomer(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResponse(resp)
	},
}

var queryCustomerRefCmd = &cobra.Command{
	Use:   "query-customer-ref <customer-reference>",
	Short: "Fetch a stored customer profile by your own reference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGateway()
		if err != nil {
			return err
		}
		resp, err := g.QueryCustomerByReference(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResponse(resp)
	},
}

var paymentAmount string
var invoiceReference string
var invoiceDescription string

var processPaymentCmd = &cobra.Command{
	Use:   "process-payment <managed-customer-id>",
	Short: "Trigger a payment against a stored customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(paymentAmount)
		if err != nil {
			return err
		}
		g, err := newGateway()
		if err != nil {
			return err
		}
		resp, err := g.ProcessPayment(cmd.Context(), eway.Payment{
			ManagedCustomerID:  args[0],
			Amount:             amount,
			InvoiceReference:   invoiceReference,
			InvoiceDescription: invoiceDescription,
		})
		if err != nil {
			return err
		}
		return printResponse(resp)
	},
}

var queryPaymentCmd = &cobra.Command{
	Use:   "query-payment <managed-customer-id>",
	Short: "List past payments for a stored customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGateway()
		if err != nil {
			return err
		}
		resp, err := g.QueryPayment(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResponse(resp)
	},
}

func init() {
	addCustomerFlags(createCustomerCmd)
	addCardFlags(createCustomerCmd)
	addCustomerFlags(updateCustomerCmd)
	addCardFlags(updateCustomerCmd)

	processPaymentCmd.Flags().StringVar(&paymentAmount, "amount", "", "amount in dollars, e.g. 10.50")
	processPaymentCmd.Flags().StringVar(&invoiceReference, "invoice-ref", "", "invoice reference")
	processPaymentCmd.Flags().StringVar(&invoiceDescription, "invoice-desc", "", "invoice description")
	_ = processPaymentCmd.MarkFlagRequired("amount")

	rootCmd.AddCommand(
		createCustomerCmd,
		updateCustomerCmd,
		queryCustomerCmd,
		queryCustomerRefCmd,
		processPaymentCmd,
		queryPaymentCmd,
	)
}
