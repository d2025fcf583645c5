// ewaycli exercises the managed payment operations from the command line,
// mostly against the sandbox endpoint.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/m29h/eway"
)

var (
	live    bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ewaycli",
	Short: "Client for the eWAY managed payment SOAP service",
	Long: `ewaycli stores tokenized customers with the eWAY managed payment service
and triggers payments against them.

Credentials are read from the environment:
  EWAY_CUSTOMER_ID  eWAY customer id (required)
  EWAY_LOGIN        business centre login (required)
  EWAY_PASSWORD     business centre password (required)`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&live, "live", false, "use the live endpoint instead of the sandbox")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newGateway builds a Gateway from the environment and the persistent flags.
func newGateway() (*eway.Gateway, error) {
	customerID := os.Getenv("EWAY_CUSTOMER_ID")
	login := os.Getenv("EWAY_LOGIN")
	password := os.Getenv("EWAY_PASSWORD")
	if customerID == "" || login == "" || password == "" {
		return nil, fmt.Errorf("EWAY_CUSTOMER_ID, EWAY_LOGIN and EWAY_PASSWORD must be set")
	}

	logger, err := newLogger()
	if err != nil {
		return nil, err
	}

	return eway.New(eway.Config{
		CustomerID: customerID,
		Login:      login,
		Password:   password,
		Test:       !live,
		Logger:     logger,
	})
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
