// Package payment constructs the payment-gateway client from explicit
// configuration instead of ambient environment lookups, so the client can be
// injected wherever the checkout flow needs it.
package payment

import (
	"fmt"

	braintree "github.com/braintree-go/braintree-go"
	"github.com/go-playground/validator/v10"
)

// Config holds the gateway credentials.
type Config struct {
	Environment string `validate:"required,oneof=sandbox production"`
	MerchantID  string `validate:"required"`
	PublicKey   string `validate:"required"`
	PrivateKey  string `validate:"required"`
}

// NewClient validates cfg and builds a Braintree gateway client. The
// transaction flow itself belongs to the checkout subsystem; callers here
// only need a ready client.
func NewClient(cfg Config) (*braintree.Braintree, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid payment gateway config: %w", err)
	}

	env := braintree.Sandbox
	if cfg.Environment == "production" {
		env = braintree.Production
	}
	return braintree.New(env, cfg.MerchantID, cfg.PublicKey, cfg.PrivateKey), nil
}
