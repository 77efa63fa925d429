// Package account checks the accounts a stellar.toml declares against a
// Horizon server.
package account

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/stellar/go-stellar-sdk/clients/horizonclient"

	stellartoml "github.com/marwen-abid/stellartoml-go"
	"github.com/marwen-abid/stellartoml-go/errors"
)

const defaultHorizonTimeout = 30 * time.Second

// AccountStatus reports whether a declared account exists on the network.
type AccountStatus struct {
	Account stellartoml.PublicKey
	Exists  bool
}

// HorizonChecker looks up accounts on a Horizon server.
type HorizonChecker struct {
	client *horizonclient.Client
}

// NewHorizonChecker creates a checker backed by the given Horizon URL.
func NewHorizonChecker(horizonURL string) *HorizonChecker {
	return &HorizonChecker{
		client: &horizonclient.Client{
			HorizonURL: horizonURL,
			HTTP:       &http.Client{Timeout: defaultHorizonTimeout},
		},
	}
}

// Exists reports whether the account has been created on the network.
func (c *HorizonChecker) Exists(ctx context.Context, account stellartoml.PublicKey) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.New(errors.ACCOUNT_CHECK_FAILED, "account check cancelled", err)
	}

	_, err := c.client.AccountDetail(horizonclient.AccountRequest{
		AccountID: account.String(),
	})
	if err == nil {
		return true, nil
	}
	if horizonclient.IsNotFoundError(err) {
		return false, nil
	}
	return false, errors.New(
		errors.ACCOUNT_CHECK_FAILED,
		fmt.Sprintf("failed to fetch account %s", account),
		err,
	).With("account", account.String())
}

// CheckAccounts looks up every ACCOUNTS entry of doc, in file order.
func (c *HorizonChecker) CheckAccounts(ctx context.Context, doc *stellartoml.StellarToml) ([]AccountStatus, error) {
	statuses := make([]AccountStatus, 0, len(doc.Accounts))
	for _, acc := range doc.Accounts {
		exists, err := c.Exists(ctx, acc)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, AccountStatus{Account: acc, Exists: exists})
	}
	return statuses, nil
}
