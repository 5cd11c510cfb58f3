package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/finplan/internal/factory"
	"github.com/mesh-intelligence/finplan/pkg/types"
)

// accountOutput is the JSON shape of a created account.
type accountOutput struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	InterestRate float64 `json:"interest_rate"`
	Balance      float64 `json:"balance"`
	Currency     string  `json:"currency"`
	Summary      string  `json:"summary"`
}

func newAccountOutput(acct types.Account) accountOutput {
	return accountOutput{
		ID:           acct.ID(),
		Type:         acct.AccountType(),
		InterestRate: acct.InterestRate(),
		Balance:      acct.Balance(),
		Currency:     acct.Currency(),
		Summary:      factory.DescribeAccount(acct),
	}
}

func newAccountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "account <" + strings.Join(factory.AccountKinds(), "|") + ">",
		Short: "Open an account of the given kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creator, err := factory.NewAccountCreator(args[0])
			if err != nil {
				return a.fail(cmd, "select account creator", err)
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), newAccountOutput(creator.CreateAccount()))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), factory.GenerateAccount(creator))
			return err
		},
	}
}

// recommendationOutput is the JSON shape of a recommendation.
type recommendationOutput struct {
	Goal    string `json:"goal"`
	Details string `json:"details"`
}

func newRecommendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend <" + strings.Join(factory.GoalTypes(), "|") + ">",
		Short: "Recommend a savings strategy for a goal type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creator, err := factory.NewRecommendationCreator(args[0])
			if err != nil {
				return a.fail(cmd, "select recommendation creator", err)
			}
			if a.flags.jsonMode {
				rec := creator.CreateRecommendation()
				return printJSON(cmd.OutOrStdout(), recommendationOutput{Goal: rec.GoalType(), Details: rec.Details()})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), factory.GenerateRecommendation(creator))
			return err
		},
	}
}
