// Package factory creates accounts and recommendations through creator
// interfaces. Each concrete creator decides which product to instantiate; the
// Generate functions are the shared template that describes the result.
package factory

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/finplan/pkg/types"
)

// Account kinds accepted by NewAccountCreator.
const (
	KindSavings    = "savings"
	KindInvestment = "investment"
	KindRetirement = "retirement"
)

const defaultCurrency = "USD"

// Compile-time interface checks.
var (
	_ types.Account = (*baseAccount)(nil)
	_ types.Account = (*SavingsAccount)(nil)
	_ types.Account = (*InvestmentAccount)(nil)
	_ types.Account = (*RetirementAccount)(nil)
)

// baseAccount carries the balance bookkeeping shared by every account type.
type baseAccount struct {
	id       string
	balance  float64
	currency string
	rate     float64
	kind     string
}

func newBaseAccount(kind string, rate float64) baseAccount {
	return baseAccount{
		id:       newAccountID(),
		currency: defaultCurrency,
		rate:     rate,
		kind:     kind,
	}
}

// newAccountID returns a UUID v7, falling back to a random v4 if the clock
// source fails.
func newAccountID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (a *baseAccount) ID() string            { return a.id }
func (a *baseAccount) AccountType() string   { return a.kind }
func (a *baseAccount) InterestRate() float64 { return a.rate }
func (a *baseAccount) Balance() float64      { return a.balance }
func (a *baseAccount) Currency() string      { return a.currency }

func (a *baseAccount) Deposit(amount float64) {
	a.balance += amount
}

func (a *baseAccount) Withdraw(amount float64) bool {
	if a.balance < amount {
		return false
	}
	a.balance -= amount
	return true
}

// SavingsAccount pays 1.5% interest.
type SavingsAccount struct{ baseAccount }

// InvestmentAccount pays 5% interest.
type InvestmentAccount struct{ baseAccount }

// RetirementAccount pays 3% interest.
type RetirementAccount struct{ baseAccount }

// NewSavingsAccount returns an empty savings account.
func NewSavingsAccount() *SavingsAccount {
	return &SavingsAccount{newBaseAccount("Savings Account", 1.5)}
}

// NewInvestmentAccount returns an empty investment account.
func NewInvestmentAccount() *InvestmentAccount {
	return &InvestmentAccount{newBaseAccount("Investment Account", 5)}
}

// NewRetirementAccount returns an empty retirement account.
func NewRetirementAccount() *RetirementAccount {
	return &RetirementAccount{newBaseAccount("Retirement Account", 3)}
}

// AccountCreator instantiates one kind of account.
type AccountCreator interface {
	CreateAccount() types.Account
}

// SavingsAccountCreator opens a savings account with a starting balance of
// 1000 USD and replays its opening transactions.
type SavingsAccountCreator struct{}

func (SavingsAccountCreator) CreateAccount() types.Account {
	acct := NewSavingsAccount()
	acct.balance = 1000
	acct.Deposit(2500)
	acct.Withdraw(3000)
	acct.Withdraw(500)
	return acct
}

// InvestmentAccountCreator opens an empty investment account.
type InvestmentAccountCreator struct{}

func (InvestmentAccountCreator) CreateAccount() types.Account {
	return NewInvestmentAccount()
}

// RetirementAccountCreator opens an empty retirement account.
type RetirementAccountCreator struct{}

func (RetirementAccountCreator) CreateAccount() types.Account {
	return NewRetirementAccount()
}

// accountCreators maps each kind to its creator.
var accountCreators = map[string]AccountCreator{
	KindSavings:    SavingsAccountCreator{},
	KindInvestment: InvestmentAccountCreator{},
	KindRetirement: RetirementAccountCreator{},
}

// AccountKinds lists the accepted account kinds.
func AccountKinds() []string {
	return []string{KindSavings, KindInvestment, KindRetirement}
}

// NewAccountCreator returns the creator for kind.
// Returns a *types.UnknownVariantError for kinds outside AccountKinds.
func NewAccountCreator(kind string) (AccountCreator, error) {
	c, ok := accountCreators[kind]
	if !ok {
		return nil, &types.UnknownVariantError{Kind: "account", Value: kind}
	}
	return c, nil
}

// GenerateAccount creates an account with c and describes it.
func GenerateAccount(c AccountCreator) string {
	return DescribeAccount(c.CreateAccount())
}

// DescribeAccount renders the account summary line.
func DescribeAccount(a types.Account) string {
	return fmt.Sprintf("Created a %s with %g%% interest rate and balance of %g %s.",
		a.AccountType(), a.InterestRate(), a.Balance(), a.Currency())
}
