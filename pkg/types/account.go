// Account and recommendation products of the factory package.
package types

// Account is a financial account produced by an account creator.
type Account interface {
	// ID is a UUID v7 assigned when the account is created.
	ID() string
	AccountType() string
	// InterestRate is the yearly rate in percent.
	InterestRate() float64
	Balance() float64
	Currency() string
	Deposit(amount float64)
	// Withdraw debits amount and reports whether the balance covered it.
	// An uncovered withdrawal leaves the balance unchanged.
	Withdraw(amount float64) bool
}

// Recommendation is savings advice for one kind of financial goal.
type Recommendation interface {
	GoalType() string
	Details() string
}
