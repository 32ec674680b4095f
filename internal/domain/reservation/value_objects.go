package reservation

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrUnknownBank           = errors.New("unknown bank")
	ErrIncompleteRefundAccount = errors.New("refund account requires bank, account number and holder name")
	ErrNegativeAmount        = errors.New("amount cannot be negative")
)

// Banks the refund-account form enumerates.
var supportedBanks = map[string]struct{}{
	"KB국민":   {},
	"신한":     {},
	"우리":     {},
	"하나":     {},
	"NH농협":   {},
	"IBK기업":  {},
	"카카오뱅크": {},
	"토스뱅크":  {},
}

type Money struct {
	won int64
}

func NewMoney(won int64) (Money, error) {
	if won < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{won: won}, nil
}

func (m Money) Won() int64 {
	return m.won
}

func (m Money) IsZero() bool {
	return m.won == 0
}

// RefundAccount holds the bank-transfer refund destination collected in the
// reservation flow for paid events.
type RefundAccount struct {
	bank          string
	accountNumber string
	holderName    string
}

func NewRefundAccount(bank, accountNumber, holderName string) (RefundAccount, error) {
	bank = strings.TrimSpace(bank)
	accountNumber = strings.TrimSpace(accountNumber)
	holderName = strings.TrimSpace(holderName)
	if bank == "" || accountNumber == "" || holderName == "" {
		return RefundAccount{}, ErrIncompleteRefundAccount
	}
	if _, ok := supportedBanks[bank]; !ok {
		return RefundAccount{}, ErrUnknownBank
	}
	return RefundAccount{bank: bank, accountNumber: accountNumber, holderName: holderName}, nil
}

func (a RefundAccount) Bank() string          { return a.bank }
func (a RefundAccount) AccountNumber() string { return a.accountNumber }
func (a RefundAccount) HolderName() string    { return a.holderName }
