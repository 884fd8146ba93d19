package sale

import (
	"errors"
	"strings"
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Equals(other Money) bool {
	return m.cents == other.cents
}

// CustomerContact is the optional phone number a finished receipt is
// handed off to. Normalized to digits with an optional leading plus.
type CustomerContact struct {
	phone string
}

var ErrInvalidContact = errors.New("invalid customer contact")

func NewCustomerContact(raw string) (CustomerContact, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CustomerContact{}, ErrInvalidContact
	}

	var b strings.Builder
	for i, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')':
			// separators allowed on input, dropped on normalization
		default:
			return CustomerContact{}, ErrInvalidContact
		}
	}

	normalized := b.String()
	if len(strings.TrimPrefix(normalized, "+")) < 6 {
		return CustomerContact{}, ErrInvalidContact
	}

	return CustomerContact{phone: normalized}, nil
}

func (c CustomerContact) Phone() string {
	return c.phone
}

func (c CustomerContact) IsZero() bool {
	return c.phone == ""
}
