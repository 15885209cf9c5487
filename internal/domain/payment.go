package domain

import (
	"errors"
	"strings"
)

// ErrUnknownPaymentMethod возвращается для способа оплаты вне списка
var ErrUnknownPaymentMethod = errors.New("unknown payment method")

// PaymentMethod represents the payment method chosen in the wizard
type PaymentMethod string

const (
	PaymentCard      PaymentMethod = "card"
	PaymentJazzCash  PaymentMethod = "jazzcash"
	PaymentEasyPaisa PaymentMethod = "easypaisa"
	PaymentCash      PaymentMethod = "cash"
)

// PaymentMethods список поддерживаемых способов оплаты в порядке отображения
var PaymentMethods = []PaymentMethod{
	PaymentCard,
	PaymentJazzCash,
	PaymentEasyPaisa,
	PaymentCash,
}

// ParsePaymentMethod разбирает способ оплаты без учета регистра
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	candidate := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range PaymentMethods {
		if m == candidate {
			return m, nil
		}
	}
	return "", ErrUnknownPaymentMethod
}

// Label returns a human readable name
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCard:
		return "Visa / Mastercard"
	case PaymentJazzCash:
		return "JazzCash"
	case PaymentEasyPaisa:
		return "EasyPaisa"
	case PaymentCash:
		return "Cash at venue"
	default:
		return string(m)
	}
}
