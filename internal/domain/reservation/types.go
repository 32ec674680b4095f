package reservation

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentRefunded, PaymentCancelled:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusUsed      Status = "USED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusUsed:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	MethodCard PaymentMethod = "CARD"
	MethodBank PaymentMethod = "BANK"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func NewPaymentMethod(s string) (PaymentMethod, error) {
	method := PaymentMethod(s)
	switch method {
	case MethodCard, MethodBank:
		return method, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}
