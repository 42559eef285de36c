package model

// CancelReason is the closed taxonomy of cancellation reasons. Free-text
// reasons are rejected at the boundary.
type CancelReason string

const (
	ReasonCustomerRequest CancelReason = "customer_request"
	ReasonNoShow          CancelReason = "no_show"
	ReasonRoomIssue       CancelReason = "room_issue"
	ReasonPaymentFailed   CancelReason = "payment_failed"
	ReasonEmergency       CancelReason = "emergency"
	ReasonOther           CancelReason = "other"
)

var cancelReasons = map[CancelReason]struct{}{
	ReasonCustomerRequest: {},
	ReasonNoShow:          {},
	ReasonRoomIssue:       {},
	ReasonPaymentFailed:   {},
	ReasonEmergency:       {},
	ReasonOther:           {},
}

func (r CancelReason) Valid() bool {
	_, ok := cancelReasons[r]

	return ok
}

func (r CancelReason) String() string {
	return string(r)
}
