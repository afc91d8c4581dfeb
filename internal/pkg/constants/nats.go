package constants

// NATS subjects for settlement events
const (
	SubjectPaymentSettled   = "payments.settled"
	SubjectBookingConfirmed = "bookings.confirmed"
)
