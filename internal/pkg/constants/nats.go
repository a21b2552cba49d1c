package constants

// NATS Subjects
const (
	// Dispatch service: one channel per staff member, fire-and-forget
	SubjectEmergencyAlert = "emergency.alert.%s" // Format: emergency.alert.{staff_id}
)
