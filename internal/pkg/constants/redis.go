package constants

// Redis key formats
const (
	// Auth service
	KeyGuestOTP      = "otp:guest:%s"      // Format: otp:guest:{phone_number}
	KeyRefreshToken  = "token:refresh:%s"  // Format: token:refresh:{token}
	KeyPasswordReset = "password:reset:%s" // Format: password:reset:{token}

	// Dispatch service
	KeyStaffGeo = "staff:geo" // Geo set of all located staff
)
