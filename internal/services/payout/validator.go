package payout

// Validate checks a requested amount against the schedule minimum and
// the caller-supplied available balance. Rules are evaluated
// independently; every violation is collected, in a fixed order, so the
// same bad input always yields the same result.
//
// No fee arithmetic runs here. Callers must not compute a breakdown for
// a request that failed validation.
func Validate(requestedAmount, availableBalance int64, schedule FeeSchedule) ValidationResult {
	var violations []ViolationReason

	if requestedAmount < schedule.MinimumTransferAmount {
		violations = append(violations, ViolationBelowMinimum)
	}
	if requestedAmount > availableBalance {
		violations = append(violations, ViolationInsufficientBalance)
	}
	if requestedAmount < 0 {
		violations = append(violations, ViolationInvalidAmount)
	}

	return ValidationResult{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}
