package matching

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Validation sentinels. Compare with errors.Is().
var (
	// ErrWeightsSum indicates weights not summing to 1.0 within tolerance.
	ErrWeightsSum = constError("weights must sum to 1.0")

	// ErrNegativeWeight indicates a negative weight.
	ErrNegativeWeight = constError("negative weight")

	// ErrFactorOutOfRange indicates a factor outside [0,100]; the message
	// names the offending factor key.
	ErrFactorOutOfRange = constError("factor out of range")

	// ErrInvalidBudget indicates budgetMax <= 0 or min/max inversion.
	ErrInvalidBudget = constError("invalid budget")

	// ErrNegativePrice indicates a negative listed price.
	ErrNegativePrice = constError("negative price")

	// ErrInvalidDistance indicates a negative distance or non-positive
	// acceptable maximum.
	ErrInvalidDistance = constError("invalid distance")

	// ErrInvalidQuantity indicates a negative listed quantity or an invalid
	// required range.
	ErrInvalidQuantity = constError("invalid quantity")
)
