package factors

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for factor table lookups. Compare with errors.Is().
var (
	// ErrUnknownFuelType indicates a fuel key absent from the factor table.
	ErrUnknownFuelType = constError("unknown fuel type")

	// ErrUnknownVehicleType indicates a vehicle key absent from the factor table.
	ErrUnknownVehicleType = constError("unknown vehicle type")

	// ErrUnsupportedVersion indicates a factor dataset whose version falls
	// outside the range this build understands.
	ErrUnsupportedVersion = constError("unsupported factor dataset version")
)
