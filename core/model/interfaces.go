// Package model defines the lifecycle contract shared by all volatility
// estimators, along with the base types they embed.
package model

// VolatilityModel is the contract every volatility estimator satisfies.
//
// The workflow is fit-then-predict:
//
//	m, err := volatility.NewEWMA(0.94)
//	err = m.Fit(returns)
//	forecasts, err := m.Predict(10)
//
// Fit consumes a historical return series and stores derived state on the
// model; Predict produces a fresh forecast slice for the next h periods.
// Predict before a successful Fit is a contract violation and returns a
// NotFittedError.
type VolatilityModel interface {
	// Fit estimates the model from a historical return series.
	// The series must contain at least one observation. Implementations
	// keep only derived state, never the caller's slice, and a failed Fit
	// leaves previously fitted state untouched.
	Fit(returns []float64) error

	// Predict returns volatility forecasts for each of the next h periods.
	// h must be at least 1. Predict does not mutate model state, and each
	// call allocates a new result slice.
	Predict(h int) ([]float64, error)

	// Name returns the human-readable model identifier.
	Name() string

	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}

// VolatilityEstimator is a VolatilityModel that also exposes its fitted
// in-sample volatility series.
type VolatilityEstimator interface {
	VolatilityModel

	// Volatility returns a copy of the fitted volatility series, or nil if
	// the model is not fitted.
	Volatility() []float64
}

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}
