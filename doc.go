// Package volaframe provides a small volatility-forecasting toolkit for Go:
// a common contract for models that estimate and forecast the conditional
// variance of a financial return series, concrete estimators implementing
// that contract, and the QLIKE loss for scoring variance forecasts against
// realized variance.
//
// # Components
//
// - core/model: the VolatilityModel Fit/Predict contract and base types
// - volatility: EWMA and rolling-window estimators
// - metrics: the QLIKE quasi-likelihood loss
// - pkg/errors: structured errors (NotFittedError, ValidationError, ...)
// - pkg/log: zerolog setup for applications embedding the models
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/volaframe/volatility"
//	)
//
//	func main() {
//	    model, err := volatility.NewEWMA(0.94)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    returns := []float64{0.01, -0.02, 0.015, 0.003}
//	    if err := model.Fit(returns); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    forecasts, err := model.Predict(5)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(forecasts)
//	}
//
// The toolkit is a pure library: no data ingestion, persistence, CLI, or
// plotting. Callers supply a return series and consume forecast and loss
// slices. All operations are synchronous and CPU-bound; distinct model
// instances are independent and safe to fit in parallel, while access to a
// single shared instance must be serialized by the caller.
package volaframe
