package volatility

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/volaframe/pkg/errors"
)

func TestNewRollingWindowValidation(t *testing.T) {
	tests := []struct {
		name    string
		window  int
		wantErr bool
	}{
		{name: "zero window", window: 0, wantErr: true},
		{name: "negative window", window: -5, wantErr: true},
		{name: "single observation window", window: 1, wantErr: true},
		{name: "minimal window", window: 2, wantErr: false},
		{name: "monthly window", window: 21, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewRollingWindow(tt.window)

			if (err != nil) != tt.wantErr {
				t.Fatalf("NewRollingWindow(%d) error = %v, wantErr %v", tt.window, err, tt.wantErr)
			}

			if tt.wantErr {
				var valErr *errors.ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("error = %T, want *errors.ValidationError", err)
				}
				return
			}

			if m.Window() != tt.window {
				t.Errorf("Window() = %d, want %d", m.Window(), tt.window)
			}
			if m.Name() != "RollingWindow" {
				t.Errorf("Name() = %q, want RollingWindow", m.Name())
			}
			if got := m.GetParams()["window"]; got != tt.window {
				t.Errorf("GetParams()[window] = %v, want %v", got, tt.window)
			}
		})
	}
}

func TestRollingWindowFitTrailingVariance(t *testing.T) {
	// 手計算による検証 (window=3):
	//   t=0: |r[0]| = 1
	//   t=1: var([1,2])   = 0.5 → √0.5
	//   t=2: var([1,2,3]) = 1.0 → 1
	//   t=3: var([2,3,4]) = 1.0 → 1 (窓から1が外れる)
	m, err := NewRollingWindow(3)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Fit([]float64{1.0, 2.0, 3.0, 4.0}); err != nil {
		t.Fatalf("Fit() unexpected error: %v", err)
	}

	want := []float64{1.0, math.Sqrt(0.5), 1.0, 1.0}
	got := m.Volatility()
	if len(got) != len(want) {
		t.Fatalf("Volatility() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Volatility()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRollingWindowPredictHoldsLastEstimate(t *testing.T) {
	m, err := NewRollingWindow(3)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Fit([]float64{1.0, 2.0, 3.0, 4.0}); err != nil {
		t.Fatal(err)
	}

	forecasts, err := m.Predict(4)
	if err != nil {
		t.Fatalf("Predict() unexpected error: %v", err)
	}

	if len(forecasts) != 4 {
		t.Fatalf("Predict(4) length = %d, want 4", len(forecasts))
	}
	for i, f := range forecasts {
		if math.Abs(f-1.0) > 1e-12 {
			t.Errorf("Predict(4)[%d] = %v, want 1.0", i, f)
		}
	}
}

func TestRollingWindowFitEmptyReturns(t *testing.T) {
	m, err := NewRollingWindow(5)
	if err != nil {
		t.Fatal(err)
	}

	err = m.Fit(nil)
	if err == nil {
		t.Fatal("expected error for empty return series")
	}
	if !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("error = %v, want wrapped ErrEmptyData", err)
	}
	if m.IsFitted() {
		t.Error("failed Fit must leave the model unfitted")
	}
}

func TestRollingWindowPredictBeforeFit(t *testing.T) {
	m, err := NewRollingWindow(5)
	if err != nil {
		t.Fatal(err)
	}

	_, err = m.Predict(1)
	if err == nil {
		t.Fatal("expected NotFittedError")
	}

	var notFitted *errors.NotFittedError
	if !errors.As(err, &notFitted) {
		t.Errorf("error = %T, want *errors.NotFittedError", err)
	}
	if notFitted.ModelName != "RollingWindow" {
		t.Errorf("ModelName = %q, want RollingWindow", notFitted.ModelName)
	}
}

func TestRollingWindowPredictInvalidHorizon(t *testing.T) {
	m, err := NewRollingWindow(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Fit([]float64{0.01, -0.02, 0.015}); err != nil {
		t.Fatal(err)
	}

	for _, h := range []int{0, -3} {
		_, err := m.Predict(h)
		if err == nil {
			t.Fatalf("Predict(%d) expected error", h)
		}
		var vErr *errors.ValueError
		if !errors.As(err, &vErr) {
			t.Errorf("Predict(%d) error = %T, want *errors.ValueError", h, err)
		}
	}
}

func TestRollingWindowRefitReplacesState(t *testing.T) {
	m, err := NewRollingWindow(3)
	if err != nil {
		t.Fatal(err)
	}

	if err := m.Fit([]float64{10.0, 20.0, 30.0, 40.0, 50.0}); err != nil {
		t.Fatal(err)
	}
	if err := m.Fit([]float64{1.0, 2.0, 3.0, 4.0}); err != nil {
		t.Fatal(err)
	}

	forecasts, err := m.Predict(1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(forecasts[0]-1.0) > 1e-12 {
		t.Errorf("Predict after refit = %v, want 1.0", forecasts[0])
	}
	if len(m.Volatility()) != 4 {
		t.Errorf("Volatility() length = %d, want 4", len(m.Volatility()))
	}
}

func TestRollingWindowSingleObservationSeed(t *testing.T) {
	// 観測値1つの系列では、EWMAと同じく |r[0]| がそのまま予測になる
	m, err := NewRollingWindow(5)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Fit([]float64{-0.02}); err != nil {
		t.Fatal(err)
	}

	forecasts, err := m.Predict(3)
	if err != nil {
		t.Fatal(err)
	}
	for i, f := range forecasts {
		if math.Abs(f-0.02) > 1e-12 {
			t.Errorf("Predict(3)[%d] = %v, want 0.02", i, f)
		}
	}
}
