package volatility

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/volaframe/core/model"
	"github.com/YuminosukeSato/volaframe/pkg/errors"
)

// RollingWindow は固定長の移動窓によるボラティリティ予測モデル
//
// 時点tの条件付き分散を直近window個のリターンの標本分散として推定する。
// EWMAの指数減衰と異なり、窓内の観測値はすべて等しい重みを持ち、
// 窓から外れた観測値は推定に一切影響しない。
type RollingWindow struct {
	model.BaseEstimator
	model.BaseModel

	window int

	// volatility は学習済みのボラティリティ系列（標準偏差）
	volatility []float64
}

// NewRollingWindow は新しい移動窓ボラティリティモデルを作成する
//
// パラメータ:
//   - window: 窓の長さ。標本分散の計算には2以上が必要。
//
// 戻り値:
//   - *RollingWindow: 新しいRollingWindowインスタンス
//   - error: windowが2未満の場合はValidationError
func NewRollingWindow(window int) (*RollingWindow, error) {
	if window < 2 {
		return nil, errors.NewValidationError("window", "must be at least 2", window)
	}

	return &RollingWindow{
		BaseModel: model.NewBaseModel("RollingWindow", map[string]interface{}{"window": window}),
		window:    window,
	}, nil
}

// Window は窓の長さを返す
func (r *RollingWindow) Window() int {
	return r.window
}

// Fit はリターン系列から移動窓の標本分散を計算し、ボラティリティ系列を学習する
//
// 窓が埋まるまでの時点tでは先頭からの部分系列[0..t]を窓として使う。
// 観測値が1つしかない時点0の分散は最初のリターンの二乗とし、
// EWMAの初期化と一致させる。観測値が2つ以上ある窓では不偏標本分散を使う。
//
// 再学習すると以前の学習状態は完全に置き換えられる。
// 入力スライスへの参照は保持しない。
func (r *RollingWindow) Fit(returns []float64) error {
	if len(returns) == 0 {
		return errors.NewModelError("RollingWindow.Fit", "empty data", errors.ErrEmptyData)
	}

	vol := make([]float64, len(returns))
	vol[0] = math.Abs(returns[0])
	for t := 1; t < len(returns); t++ {
		lo := t - r.window + 1
		if lo < 0 {
			lo = 0
		}
		variance := stat.Variance(returns[lo:t+1], nil)
		vol[t] = math.Sqrt(variance)
	}

	r.volatility = vol
	r.SetFitted()

	return nil
}

// Predict は今後hピリオドのボラティリティ予測を返す
//
// 移動窓の推定量は窓内の情報しか持たないため、すべての将来時点に対する
// 点予測は最後に学習されたボラティリティを保持する（フラットな期間構造）。
//
// 戻り値:
//   - []float64: 長さhの予測配列。全要素が最終ボラティリティに等しい
//   - error: hが1未満の場合はValueError、未学習の場合はNotFittedError
func (r *RollingWindow) Predict(h int) ([]float64, error) {
	if h < 1 {
		return nil, errors.NewValueError("RollingWindow.Predict", "h must be a positive integer")
	}
	if !r.IsFitted() || len(r.volatility) == 0 {
		return nil, errors.NewNotFittedError("RollingWindow", "Predict")
	}

	lastVol := r.volatility[len(r.volatility)-1]
	forecasts := make([]float64, h)
	floats.AddConst(lastVol, forecasts)

	return forecasts, nil
}

// Volatility は学習済みボラティリティ系列のコピーを返す。
// 未学習の場合はnilを返す。
func (r *RollingWindow) Volatility() []float64 {
	if r.volatility == nil {
		return nil
	}
	return append([]float64(nil), r.volatility...)
}
