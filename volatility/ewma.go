package volatility

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/volaframe/core/model"
	"github.com/YuminosukeSato/volaframe/pkg/errors"
)

// DefaultLambda はRiskMetricsで標準的に使われる日次リターン向けの減衰係数
const DefaultLambda = 0.94

// EWMA は指数加重移動平均（EWMA）によるボラティリティ予測モデル
//
// 条件付き分散が次の再帰式に従うと仮定する:
//
//	σ²_t = λ·σ²_{t-1} + (1-λ)·r²_t
//
// r_t は時点tのリターン、λ ∈ (0,1) は過程の記憶の長さを制御する
// 減衰係数。ボラティリティ予測は再帰的に推定された分散の平方根として
// 得られる。
type EWMA struct {
	model.BaseEstimator
	model.BaseModel

	lambda float64

	// volatility は学習済みのボラティリティ系列（標準偏差）
	volatility []float64
}

// NewEWMA は新しいEWMAボラティリティモデルを作成する
//
// パラメータ:
//   - lambda: EWMA再帰式の減衰係数λ。開区間(0,1)に含まれる必要がある。
//     1に近いほど過去の観測値への重みが大きくなる。
//
// 戻り値:
//   - *EWMA: 新しいEWMAインスタンス
//   - error: λが(0,1)の外にある場合はValidationError
func NewEWMA(lambda float64) (*EWMA, error) {
	if !(lambda > 0.0 && lambda < 1.0) {
		return nil, errors.NewValidationError("lambda", "must be in the open interval (0, 1)", lambda)
	}

	return &EWMA{
		BaseModel: model.NewBaseModel("EWMA", map[string]interface{}{"lambda": lambda}),
		lambda:    lambda,
	}, nil
}

// NewEWMADefault はデフォルトの減衰係数(0.94)でEWMAモデルを作成する
func NewEWMADefault() *EWMA {
	m, err := NewEWMA(DefaultLambda)
	if err != nil {
		// DefaultLambdaは常に(0,1)に含まれる
		panic(err)
	}
	return m
}

// Lambda は減衰係数λを返す
func (e *EWMA) Lambda() float64 {
	return e.lambda
}

// Fit はリターン系列からEWMA分散の再帰を計算し、ボラティリティ系列を学習する
//
// 分散の初期値は最初のリターンの二乗。以降は再帰式
// σ²_t = λ·σ²_{t-1} + (1-λ)·r²_t で更新する。
//
// 再学習すると以前の学習状態は完全に置き換えられる。
// 入力スライスへの参照は保持しない。
func (e *EWMA) Fit(returns []float64) error {
	if len(returns) == 0 {
		return errors.NewModelError("EWMA.Fit", "empty data", errors.ErrEmptyData)
	}

	lam := e.lambda
	oneMinusLam := 1.0 - lam

	variance := returns[0] * returns[0]
	vol := make([]float64, len(returns))
	vol[0] = math.Sqrt(variance)
	for t := 1; t < len(returns); t++ {
		variance = lam*variance + oneMinusLam*returns[t]*returns[t]
		vol[t] = math.Sqrt(variance)
	}

	e.volatility = vol
	e.SetFitted()

	return nil
}

// Predict は今後hピリオドのボラティリティ予測を返す
//
// EWMAの再帰式には平均回帰項が無いため、すべての将来時点に対する最良の
// 点予測は最後に学習されたボラティリティと一致する（フラットな期間構造）。
//
// 戻り値:
//   - []float64: 長さhの予測配列。全要素が最終ボラティリティに等しい
//   - error: hが1未満の場合はValueError、未学習の場合はNotFittedError
func (e *EWMA) Predict(h int) ([]float64, error) {
	if h < 1 {
		return nil, errors.NewValueError("EWMA.Predict", "h must be a positive integer")
	}
	if !e.IsFitted() || len(e.volatility) == 0 {
		return nil, errors.NewNotFittedError("EWMA", "Predict")
	}

	lastVol := e.volatility[len(e.volatility)-1]
	forecasts := make([]float64, h)
	floats.AddConst(lastVol, forecasts)

	return forecasts, nil
}

// Volatility は学習済みボラティリティ系列のコピーを返す。
// 未学習の場合はnilを返す。
func (e *EWMA) Volatility() []float64 {
	if e.volatility == nil {
		return nil
	}
	return append([]float64(nil), e.volatility...)
}
