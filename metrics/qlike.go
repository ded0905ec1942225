package metrics

import (
	"math"
	"sync/atomic"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/volaframe/core/parallel"
	"github.com/YuminosukeSato/volaframe/pkg/errors"
)

// 並列処理の閾値（この要素数以下では逐次処理を使用）
const parallelThreshold = 4096

// QLIKE は実現分散と予測分散の間のQLIKE（準尤度）損失を要素ごとに計算する
//
// QLIKE損失は分散予測の評価においてMSEより頑健な代替指標であり、
// 対数正規の仕様のもとで条件付き分散に対して一致性を持つ。
// 実現分散rと予測分散fの各ペアに対する損失は:
//
//	QLIKE(r, f) = r/f - ln(r/f) - 1
//
// 両入力は同じ長さでなければならない（違反時はDimensionError）。
// 値は正であることが想定されるが、検証は行わない: f = 0 などの退化した
// 入力では浮動小数点のInf/NaNがそのまま結果配列に伝播する
// （エラーにはならない）。退化を検出した場合はUndefinedMetricWarningを
// 警告フックへ一度だけ送出する。
//
// 戻り値:
//   - []float64: 要素ごとのQLIKE損失。新規に割り当てられ、入力は変更されない
//   - error: 長さが一致しない場合はDimensionError、入力が空の場合はValueError
func QLIKE(realizedVar, forecastVar []float64) ([]float64, error) {
	n := len(realizedVar)
	if n == 0 {
		return nil, errors.NewValueError("QLIKE", "empty variance series")
	}
	if len(forecastVar) != n {
		return nil, errors.NewDimensionError("QLIKE", n, len(forecastVar), 0)
	}

	loss := make([]float64, n)

	var degenerate int32
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			ratio := realizedVar[i] / forecastVar[i]
			if ratio <= 0 || math.IsNaN(ratio) {
				atomic.StoreInt32(&degenerate, 1)
			}
			loss[i] = ratio - math.Log(ratio) - 1.0
		}
	})

	if atomic.LoadInt32(&degenerate) != 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("qlike", "non-positive variance ratio", math.Inf(1)))
	}

	return loss, nil
}

// MeanQLIKE は要素ごとのQLIKE損失の平均を計算する
//
// モデル間の予測精度を比較する際に使うスカラー形式。
func MeanQLIKE(realizedVar, forecastVar []float64) (float64, error) {
	loss, err := QLIKE(realizedVar, forecastVar)
	if err != nil {
		return 0, err
	}
	return floats.Sum(loss) / float64(len(loss)), nil
}
