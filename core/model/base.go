package model

// EstimatorState はモデルの学習状態を表す
type EstimatorState int

const (
	// NotFitted はモデルが未学習の状態
	NotFitted EstimatorState = iota
	// Fitted はモデルが学習済みの状態
	Fitted
)

// BaseEstimator は全てのボラティリティモデルの基底となる構造体
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted はモデルが学習済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted はモデルを学習済み状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset はモデルを初期状態にリセットする
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}

// BaseModel はモデル名とハイパーパラメータを保持する構造体。
// 構築時に受け取った値をそのまま保持し、以降は変更されない。
// 検証は行わない（検証は具象モデルの責務）。
type BaseModel struct {
	name   string
	params map[string]interface{}
}

// NewBaseModel は名前とハイパーパラメータからBaseModelを作成する。
// paramsは内部にコピーされ、呼び出し側のマップとは独立する。
func NewBaseModel(name string, params map[string]interface{}) BaseModel {
	copied := make(map[string]interface{}, len(params))
	for k, v := range params {
		copied[k] = v
	}
	return BaseModel{name: name, params: copied}
}

// Name はモデルの識別名を返す
func (m *BaseModel) Name() string {
	return m.name
}

// GetParams はモデルのハイパーパラメータを返す。
// 内部状態を守るためコピーを返す。
func (m *BaseModel) GetParams() map[string]interface{} {
	copied := make(map[string]interface{}, len(m.params))
	for k, v := range m.params {
		copied[k] = v
	}
	return copied
}
