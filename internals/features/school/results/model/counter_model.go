// file: internals/features/school/results/model/counter_model.go
package model

// ResultCounterModel is a single-integer document keyed by name
// (e.g. "result_2024"), incremented atomically by the reference generator.
type ResultCounterModel struct {
	ResultCounterKey   string `json:"result_counter_key" gorm:"column:result_counter_key;type:varchar(40);primaryKey"`
	ResultCounterValue int64  `json:"result_counter_value" gorm:"column:result_counter_value;not null;default:0"`
}

func (ResultCounterModel) TableName() string { return "result_counters" }
