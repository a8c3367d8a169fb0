package model

// EvaluationMessage reports a problem found while evaluating a request.
// CRITICAL messages stop evaluation; WARNING messages accompany results.
type EvaluationMessage struct {
	ID      int    `json:"id" yaml:"id"`
	Level   string `json:"level" yaml:"level"`
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeInvalidProfile   = "INVALID_PROFILE"
	CodeUnknownProgram   = "UNKNOWN_PROGRAM"
	CodeIncomeIncomplete = "INCOME_INCOMPLETE"
)
