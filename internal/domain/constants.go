package domain

// Form confirmation value required for destructive actions
const ConfirmValue = "yes"

// Default batch sizes for endpoints without a fetch-all call
const (
	DefaultBatchSize = 100
	DefaultPageSize  = 25
)
