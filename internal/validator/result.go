package validator

import "github.com/leocth/labrinth/internal/domain"

// Status is the classification outcome of a validated file.
type Status string

const (
	// StatusPass means the file may be marked primary.
	StatusPass Status = "pass"
	// StatusPassWithPackData means the file may be marked primary and carries
	// the parsed pack index.
	StatusPassWithPackData Status = "pass_with_pack_data"
	// StatusWarning means the file is stored but must not be marked primary.
	StatusWarning Status = "warning"
)

// Result is the classification returned for a validated file.
type Result struct {
	Status  Status             `json:"status"`
	Warning string             `json:"warning,omitempty"`
	Pack    *domain.PackFormat `json:"pack,omitempty"`
}

// Pass returns a passing result.
func Pass() Result {
	return Result{Status: StatusPass}
}

// PassWithPackData returns a passing result carrying the parsed pack index.
func PassWithPackData(pack *domain.PackFormat) Result {
	return Result{Status: StatusPassWithPackData, Pack: pack}
}

// Warning returns a non-fatal result with the reason the file must not be primary.
func Warning(reason string) Result {
	return Result{Status: StatusWarning, Warning: reason}
}

// IsPassed reports whether the file should be marked as primary.
func (r Result) IsPassed() bool {
	return r.Status == StatusPass || r.Status == StatusPassWithPackData
}
