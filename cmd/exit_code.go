package cmd

import (
	"ordertracking/internal/pkg/errs"
)

// Process exit codes by error kind. Values follow sysexits(3) where one fits.
const (
	ExitOK                   = 0
	ExitUnknown              = 1
	ExitValidation           = 65
	ExitNotFound             = 66
	ExitReferentialIntegrity = 67
	ExitIllegalTransition    = 68
	ExitStoreCorruption      = 70
	ExitStoreBusy            = 75
	ExitUsage                = 64
)

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	switch errs.KindOf(err) {
	case errs.KindValidation:
		return ExitValidation
	case errs.KindNotFound:
		return ExitNotFound
	case errs.KindReferentialIntegrity:
		return ExitReferentialIntegrity
	case errs.KindIllegalTransition:
		return ExitIllegalTransition
	case errs.KindStoreCorruption:
		return ExitStoreCorruption
	case errs.KindStoreBusy:
		return ExitStoreBusy
	case errs.KindUnknown:
		return ExitUnknown
	}
	return ExitUnknown
}
