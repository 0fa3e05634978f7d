package blame

import (
	"github.com/abhissng/sqlhelper/utils/types"
)

const (
	ReasonCodeNameSpace = "SQLH"
	ReasonCodeBase      = 100000
)

// Error Identifiers for the library
const (
	ErrorInvalidArgument     types.ErrorCode = "error-invalid-argument"
	ErrorConfigLoadFailure   types.ErrorCode = "error-config-load-failure"
	ErrorConfigInvalid       types.ErrorCode = "error-config-invalid"
	ErrorProviderOpenFailed  types.ErrorCode = "error-provider-open-failed"
	ErrorProviderUnknown     types.ErrorCode = "error-provider-unknown"
	ErrorConnectionNotFound  types.ErrorCode = "error-connection-not-found"
)

// Sentinels for errors.Is. They are never mutated; constructors in general.go return fresh instances.
var (
	ErrInvalidArgument    = NewBasicError(ErrorInvalidArgument)
	ErrConfigLoadFailure  = NewBasicError(ErrorConfigLoadFailure)
	ErrConfigInvalid      = NewBasicError(ErrorConfigInvalid)
	ErrProviderOpenFailed = NewBasicError(ErrorProviderOpenFailed)
	ErrProviderUnknown    = NewBasicError(ErrorProviderUnknown)
	ErrConnectionNotFound = NewBasicError(ErrorConnectionNotFound)
)
