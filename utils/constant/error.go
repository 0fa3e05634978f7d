package constant

import "github.com/abhissng/sqlhelper/utils/types"

// These are ComponentErrorType constant
const (
	ErrConnection types.ComponentErrorType = "connection"
	ErrDatabase   types.ComponentErrorType = "database"
	ErrAdaptors   types.ComponentErrorType = "adaptors"
)

// These are generic request error constant
const (
	BadRequest     types.ResponseErrorType = "BadRequest"
	NotFound       types.ResponseErrorType = "NotFound"
)
