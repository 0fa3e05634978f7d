package blame

import (
	_ "embed"
	"sync"

	"github.com/abhissng/sqlhelper/utils/constant"
	"github.com/abhissng/sqlhelper/utils/helpers"
	"github.com/abhissng/sqlhelper/utils/types"
)

//go:embed error_definition.json
var embeddedBlameData []byte

var (
	localBlameManager     *BlameManager
	localBlameManagerOnce sync.Once
)

// getLocalBlameManager returns the manager built from the embedded definitions.
func getLocalBlameManager() *BlameManager {
	localBlameManagerOnce.Do(func() {
		manager, err := NewBlameManager(embeddedBlameData, nil)
		if err != nil {
			helpers.Println(constant.ERROR, "Error initialising local blame definitions: ", err)
			manager = &BlameManager{BlameDefinitions: map[types.ErrorCode]*Error{}}
		}
		localBlameManager = manager
	})
	return localBlameManager
}

/*
** These are internal errors function which uses
** local manager to determine the error
 */

// InvalidArgumentError is returned when a required argument is nil.
func InvalidArgumentError(name string) Blame {
	return getLocalBlameManager().FetchBlameForError(ErrorInvalidArgument, WithField("name", name))
}

// ConfigLoadError is returned when a configuration file cannot be read or decoded.
func ConfigLoadError(path string, cause error) Blame {
	return getLocalBlameManager().FetchBlameForError(
		ErrorConfigLoadFailure,
		WithField("path", path),
		WithCauses(cause),
	)
}

// ConfigInvalidError is returned when a decoded configuration fails validation.
func ConfigInvalidError(key, reason string) Blame {
	return getLocalBlameManager().FetchBlameForError(
		ErrorConfigInvalid,
		WithFields(map[string]any{
			"key":    key,
			"reason": reason,
		}),
	)
}

// ProviderOpenError is returned when a provider factory fails to open a database handle.
func ProviderOpenError(provider string, cause error) Blame {
	return getLocalBlameManager().FetchBlameForError(
		ErrorProviderOpenFailed,
		WithField("provider", provider),
		WithCauses(cause),
	)
}

// UnknownProviderError is returned when no factory is registered under the given name.
func UnknownProviderError(provider string) Blame {
	return getLocalBlameManager().FetchBlameForError(ErrorProviderUnknown, WithField("provider", provider))
}

// ConnectionNotFoundError is returned when a named connection has no configuration entry.
func ConnectionNotFoundError(name string) Blame {
	return getLocalBlameManager().FetchBlameForError(ErrorConnectionNotFound, WithField("name", name))
}
