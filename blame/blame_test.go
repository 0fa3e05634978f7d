package blame_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhissng/sqlhelper/blame"
	"github.com/abhissng/sqlhelper/utils/constant"
	"github.com/abhissng/sqlhelper/utils/helpers"
	"github.com/abhissng/sqlhelper/utils/types"
)

func TestConstructorsCarryDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		err      blame.Blame
		sentinel error
		code     types.ErrorCode
		message  string
	}{
		{"invalid argument", blame.InvalidArgumentError("configuration"), blame.ErrInvalidArgument, blame.ErrorInvalidArgument, "invalid argument [configuration]"},
		{"config load", blame.ConfigLoadError("/etc/app.yaml", nil), blame.ErrConfigLoadFailure, blame.ErrorConfigLoadFailure, "failed to load configuration [/etc/app.yaml]"},
		{"config invalid", blame.ConfigInvalidError("connections", "Provider is required"), blame.ErrConfigInvalid, blame.ErrorConfigInvalid, "invalid configuration for [connections]"},
		{"provider open", blame.ProviderOpenError("mysql", nil), blame.ErrProviderOpenFailed, blame.ErrorProviderOpenFailed, "failed to open provider [mysql]"},
		{"provider unknown", blame.UnknownProviderError("db2"), blame.ErrProviderUnknown, blame.ErrorProviderUnknown, "unknown provider [db2]"},
		{"connection not found", blame.ConnectionNotFoundError("Sales"), blame.ErrConnectionNotFound, blame.ErrorConnectionNotFound, "connection [Sales] is not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.FetchErrCode())
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			assert.Equal(t, tt.code.String()+": "+tt.message, tt.err.Error())
			assert.Regexp(t, `^SQLH-1000\d\d$`, tt.err.FetchReasonCode())

			message, _ := tt.err.Translate()
			assert.Equal(t, tt.message, message)
		})
	}
}

func TestIsDistinguishesCodes(t *testing.T) {
	err := blame.UnknownProviderError("db2")
	assert.False(t, errors.Is(err, blame.ErrInvalidArgument))
	assert.False(t, errors.Is(err, errors.New("unknown provider")))
}

func TestCausesAreUnwrapped(t *testing.T) {
	cause := errors.New("open /etc/app.yaml: no such file or directory")
	err := blame.ConfigLoadError("/etc/app.yaml", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "(causes: [open /etc/app.yaml: no such file or directory])")

	wrapped := fmt.Errorf("loading: %w", err)
	var b blame.Blame
	require.True(t, errors.As(wrapped, &b))
	assert.Equal(t, blame.ErrorConfigLoadFailure, b.FetchErrCode())
	assert.Equal(t, []error{cause}, b.FetchCauses())
}

func TestDefinitionsAreNotShared(t *testing.T) {
	first := blame.UnknownProviderError("db2")
	second := blame.UnknownProviderError("informix")

	assert.Equal(t, "db2", first.FetchFields()["provider"])
	assert.Equal(t, "informix", second.FetchFields()["provider"])

	_ = first.WithCause(errors.New("boom"))
	assert.Empty(t, second.FetchCauses())
}

func TestErrorResponse(t *testing.T) {
	err := blame.ConfigInvalidError("connections", "Provider is required")

	response := err.FetchErrorResponse(blame.WithTranslation())
	assert.Equal(t, blame.ErrorConfigInvalid, response.ErrorCode)
	assert.Equal(t, "invalid configuration for [connections]", response.Message)
	assert.Equal(t, "[connections]: [Provider is required]", response.Description)
	assert.Equal(t, constant.ErrAdaptors, response.Component)
	assert.Equal(t, constant.BadRequest, response.ResponseType)
	assert.Empty(t, response.Causes)
}

func TestNewBlameManager(t *testing.T) {
	data := []byte(`[{"Code":"error-custom","Message":"custom {{.what}}","Component":"library"}]`)
	manager, err := blame.NewBlameManager(data, helpers.NewBundle(helpers.GetDefaultLanguageTag()))
	require.NoError(t, err)

	b := manager.FetchBlameForError("error-custom", blame.WithField("what", "failure"))
	assert.Equal(t, "error-custom: custom [failure]", b.Error())
	assert.Equal(t, "SQLH-100000", b.FetchReasonCode())

	unknown := manager.FetchBlameForError("error-missing")
	assert.Equal(t, types.ErrorCode("error-missing"), unknown.FetchErrCode())

	_, err = blame.NewBlameManager([]byte("{"), nil)
	assert.Error(t, err)
}
