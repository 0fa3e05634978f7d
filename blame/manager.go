package blame

import (
	"encoding/json"
	"fmt"

	"github.com/abhissng/sqlhelper/utils/helpers"
	"github.com/abhissng/sqlhelper/utils/types"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// BlameDefinition represents a blame definition.
type BlameDefinition struct {
	ReasonCode   string `json:"ReasonCode"`
	Code         string `json:"Code"`
	Message      string `json:"Message"`
	Description  string `json:"Description"`
	Component    string `json:"Component"`
	ResponseType string `json:"ResponseType"`
}

// BlameManager is a wrapper around the blame definitions.
type BlameManager struct {
	BlameDefinitions map[types.ErrorCode]*Error
}

// RetrieveBlameCache returns a fresh copy of the definition for errorCode.
func (bm *BlameManager) RetrieveBlameCache(errorCode types.ErrorCode) *Error {
	if cache, ok := bm.BlameDefinitions[errorCode]; ok {
		return cache.clone()
	}
	return NewBasicError(errorCode)
}

// FetchBlameForError fetches a blame definition for the given error code.
func (bm *BlameManager) FetchBlameForError(errorCode types.ErrorCode, opts ...BlameOption) Blame {
	return bm.RetrieveBlameCache(errorCode).Wrap(opts...)
}

// NewBlameManager builds a manager from JSON encoded definitions.
func NewBlameManager(data []byte, bundle *i18n.Bundle) (*BlameManager, error) {
	if bundle == nil {
		bundle = helpers.NewBundle(helpers.GetDefaultLanguageTag())
	}

	var blameDefinitions []BlameDefinition
	if err := json.Unmarshal(data, &blameDefinitions); err != nil {
		return nil, fmt.Errorf("failed to decode error definitions: %w", err)
	}

	blameDefinitionsMap := make(map[types.ErrorCode]*Error, len(blameDefinitions))
	for index, def := range blameDefinitions {
		if helpers.IsEmpty(def.ReasonCode) {
			def.ReasonCode = helpers.GenerateReasonCode(ReasonCodeNameSpace, ReasonCodeBase+index)
		}
		blameDefinitionsMap[types.ErrorCode(def.Code)] =
			NewError(def.ReasonCode, types.ErrorCode(def.Code), def.Message, def.Description).
				WithComponent(types.ComponentErrorType(def.Component)).
				WithResponseType(types.ResponseErrorType(def.ResponseType)).
				WithBundle(bundle)
	}

	return &BlameManager{BlameDefinitions: blameDefinitionsMap}, nil
}

// BlameOption defines an option for modifying Blame creation.
type BlameOption func(*BlameOptions)

// BlameOptions holds options for creating Blame instances.
type BlameOptions struct {
	Fields map[string]any
	Causes []error
}

// NewBlameOptions creates a new BlameOptions instance.
func NewBlameOptions() *BlameOptions {
	return &BlameOptions{
		Fields: make(map[string]any),
		Causes: make([]error, 0),
	}
}

// WithField adds a single field to the Blame.
func WithField(key string, value any) BlameOption {
	return func(opts *BlameOptions) {
		opts.Fields[key] = value
	}
}

// WithFields takes a map[string]any and applies all key-value pairs to BlameOptions.
func WithFields(fields map[string]any) BlameOption {
	return func(opts *BlameOptions) {
		for key, value := range fields {
			opts.Fields[key] = value
		}
	}
}

// WithCauses adds causes to the Blame.
func WithCauses(causes ...error) BlameOption {
	return func(opts *BlameOptions) {
		opts.Causes = append(opts.Causes, causes...)
	}
}
