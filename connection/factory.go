package connection

import (
	"reflect"

	"github.com/abhissng/sqlhelper/utils/helpers"
)

// Factory is the provider factory handle a Connection describes.
// TypeName returns its fully-qualified type signature.
type Factory interface {
	TypeName() string
}

// KindedFactory is a Factory that declares its provider up front,
// which skips signature detection.
type KindedFactory interface {
	Factory
	Provider() Provider
}

// NamedFactory is a Factory known only by its type signature, for example an
// ADO.NET provider name such as "System.Data.SqlClient.SqlClientFactory" read from configuration.
type NamedFactory string

// TypeName returns the signature verbatim.
func (n NamedFactory) TypeName() string {
	return string(n)
}

// TypeNameOf returns the package-qualified type name of v, following pointers.
func TypeNameOf(v any) string {
	if helpers.IsNil(v) {
		return ""
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// signatureOf reads the factory signature and works out which provider rules apply.
func signatureOf(factory Factory, declared *Provider) (string, Signature) {
	sourceType := ""
	if !helpers.IsNil(factory) {
		sourceType = factory.TypeName()
	}

	if declared != nil {
		return sourceType, SignatureFor(*declared)
	}
	if kinded, ok := factory.(KindedFactory); ok && !helpers.IsNil(factory) {
		return sourceType, SignatureFor(kinded.Provider())
	}
	return sourceType, DetectProvider(sourceType)
}
