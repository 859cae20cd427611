package generate

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a name that the instance or prefab tables do
// not contain. It means code and data disagree, so the build is aborted.
type ConfigurationError struct {
	Kind string // "instance", "prefab", "range", "table"
	Key  string
	Msg  string
}

func (e *ConfigurationError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("configuration: %s %q: %s", e.Kind, e.Key, e.Msg)
	}
	return fmt.Sprintf("configuration: %s %q not found", e.Kind, e.Key)
}

// ErrPrecondition is returned by Build when a required stage was never
// configured or the builder was already consumed.
var ErrPrecondition = errors.New("layout precondition violated")

// ErrNoSpace marks a soft placement failure. Builds log it and carry on.
var ErrNoSpace = errors.New("not enough free space")
