package confirm

import "errors"

// ErrMissingKeyField wraps the panic raised when the request parameter
// map lacks the token field. The embedding application must validate the
// request shape before invoking the workflow.
var ErrMissingKeyField = errors.New("confirm: missing request key field")
