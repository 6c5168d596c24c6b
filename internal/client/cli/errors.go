package cli

import "errors"

// errRequiredField marks a form aborted on an empty mandatory field. The
// views print the specific message themselves before returning it.
var errRequiredField = errors.New("required field missing")
