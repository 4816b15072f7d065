package documents

import "errors"

// ErrUploadFailed indicates the content store did not return a retrievable URL.
var ErrUploadFailed = errors.New("content store upload failed")

// ErrParseFailed indicates the model output could not be parsed as JSON on a
// path that does not tolerate fallback.
var ErrParseFailed = errors.New("model returned invalid JSON")
