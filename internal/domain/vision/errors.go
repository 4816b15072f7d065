package vision

import "errors"

// ErrBackendFailed indicates a network/auth error calling a vision backend.
var ErrBackendFailed = errors.New("vision backend call failed")

// ErrFetchFailed indicates the image bytes could not be downloaded for the
// multimodal path.
var ErrFetchFailed = errors.New("image download failed")
