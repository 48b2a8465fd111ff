package engine

import "errors"

// ErrUnknownPipeline is returned by New when Config.Pipeline is neither
// "single" nor "dual".
var ErrUnknownPipeline = errors.New("unknown pipeline")
