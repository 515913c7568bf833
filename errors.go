package rtree

import "errors"

var (
	// ErrConfiguration is returned by New and Load when the node size
	// parameters cannot produce a valid tree.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrPrecondition is returned when an item or query shape is nil or has
	// an invalid bounding rectangle. The tree is left unchanged.
	ErrPrecondition = errors.New("precondition failed")
)

// Stop is a special sentinel error that can be returned from a search
// callback to stop the search without any error.
var Stop = errors.New("stop")
