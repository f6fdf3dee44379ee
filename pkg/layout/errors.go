package layout

import "errors"

var (
	// ErrMissingOption flags a node constructed without a required option,
	// e.g. a link without text or url.
	ErrMissingOption = errors.New("layout: missing option")
	// ErrInvalidOption flags an option value the node does not understand.
	ErrInvalidOption = errors.New("layout: invalid option")
)
