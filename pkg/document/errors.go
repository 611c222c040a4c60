package document

import "errors"

// Sentinel errors for the engine's failure taxonomy. Callers match with
// errors.Is; operations wrap these with path/index context.
var (
	// ErrNotNavigable: a path step tries to descend through a scalar node.
	ErrNotNavigable = errors.New("cannot navigate through a scalar node")

	// ErrKeyNotFound: a mapping step or final key does not exist. Writes
	// never create keys implicitly.
	ErrKeyNotFound = errors.New("key not found")

	// ErrIndexOutOfRange: a list step or final index is outside [0, len).
	ErrIndexOutOfRange = errors.New("list index out of range")

	// ErrInvalidIndexType: a non-integer step used against a list.
	ErrInvalidIndexType = errors.New("expected integer index for list")

	// ErrNotAList: a list operation addressed a node that is not a list.
	ErrNotAList = errors.New("path does not point to a list")

	// ErrEmptyTemplate: add on an empty list with no item schema available.
	ErrEmptyTemplate = errors.New("cannot add item: list is empty and no template provided")

	// ErrLastItemProtected: removal would leave the list empty. At least one
	// item must remain since item 0 doubles as the structural fallback for
	// new items.
	ErrLastItemProtected = errors.New("cannot remove the last item from the list")

	// ErrEmptyPath: an operation received an empty path string.
	ErrEmptyPath = errors.New("path must not be empty")
)
