package strategy

import "github.com/arloliu/persuade/types"

// ErrNoReceivers indicates that no receivers were provided for a search.
var ErrNoReceivers = types.ErrNoReceivers
