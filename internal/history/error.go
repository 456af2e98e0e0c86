package history

import "errors"

var ErrNothingToExport = errors.New("history has no orders to export")
