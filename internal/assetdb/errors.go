package assetdb

import (
	"errors"
	"fmt"
)

var (
	// ErrOutsideAssets is returned for folder paths not rooted at Assets.
	ErrOutsideAssets = errors.New("path must be under Assets/")
	// ErrUntracked is returned when a record was never loaded or created
	// through the database.
	ErrUntracked = errors.New("record is not tracked by the asset database")
)

// KindMismatchError reports a path that holds a different record kind than
// the one requested.
type KindMismatchError struct {
	Path string
	Want string
	Got  string
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("record %s is a %s, not a %s", e.Path, e.Got, e.Want)
}

// AsKindMismatch unwraps err into a *KindMismatchError when possible.
func AsKindMismatch(err error) (*KindMismatchError, bool) {
	var km *KindMismatchError
	if errors.As(err, &km) {
		return km, true
	}
	return nil, false
}
