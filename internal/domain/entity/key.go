package entity

import (
	"fmt"
	"reflect"
)

// Key identifies a dockable item or a bridged content. Keys are compared
// with == and are unique across an ArrangementSet.
type Key any

// ValidateKey rejects nil keys and keys whose dynamic type cannot be compared.
func ValidateKey(key Key) error {
	if key == nil {
		return fmt.Errorf("%w: key must not be nil", ErrInvalidArgument)
	}
	if !reflect.TypeOf(key).Comparable() {
		return fmt.Errorf("%w: key of type %T is not comparable", ErrInvalidArgument, key)
	}
	return nil
}

func indexOfKey(keys []Key, key Key) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}
