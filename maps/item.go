package maps

import "fmt"

// Item is a key-value pair. Positional lookups and First/Last return entries as
// Items.
//
// Example:
//
//	for item := range m.Items() {
//	    fmt.Printf("Key: %v, Value: %v\n", item.Key, item.Value)
//	}
type Item[K comparable, V any] struct {
	Key   K
	Value V
}

// String renders the item as "key: value".
func (i Item[K, V]) String() string {
	return fmt.Sprintf("%v: %v", i.Key, i.Value)
}
