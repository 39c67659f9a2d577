package bufpool

import (
	"reflect"
	"sync"
)

// sharedPools maps reflect.Type to *Pool[T] for that type.
var sharedPools sync.Map

// Shared returns the process-wide pool for element type T. All lists of
// the same element type default to this pool, so buffers recycle across
// container instances.
func Shared[T any]() *Pool[T] {
	key := reflect.TypeFor[T]()
	if p, ok := sharedPools.Load(key); ok {
		return p.(*Pool[T])
	}
	p, _ := sharedPools.LoadOrStore(key, New[T]())
	return p.(*Pool[T])
}
