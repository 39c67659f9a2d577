// Package poolist provides a growable, random-access sequence container
// whose backing storage is rented from a shared buffer pool instead of
// allocated fresh on every growth event.
//
// A List behaves like a slice with list ergonomics (index access, insert,
// remove, search, sort, bulk range operations) while keeping allocator and
// GC churn low in hot paths. In exchange, the caller must release the list
// when done so the backing buffer returns to the pool:
//
//	l := poolist.New[int]()
//	defer l.Release()
//
//	l.Add(1)
//	l.Add(2)
//	l.Add(3)
//	fmt.Println(l.ToSlice()) // [1 2 3]
//
// # Pooling
//
// By default every List of element type T shares a process-wide pool
// (bufpool.Shared[T]). A custom pool can be supplied with WithPool, for
// example to isolate a subsystem or to enforce a memory budget:
//
//	p := bufpool.New[int](bufpool.WithMaxBytes(64 << 20))
//	l := poolist.New[int](poolist.WithPool[int](p))
//
// Buffers vacated by removals, and buffers handed back to the pool, are
// zeroed only when T can hold references (pointers, maps, slices, and so
// on), so that the pool never keeps data reachable that the caller
// believes is gone. For plain value types the clearing is skipped. The
// policy is decided once per element type and can be overridden with
// WithClearPolicy.
//
// # Equality and ordering
//
// Operations that need natural equality or ordering are package-level
// functions with the corresponding constraint, mirroring the standard
// slices package: Index, Contains and Remove require comparable, Sort and
// BinarySearch require cmp.Ordered. Methods such as SortFunc,
// BinarySearchFunc and FindIndex take explicit functions and work for any
// element type.
//
// # Iteration
//
// Iterators and ForEach detect structural mutation through a generation
// counter. Mutating the list between two iterator steps makes the next
// step fail with ErrConcurrentMutation instead of silently continuing
// over a stale range. This is a single-thread misuse check, not a
// substitute for synchronization.
//
// # Concurrency
//
// A single List is not safe for concurrent mutation; callers must
// serialize access when sharing one across goroutines. The pools in
// package bufpool are safe for concurrent rent and return from many
// lists.
//
// # Contract violations
//
// Using a list after Release, reading Iterator.Value before Next, and
// passing nil functions where one is required all panic. Data-dependent
// validation failures (bad indexes, bad windows, capacity below size)
// are returned as errors and never leave the list partially mutated.
package poolist
