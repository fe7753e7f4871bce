package hoard

// Disposable is the resource-release contract implemented by types
// holding contents that can be cleared on demand. Unlike io.Closer, a
// disposed value stays usable; Dispose only releases what it currently
// holds. A parent resource owner can dispose a whole tree of
// Disposables without tearing any of them down.
type Disposable interface {
	Dispose()
}

// Compile-time check that Cache implements Disposable.
var _ Disposable = (*Cache[int, int])(nil)
