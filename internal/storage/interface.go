package storage

// Op is a single write in a batch: a set when Remove is false, a delete
// otherwise.
type Op struct {
	Key    string
	Value  string
	Remove bool
}

// SetOp builds a set operation.
func SetOp(key, value string) Op {
	return Op{Key: key, Value: value}
}

// RemoveOp builds a remove operation.
func RemoveOp(key string) Op {
	return Op{Key: key, Remove: true}
}

// Provider is a flat string-keyed persistent dictionary. Writes are visible to
// subsequent reads immediately; durability is best-effort and may lag behind
// the call (Flush forces it). Batch applies all ops as a single commit; there
// are no transactions across separate calls.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Values
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
	Batch(ops []Op) error
	Keys(prefix string) ([]string, error)
	Flush() error

	// Utils
	GetConfigPath() string
}
