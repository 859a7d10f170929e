package storage

// Backend persists the serialized playerlist. Calls are synchronous and
// made from the store's owning goroutine.
type Backend interface {
	// Read returns the full contents stored at path. Returns an error
	// wrapping model.ErrNotFound if nothing has been stored there yet.
	Read(path string) ([]byte, error)

	// Write replaces the contents stored at path
	Write(path string, data []byte) error

	// Describe returns a human-readable location for path, used in logs
	Describe(path string) string
}
