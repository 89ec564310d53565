package database

import "sync"

// Connector owns the one store handle for a process.
// The first Get opens the store; every later call returns the same *DB, or
// the same error if that first open failed.
type Connector struct {
	path string

	once sync.Once
	mu   sync.Mutex // guards db and err against a concurrent Close
	db   *DB
	err  error
}

// NewConnector creates a connector for the store at path.
// Nothing is opened until Get is called.
func NewConnector(path string) *Connector {
	if path == "" {
		path = DefaultPath
	}
	return &Connector{path: path}
}

// Get returns the shared handle, opening it on first use.
func (c *Connector) Get() (*DB, error) {
	c.once.Do(func() {
		db, err := New(c.path)
		c.mu.Lock()
		c.db, c.err = db, err
		c.mu.Unlock()
	})
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db, c.err
}

// Path returns the configured store path.
func (c *Connector) Path() string {
	return c.path
}

// Close closes the handle if it was ever opened.
func (c *Connector) Close() error {
	c.mu.Lock()
	db := c.db
	c.mu.Unlock()

	if db == nil {
		return nil
	}
	return db.Close()
}
