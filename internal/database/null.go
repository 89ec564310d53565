package database

// nullableInt64 converts an optional id back to its row value (nil for NULL)
func nullableInt64(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

