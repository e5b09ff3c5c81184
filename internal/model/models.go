package model

// All lists every table created at startup.
func All() []interface{} {
	return []interface{}{
		&Business{},
		&Customer{},
		&Campaign{},
		&ContactMessage{},
	}
}
