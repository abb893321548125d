package storage

import "fmt"

// Open selects a Store implementation by driver name.
//
//	memory: ephemeral in-process store (tests, dry runs)
//	file:   one JSON file per key under path
//	sqlite: single database file at path (default)
func Open(driver Driver, path string) (Store, error) {
	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile:
		return NewFile(path)
	case DriverSQLite, "":
		if path == "" {
			path = "opsdeck.db"
		}
		return NewSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
