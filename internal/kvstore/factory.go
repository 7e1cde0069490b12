package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
)

type FactoryResult struct {
	Driver string
	Store  Store
}

func FromEnv() (FactoryResult, error) {
	driver := os.Getenv("STATE_DRIVER")
	if driver == "" {
		driver = "file"
	}

	switch driver {
	case "file":
		path := os.Getenv("STATE_FILE")
		if path == "" {
			home, err := os.UserConfigDir()
			if err != nil {
				home = "."
			}
			path = filepath.Join(home, "mm-shop-admin", "state.json")
		}
		s, err := NewFile(path)
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: "file", Store: s}, nil

	case "memory":
		return FactoryResult{Driver: "memory", Store: NewMemory()}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown STATE_DRIVER: %s", driver)
	}
}
