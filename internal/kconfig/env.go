package kconfig

import (
	"os"
)

// DefaultConfig is the file read when KCONFIG_CONFIG isn't set
const DefaultConfig = "prj.conf"

func GetEnv(name string, defaultValue string) string {
	value, ok := os.LookupEnv(name)
	if !ok {
		return defaultValue
	}
	return value
}

// Path returns the config file to read, from KCONFIG_CONFIG
func Path() string {
	return GetEnv("KCONFIG_CONFIG", DefaultConfig)
}
