package utils

import (
	"os"
	"os/user"
	"path/filepath"
)

// Getenv returns the value of the environment variable @key or @fallback if it is unset or empty.
func Getenv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}

// GetConfigPath returns the location of the config file @name.
func GetConfigPath(name string) string {
	usr, err := user.Current()
	if err == nil && (usr.HomeDir == "/root" || usr.HomeDir == "/home") {
		return filepath.Join("/config", name+".json") //hack for docker...
	}
	return filepath.Join("config", name+".json")
}
