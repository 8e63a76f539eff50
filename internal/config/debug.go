package config

import "os"

func IsDebug() bool {
	return os.Getenv("PROMPTVAULT_DEBUG") == "1"
}
