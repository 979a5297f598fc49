package env

import (
	"os"
)

// PodName example: k8s-nftescrow-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: devnet
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName example: api
func AppName() string {
	return os.Getenv("APP_NAME")
}

// Or returns the env value of key, or def when unset
func Or(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
