package utils

import (
	"fmt"
	"os"
	"strconv"
)

type Env interface {
	uint | bool | string
}

// GetEnv reads the environment variable key, falling back to defaultVal
// when unset. Required-but-missing variables and unparseable values
// panic: both are deployment mistakes, not runtime conditions.
func GetEnv[T Env](key string, defaultVal string, required bool) T {
	var retVal T

	val, ok := os.LookupEnv(key)
	if !ok {
		if required {
			panic(fmt.Sprintf("env %s is required", key))
		}

		val = defaultVal
	}

	switch ptr := any(&retVal).(type) {
	case *uint:
		parsedVal, err := strconv.ParseUint(val, 10, 32)
		if err != nil {
			panic(fmt.Sprintf("error: parsing env %s=%s: %v", key, val, err))
		}

		*ptr = uint(parsedVal)
	case *bool:
		parsedVal, err := strconv.ParseBool(val)
		if err != nil {
			panic(fmt.Sprintf("error: parsing env %s=%s: %v", key, val, err))
		}

		*ptr = parsedVal
	case *string:
		*ptr = val
	}

	return retVal
}
