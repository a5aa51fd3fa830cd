package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// ParseFloatParam retrieves a float64 value from the provided URL query parameters.
// If the key is not present or the value is invalid, it returns 0 and updates the fieldErrors map.
func ParseFloatParam(params url.Values, key string, fieldErrors map[string][]string) (float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return 0, fieldErrors
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
	}
	return f, fieldErrors
}

// RequireStringParam retrieves a required string value from the provided URL
// query parameters, recording a field error when it is missing.
func RequireStringParam(params url.Values, key string, fieldErrors map[string][]string) (string, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Missing required field %q.", key))
	}
	return val, fieldErrors
}
