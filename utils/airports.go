// utils/airports.go
package utils

import "strings"

// UnknownCode is the marker the airport table uses for a missing IATA code.
const UnknownCode = `\N`

// CitySeparator joins city and country into a city key ("Accra, Ghana").
const CitySeparator = ", "

// NormalizeAirportCode trims and upper-cases an airport code.
func NormalizeAirportCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidIATACode reports whether code can be indexed. Blank codes and the
// `\N` marker are rejected.
func IsValidIATACode(code string) bool {
	c := strings.TrimSpace(code)
	return c != "" && c != UnknownCode
}

// CityKey builds the unique city identifier. City names collide across
// countries, so the country is always part of the key.
func CityKey(city, country string) string {
	return city + CitySeparator + country
}

// NormalizeCityKey trims the surrounding whitespace of a user supplied city key
// and collapses the whitespace around the separator.
func NormalizeCityKey(key string) string {
	key = strings.TrimSpace(key)
	i := strings.LastIndex(key, ",")
	if i < 0 {
		return key
	}
	return CityKey(strings.TrimSpace(key[:i]), strings.TrimSpace(key[i+1:]))
}
