package model

import (
	"fmt"
	"strings"

	"telegram-blackout-bot/internal/domain"
)

// CityConfig maps a city key to the upstream API partition serving it.
type CityConfig struct {
	Key    string
	Name   string
	Region int
	DSO    int
}

// Cities is the process-wide registry, ordered as shown in the root menu.
var Cities = []CityConfig{
	{Key: "kyiv", Name: "Київ", Region: 3, DSO: 301},
	{Key: "dnipro", Name: "Дніпро", Region: 4, DSO: 402},
}

// CityByKey looks up a registry entry.
func CityByKey(key string) (CityConfig, bool) {
	for _, c := range Cities {
		if c.Key == key {
			return c, true
		}
	}
	return CityConfig{}, false
}

const outagePath = "/api/blackout-service/public/shutdowns/regions/%d/dsos/%d/planned-outages"

// OutageURL builds the planned-outages address for a city. Unknown keys
// return ErrUnknownCity so the caller can fail without touching the
// network.
func OutageURL(baseURL, key string) (string, error) {
	c, ok := CityByKey(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownCity, key)
	}
	return strings.TrimRight(baseURL, "/") + fmt.Sprintf(outagePath, c.Region, c.DSO), nil
}
