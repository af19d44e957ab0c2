package model

import (
	"errors"
	"testing"

	"telegram-blackout-bot/internal/domain"
)

func TestOutageURL(t *testing.T) {
	t.Parallel()

	got, err := OutageURL("https://app.yasno.ua", "kyiv")
	if err != nil {
		t.Fatalf("OutageURL: %v", err)
	}
	want := "https://app.yasno.ua/api/blackout-service/public/shutdowns/regions/3/dsos/301/planned-outages"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// trailing slash on the base must not double up
	got, err = OutageURL("https://app.yasno.ua/", "kyiv")
	if err != nil {
		t.Fatalf("OutageURL: %v", err)
	}
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestOutageURL_UnknownCity(t *testing.T) {
	t.Parallel()

	if _, err := OutageURL("https://app.yasno.ua", "lviv"); !errors.Is(err, domain.ErrUnknownCity) {
		t.Fatalf("expected ErrUnknownCity, got %v", err)
	}
}

func TestCityByKey(t *testing.T) {
	t.Parallel()

	c, ok := CityByKey("dnipro")
	if !ok || c.Region != 4 {
		t.Fatalf("CityByKey(dnipro) = %+v, %v", c, ok)
	}
	if _, ok := CityByKey("nowhere"); ok {
		t.Fatalf("unknown key must not resolve")
	}
}
