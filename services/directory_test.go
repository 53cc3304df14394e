package services

import (
	"reflect"
	"testing"

	"storefront/models"
)

var testZones = []models.Zone{
	{ID: 1, City: "Ramallah", AreaName: "Al-Tireh", DeliveryPrice: 10},
	{ID: 2, City: "Ramallah", AreaName: "Al-Masyoun", DeliveryPrice: 12},
	{ID: 3, City: "Nablus", AreaName: "Rafidia", DeliveryPrice: 15},
}

func TestCities(t *testing.T) {
	got := Cities(testZones)
	want := []string{"Ramallah", "Nablus"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Cities() = %v, want %v", got, want)
	}
	if Cities(nil) != nil {
		t.Error("Cities(nil) should be nil")
	}
}

func TestZonesForCity(t *testing.T) {
	got := ZonesForCity(testZones, "Ramallah")
	if len(got) != 2 {
		t.Fatalf("ZonesForCity(Ramallah) returned %d zones, want 2", len(got))
	}
	for _, z := range got {
		if z.City != "Ramallah" {
			t.Errorf("zone %d city = %q, want Ramallah", z.ID, z.City)
		}
	}
	if got := ZonesForCity(testZones, "Gaza"); len(got) != 0 {
		t.Errorf("ZonesForCity(unknown city) = %v, want empty", got)
	}
}
