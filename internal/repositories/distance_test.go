package repositories

import (
	"math"
	"testing"
)

func TestHaversineMeters(t *testing.T) {
	t.Run("zero for identical points", func(t *testing.T) {
		if d := haversineMeters(43.25, 76.95, 43.25, 76.95); d != 0 {
			t.Errorf("expected 0, got %f", d)
		}
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		d := haversineMeters(0, 0, 1, 0)
		// ~111.2 km on a spherical earth
		if math.Abs(d-111195) > 200 {
			t.Errorf("distance out of tolerance: %f", d)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		a := haversineMeters(43.25, 76.95, 51.17, 71.45)
		b := haversineMeters(51.17, 71.45, 43.25, 76.95)
		if math.Abs(a-b) > 1e-6 {
			t.Errorf("asymmetric: %f vs %f", a, b)
		}
	})

	t.Run("short range accuracy", func(t *testing.T) {
		// ~500 m east at the equator
		d := haversineMeters(0, 0, 0, 0.0045)
		if math.Abs(d-500) > 5 {
			t.Errorf("distance out of tolerance: %f", d)
		}
	})
}
