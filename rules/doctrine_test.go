package rules

import "testing"

func TestLerp(t *testing.T) {
	tests := []struct {
		min, max int
		t        float64
		want     int
	}{
		{5, 20, 0.0, 5},
		{5, 20, 1.0, 20},
		{5, 20, 0.5, 13}, // 5 + round(15*0.5) = 5 + 8 = 13
		{150, -150, 0.5, 0},
		{150, -150, 1.0, -150},
		{0, 300, 0.25, 75},
	}
	for _, tc := range tests {
		got := lerp(tc.min, tc.max, tc.t)
		if got != tc.want {
			t.Errorf("lerp(%d, %d, %.2f) = %d, want %d", tc.min, tc.max, tc.t, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-0.5, 0, 1, 0.0},
		{1.5, 0, 1, 1.0},
	}
	for _, tc := range tests {
		got := clamp(tc.v, tc.min, tc.max)
		if got != tc.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tc.v, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestDefaultDoctrine(t *testing.T) {
	d := DefaultDoctrine()
	if d.Name != "Balanced" {
		t.Errorf("DefaultDoctrine().Name = %q, want %q", d.Name, "Balanced")
	}
	if d.Aggression != 0.5 {
		t.Errorf("Aggression = %f, want 0.5", d.Aggression)
	}
	if d.BuildingProtection != 0 || d.Persistence != 0 || d.AvoidStaticDefense != 0 {
		t.Errorf("optional rules should be off by default: %+v", d)
	}
}

func TestValidateClamps(t *testing.T) {
	d := Doctrine{Aggression: 3, BuildingProtection: -1, Persistence: 0.4, AvoidStaticDefense: 99}
	d.Validate()
	if d.Aggression != 1 || d.BuildingProtection != 0 || d.Persistence != 0.4 || d.AvoidStaticDefense != 10 {
		t.Errorf("Validate produced %+v", d)
	}
}

func TestEngageThreshold(t *testing.T) {
	tests := []struct {
		aggression float64
		want       int
	}{
		{0, 150},
		{0.5, 0},
		{1, -150},
		{2, -150},
	}
	for _, tc := range tests {
		if got := EngageThreshold(tc.aggression); got != tc.want {
			t.Errorf("EngageThreshold(%.1f) = %d, want %d", tc.aggression, got, tc.want)
		}
	}
}
