package models

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sofas & Couches", "sofas-couches"},
		{"Dining Tables", "dining-tables"},
		{"  Outdoor  ", "outdoor"},
		{"Beds", "beds"},
		{"Kids' Furniture", "kids-furniture"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
