package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("Vec2{}.Normalize() = %v, want zero", z)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Dot(t *testing.T) {
	got := Vec3{1, 2, 3}.Dot(Vec3{4, -5, 6})
	if got != 12 {
		t.Errorf("Vec3.Dot() = %v, want 12", got)
	}
}

func TestNormalize3(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float32
		want    Vec3
	}{
		{"zero", 0, 0, 0, Vec3{}},
		{"3-0-4", 3, 0, 4, Vec3{0.6, 0, 0.8}},
		{"axis", 0, -2, 0, Vec3{0, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize3(tt.x, tt.y, tt.z)
			if got != tt.want {
				t.Errorf("Normalize3(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.z, got, tt.want)
			}
			if m := (Vec3{tt.x, tt.y, tt.z}).Normalize(); m != got {
				t.Errorf("Vec3.Normalize() = %v, want %v", m, got)
			}
		})
	}
}
