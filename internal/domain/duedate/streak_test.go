package duedate

import (
	"testing"
	"time"
)

func TestStreak(t *testing.T) {
	cases := []struct {
		name string
		days []time.Time
		want int
	}{
		{"empty", nil, 0},
		{"only today", []time.Time{day(0)}, 1},
		{"today and two before", []time.Time{day(0), day(-1), day(-2)}, 3},
		{"duplicates count once", []time.Time{day(0), day(0).Add(5 * time.Hour), day(-1)}, 2},
		{"gap stops the walk", []time.Time{day(0), day(-1), day(-3), day(-4)}, 2},
		{"older than yesterday only", []time.Time{day(-2), day(-3)}, 0},
		{"future days ignored", []time.Time{day(1), day(2)}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Streak(tc.days, now); got != tc.want {
				t.Fatalf("want %d got %d", tc.want, got)
			}
		})
	}
}

// Comportamiento marcado: si hoy está vacío, ayer sigue contando (gracia asimétrica).
func TestStreak_FlaggedGraceWhenTodayEmpty(t *testing.T) {
	if got := Streak([]time.Time{day(-1)}, now); got != 1 {
		t.Fatalf("expected yesterday to keep streak alive, got %d", got)
	}
	if got := Streak([]time.Time{day(-1), day(-2), day(-3)}, now); got != 3 {
		t.Fatalf("expected 3 consecutive days ending yesterday, got %d", got)
	}
	// La gracia es solo al inicio: un hueco de un día más adelante corta.
	if got := Streak([]time.Time{day(-1), day(-3)}, now); got != 1 {
		t.Fatalf("expected walk to stop on first gap after the grace step, got %d", got)
	}
}
