package validate

import (
	"errors"
	"math"
	"testing"
)

type color string

func TestErrors_IsInvalidAndFirstMessageWins(t *testing.T) {
	errs := Errors{}
	Required(errs, "name", "   ")
	MinLen(errs, "name", "", 2)
	NonNegative(errs, "age", -1)
	NonNegative(errs, "weight", math.NaN())
	Email(errs, "email", "not-an-email")
	OneOf(errs, "color", color("green"), color("red"), color("blue"))

	err := errs.Err()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected errors.Is(err, ErrInvalid)")
	}
	if errs["name"] != "is required" {
		t.Fatalf("expected first message to win, got %q", errs["name"])
	}
	for _, f := range []string{"age", "weight", "email", "color"} {
		if _, ok := errs[f]; !ok {
			t.Fatalf("expected error for %s, got %#v", f, errs)
		}
	}

	var target Errors
	if !errors.As(err, &target) || len(target) != 5 {
		t.Fatalf("expected errors.As to expose 5 fields, got %#v", target)
	}
}

func TestErrors_EmptyIsNil(t *testing.T) {
	errs := Errors{}
	Required(errs, "name", "Rex")
	NonNegative(errs, "age", 0)
	Email(errs, "email", "rex@example.com")
	OneOf(errs, "color", color("red"), color("red"))
	MaxLen(errs, "bio", "short", 10)

	if err := errs.Err(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
