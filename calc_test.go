package arith_test

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/zephyrtronium/arith"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		src  string
		want string
		ok   bool
	}{
		{"(1 + 38) * 4.5 - 1 / 2.", "175", true},
		{"3.5*2", "7", true},
		{"8-3-2", "3", true},
		{"1-5", "-4", true},
		{"10/4", "2.5", true},
		{"1/0", "", false},
		{"2++3", "", false},
		{"(1+2", "", false},
		{"", "", false},
		{"1+1a", "", false},
		{"2 # 3", "", false},
		{"+3", "", false},
		{"(+3)", "", false},
		{"(3+)", "", false},
	}
	for _, c := range cases {
		got, ok := arith.Evaluate(c.src)
		if got != c.want || ok != c.ok {
			t.Errorf("Evaluate(%q): want %q, %t; got %q, %t", c.src, c.want, c.ok, got, ok)
		}
	}
}

func TestEvaluateFractional(t *testing.T) {
	// Fractional results are compared by value, not by spelling.
	cases := []struct {
		src  string
		want float64
	}{
		{"1/3", 1.0 / 3},
		{"22/7", 22.0 / 7},
		{"1/8", 0.125},
		{"0.1*3", 0.30000000000000004},
	}
	for _, c := range cases {
		got, ok := arith.Evaluate(c.src)
		if !ok {
			t.Errorf("Evaluate(%q) failed", c.src)
			continue
		}
		v, err := strconv.ParseFloat(got, 64)
		if err != nil {
			t.Errorf("Evaluate(%q) = %q does not parse: %v", c.src, got, err)
			continue
		}
		if v != c.want {
			t.Errorf("Evaluate(%q): want %g, got %g", c.src, c.want, v)
		}
	}
}

func TestEvaluateNullable(t *testing.T) {
	if r := arith.EvaluateNullable(nil); r != nil {
		t.Errorf("nil statement: want nil, got %q", *r)
	}
	empty := ""
	if r := arith.EvaluateNullable(&empty); r != nil {
		t.Errorf("empty statement: want nil, got %q", *r)
	}
	bad := "1/0"
	if r := arith.EvaluateNullable(&bad); r != nil {
		t.Errorf("%q: want nil, got %q", bad, *r)
	}
	good := "(1 + 38) * 4.5 - 1 / 2."
	r := arith.EvaluateNullable(&good)
	if r == nil {
		t.Fatalf("%q: want result, got nil", good)
	}
	if *r != "175" {
		t.Errorf("%q: want 175, got %q", good, *r)
	}
}

func TestCalculateErrors(t *testing.T) {
	cases := []struct {
		src string
		err error
	}{
		{"", arith.ErrEmpty},
		{"2*/3", arith.ErrMalformed},
		{"1..2", arith.ErrNumber},
		{"1/0", arith.ErrInvalidResult},
		{"(1)(2)", arith.ErrInternal},
	}
	for _, c := range cases {
		r, err := arith.Calculate(c.src)
		if !errors.Is(err, c.err) {
			t.Errorf("Calculate(%q): want %v, got %q, %v", c.src, c.err, r, err)
		}
	}
}

func TestCalculateRecovers(t *testing.T) {
	trace := arith.WithTrace(func(arith.Step) { panic("boom") })
	r, err := arith.Calculate("1+2", trace)
	if !errors.Is(err, arith.ErrInternal) {
		t.Errorf("want ErrInternal, got %q, %v", r, err)
	}
	if r != "" {
		t.Errorf("want empty result, got %q", r)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	srcs := []string{"(1 + 38) * 4.5 - 1 / 2.", "8-3-2", "1/3", "1/0", "2++3"}
	for _, src := range srcs {
		want, wok := arith.Evaluate(src)
		for i := 0; i < 10; i++ {
			got, ok := arith.Evaluate(src)
			if got != want || ok != wok {
				t.Fatalf("%q: evaluation %d gave %q, %t; first gave %q, %t", src, i, got, ok, want, wok)
			}
		}
	}
}

func TestEvaluateConcurrent(t *testing.T) {
	srcs := map[string]string{
		"(1 + 38) * 4.5 - 1 / 2.": "175",
		"3.5*2":                   "7",
		"8-3-2":                   "3",
		"2*(3+(4-1)*2)":           "18",
	}
	var wg sync.WaitGroup
	errs := make(chan string, 8*len(srcs))
	for i := 0; i < 8; i++ {
		for src, want := range srcs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if got, ok := arith.Evaluate(src); !ok || got != want {
					errs <- src + " gave " + got
				}
			}()
		}
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}
