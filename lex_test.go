package arith

import (
	"errors"
	"testing"
)

func TestScan(t *testing.T) {
	cases := []struct {
		src    string
		tokens []token
		err    bool
	}{
		// empty
		{"", []token{{kind: tokenEOF, pos: 1}}, false},
		// numbers
		{"0", []token{{text: "0", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 2}}, false},
		{"9876543210", []token{{text: "9876543210", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 11}}, false},
		{"1.0", []token{{text: "1.0", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 4}}, false},
		{"2.", []token{{text: "2.", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 3}}, false},
		{".5", []token{{text: ".5", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 3}}, false},
		// the scanner groups numerals without judging them
		{"1.2.3", []token{{text: "1.2.3", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 6}}, false},
		{".", []token{{text: ".", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 2}}, false},
		// operators
		{"1+0", []token{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}, {kind: tokenEOF, pos: 4}}, false},
		{"-", []token{{text: "-", kind: tokenOp, pos: 1}, {kind: tokenEOF, pos: 2}}, false},
		{"*/", []token{{text: "*", kind: tokenOp, pos: 1}, {text: "/", kind: tokenOp, pos: 2}, {kind: tokenEOF, pos: 3}}, false},
		// parens
		{"()", []token{{text: "(", kind: tokenOpen, pos: 1}, {text: ")", kind: tokenClose, pos: 2}, {kind: tokenEOF, pos: 3}}, false},
		{"12.5+(3)", []token{
			{text: "12.5", kind: tokenNum, pos: 1},
			{text: "+", kind: tokenOp, pos: 5},
			{text: "(", kind: tokenOpen, pos: 6},
			{text: "3", kind: tokenNum, pos: 7},
			{text: ")", kind: tokenClose, pos: 8},
			{kind: tokenEOF, pos: 9},
		}, false},
		// erroneous characters
		{"$", []token{{pos: 1}}, true},
		{"1a", []token{{text: "1", kind: tokenNum, pos: 1}, {pos: 2}}, true},
		{"1 2", []token{{text: "1", kind: tokenNum, pos: 1}, {pos: 2}}, true},
	}

	for _, c := range cases {
		scan := scanner{src: c.src}
		var err error
		for i, want := range c.tokens {
			var got token
			got, err = scan.next()
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
			if err != nil && i != len(c.tokens)-1 {
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
		}
		if c.err {
			var ce *CharError
			if !errors.As(err, &ce) {
				t.Errorf("scanning %q: want *CharError, got %v", c.src, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
		}
		// EOF repeats.
		if got, err := scan.next(); got.kind != tokenEOF || err != nil {
			t.Errorf("scanning %q: want repeated EOF, got %v with error %v", c.src, got, err)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{"", ""},
		{" \t \r\n ", ""},
		{"1\u00a0+\u20032", "1+2"},
		{" ( 1 + 38 ) * 4.5 - 1 / 2. ", "(1+38)*4.5-1/2."},
		{"1 + 2", "1+2"},
		{"1 2", "12"},
		{"a b", "ab"},
	}
	for _, c := range cases {
		if got := Normalize(c.src); got != c.want {
			t.Errorf("Normalize(%q): want %q, got %q", c.src, c.want, got)
		}
	}
}
