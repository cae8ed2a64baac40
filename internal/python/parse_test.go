// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package python_test

import (
	"context"
	"errors"
	"testing"

	. "fillmore-labs.com/docraise/internal/python"
	"fillmore-labs.com/docraise/internal/syntax"
	"fillmore-labs.com/docraise/internal/testsource"
)

func TestParseFunctions(t *testing.T) {
	t.Parallel()

	m := testsource.Parse(t, `
		import os


		@decorator
		async def fetch(url):
		    """Fetch url.

		    Raises:
		        TimeoutError: on timeout.
		    """
		    raise TimeoutError(url)


		class Client:
		    def close(self):
		        raise

		raise SystemExit
	`)

	var defs []*syntax.FuncDef
	for def := range syntax.Functions(m.Body) {
		defs = append(defs, def)
	}

	if len(defs) != 2 {
		t.Fatalf("Got %d functions, want 2", len(defs))
	}

	fetch, closeFn := defs[0], defs[1]

	if fetch.Name != "fetch" || !fetch.Async || fetch.Line() != 5 {
		t.Errorf("Got %q async=%t line %d, want fetch async=true line 5", fetch.Name, fetch.Async, fetch.Line())
	}

	if want := "Fetch url.\n\nRaises:\n    TimeoutError: on timeout."; fetch.Doc != want {
		t.Errorf("Doc = %q, want %q", fetch.Doc, want)
	}

	if closeFn.Name != "close" || closeFn.Async || closeFn.Doc != "" {
		t.Errorf("Got %q async=%t doc=%q", closeFn.Name, closeFn.Async, closeFn.Doc)
	}

	r, ok := closeFn.Body[0].(*syntax.Raise)
	if !ok || r.Exc != nil {
		t.Errorf("Expected bare raise, got %#v", closeFn.Body[0])
	}

	if _, ok := m.Body[len(m.Body)-1].(*syntax.Raise); !ok {
		t.Errorf("Expected module level raise, got %#v", m.Body[len(m.Body)-1])
	}
}

func TestParseRaise(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		exc  string
	}{
		{"bare", "raise", "<nil>"},
		{"name", "raise ValueError", "ValueError"},
		{"call", `raise ValueError("x")`, "ValueError()"},
		{"attribute", "raise errors.NotFound", "errors.NotFound"},
		{"qualified call", "raise a.b.C(1, 2)", "a.b.C()"},
		{"parenthesized", "raise (ValueError)", "ValueError"},
		{"tuple", "raise (A, B)", "(A, B)"},
		{"from", "raise ValueError from err", "ValueError"},
		{"from none", "raise ValueError() from None", "ValueError()"},
		{"subscript", "raise errors[0]", "?subscript"},
		{"call of call", "raise make()()", "make()()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			def := testsource.Func(t, "def f():\n    "+tt.src+"\n")

			r, ok := def.Body[0].(*syntax.Raise)
			if !ok {
				t.Fatalf("Expected raise, got %#v", def.Body[0])
			}

			if got := render(r.Exc); got != tt.exc {
				t.Errorf("Exc = %s, want %s", got, tt.exc)
			}
		})
	}
}

func TestParseHandlers(t *testing.T) {
	t.Parallel()

	def := testsource.Func(t, `
		def f():
		    try:
		        pass
		    except KeyError:
		        pass
		    except (KeyError, json.JSONDecodeError) as err:
		        raise err
		    except Exception as e:  # comment
		        pass
		    except:
		        raise
		    else:
		        raise ValueError
		    finally:
		        raise OSError
	`)

	try, ok := def.Body[0].(*syntax.Try)
	if !ok {
		t.Fatalf("Expected try, got %#v", def.Body[0])
	}

	want := [...]struct {
		typ   string
		name  string
		raise bool
	}{
		{"KeyError", "", false},
		{"(KeyError, json.JSONDecodeError)", "err", true},
		{"Exception", "e", false},
		{"<nil>", "", true},
	}

	if len(try.Handlers) != len(want) {
		t.Fatalf("Got %d handlers, want %d", len(try.Handlers), len(want))
	}

	for i, h := range try.Handlers {
		if got := render(h.Type); got != want[i].typ {
			t.Errorf("Handler %d type = %s, want %s", i, got, want[i].typ)
		}

		if h.Name != want[i].name {
			t.Errorf("Handler %d name = %q, want %q", i, h.Name, want[i].name)
		}

		if got := len(h.Body) == 1; got != want[i].raise {
			t.Errorf("Handler %d body = %#v", i, h.Body)
		}
	}

	if len(try.Else) != 1 || len(try.Finally) != 1 {
		t.Errorf("Got else %#v, finally %#v", try.Else, try.Finally)
	}
}

func TestParseBlocks(t *testing.T) {
	t.Parallel()

	def := testsource.Func(t, `
		def f(items):
		    x = 1
		    for item in items:
		        if item:
		            raise ValueError
		        elif item is None:
		            return
		        else:
		            with open(item) as fp:
		                raise OSError(fp)
		    while False:
		        pass
	`)

	if len(def.Body) != 1 {
		t.Fatalf("Got %d statements, want only the for loop: %#v", len(def.Body), def.Body)
	}

	loop, ok := def.Body[0].(*syntax.Block)
	if !ok || loop.Line() != 3 {
		t.Fatalf("Expected for block on line 3, got %#v", def.Body[0])
	}

	var raises int

	var count func(body []syntax.Node)
	count = func(body []syntax.Node) {
		for _, n := range body {
			switch n := n.(type) {
			case *syntax.Raise:
				raises++

			case *syntax.Block:
				count(n.Body)
			}
		}
	}
	count(loop.Body)

	if raises != 2 {
		t.Errorf("Got %d raises, want 2", raises)
	}
}

func TestParseDocstrings(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		body string
		want string
	}{
		{"plain", `"""Summary."""`, "Summary."},
		{"single quotes", `'Summary.'`, "Summary."},
		{"raw", `r"""Match \d."""`, `Match \d.`},
		{"escapes", `"""A\u0042C.\nNext."""`, "ABC.\nNext."},
		{"unicode prefix", `u"""Summary."""`, "Summary."},
		{"concatenated", `"Sum" "mary."`, "Summary."},
		{"f-string", `f"""Summary."""`, ""},
		{"bytes", `b"""Summary."""`, ""},
		{"not first", "x = 1\n    \"\"\"Summary.\"\"\"", ""},
		{"expression", `"""Summary.""" + x`, ""},
		{"comment first", "# comment\n    \"\"\"Summary.\"\"\"", "Summary."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			def := testsource.Func(t, "def f():\n    "+tt.body+"\n")

			if def.Doc != tt.want {
				t.Errorf("Doc = %q, want %q", def.Doc, tt.want)
			}
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Parse(context.Background(), []byte("def f(:\n    pass\n"))

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("Expected *SyntaxError, got %v", err)
	}

	if !errors.Is(err, ErrSyntax) {
		t.Errorf("Expected %v, got %v", ErrSyntax, err)
	}

	if se.Line < 1 || se.Column < 1 {
		t.Errorf("Got position %d:%d", se.Line, se.Column)
	}
}

func TestParseCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Parse(ctx, []byte("pass\n")); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected %v, got %v", context.Canceled, err)
	}
}

// render prints an expression in Python-like syntax; opaque nodes print as ?kind.
func render(e syntax.Expr) string {
	switch e := e.(type) {
	case nil:
		return "<nil>"

	case *syntax.Name:
		return e.ID

	case *syntax.Attribute:
		return render(e.Value) + "." + e.Attr

	case *syntax.Call:
		return render(e.Func) + "()"

	case *syntax.Tuple:
		s := "("
		for i, elt := range e.Elts {
			if i > 0 {
				s += ", "
			}

			s += render(elt)
		}

		return s + ")"

	case *syntax.Opaque:
		return "?" + e.Kind

	default:
		return "?"
	}
}
