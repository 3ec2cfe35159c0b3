package geniter

import "testing"

func TestState(t *testing.T) {
	y := Yielded[int, string](42)
	if !y.Suspended() || y.Done() {
		t.Error("yielded state reports done")
	}
	if v, ok := y.Value(); !ok || v != 42 {
		t.Errorf("value: got (%d,%v), want (42,true)", v, ok)
	}
	if r, ok := y.Result(); ok || r != "" {
		t.Errorf("result of a yielded state: got (%q,%v), want (\"\",false)", r, ok)
	}

	c := Completed[int, string]("")
	if c.Suspended() || !c.Done() {
		t.Error("completed state reports suspended")
	}
	if v, ok := c.Value(); ok || v != 0 {
		t.Errorf("value of a completed state: got (%d,%v), want (0,false)", v, ok)
	}
	if r, ok := c.Result(); !ok || r != "" {
		t.Errorf("zero result: got (%q,%v), want (\"\",true)", r, ok)
	}
}
