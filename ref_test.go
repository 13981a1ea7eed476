package willowbind

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

// captureLog redirects the standard logger for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestAddRefRegistersAndConsumes(t *testing.T) {
	g := newFakeGraph()
	n := newFakeNode(nil)
	attrs := Attrs{"ref": "title", "x": 1}

	AddRef(g, n, attrs)

	if g.refs["title"] != Node(n) {
		t.Error("node should be registered under its ref")
	}
	if _, ok := attrs["ref"]; ok {
		t.Error("ref key should be consumed")
	}
	if attrs["x"] != 1 {
		t.Error("other keys must be left alone")
	}
}

func TestAddRefSkipsMissingRefOrNode(t *testing.T) {
	g := newFakeGraph()
	AddRef(g, newFakeNode(nil), Attrs{"x": 1})
	AddRef(g, newFakeNode(nil), Attrs{"ref": ""})
	attrs := Attrs{"ref": "orphan"}
	AddRef(g, nil, attrs)
	if g.refCalls != 0 {
		t.Errorf("AddRef called %d times, want 0", g.refCalls)
	}
	if _, ok := attrs["ref"]; ok {
		t.Error("ref key should be consumed even without a node")
	}
}

func TestAddRefErrorIsLoggedNotReturned(t *testing.T) {
	buf := captureLog(t)
	g := newFakeGraph()
	g.refErr = errors.New("duplicate")

	AddRef(g, newFakeNode(nil), Attrs{"ref": "a"})

	if !strings.Contains(buf.String(), `willowbind: ref "a": duplicate`) {
		t.Errorf("log = %q", buf.String())
	}
}

func TestAddRefPanicIsRecovered(t *testing.T) {
	buf := captureLog(t)
	g := newFakeGraph()
	g.refPanic = true

	AddRef(g, newFakeNode(nil), Attrs{"ref": "a"})

	if !strings.Contains(buf.String(), "registry exploded") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestAddRefNonStringName(t *testing.T) {
	g := newFakeGraph()
	n := newFakeNode(nil)
	AddRef(g, n, Attrs{"ref": 7})
	if g.refs["7"] != Node(n) {
		t.Error("numeric refs should register under their formatted name")
	}
}
