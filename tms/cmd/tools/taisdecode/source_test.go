package main

import (
	"bufio"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aisproto/gogroup"
)

func collect(lines <-chan string) []string {
	var got []string
	for l := range lines {
		got = append(got, l)
	}
	return got
}

func TestReadLines(t *testing.T) {
	g := gogroup.New(nil, "test")
	lines := make(chan string, 4)
	go func() {
		defer close(lines)
		assert.NoError(t, readLines(g, strings.NewReader("a\r\nb\nc"), lines))
	}()
	assert.Equal(t, []string{"a", "b", "c"}, collect(lines))
}

func TestTailHoldsPartialLine(t *testing.T) {
	g := gogroup.New(nil, "test")
	r, w, cleanup := ioPipeFile(t)
	defer cleanup()
	tl := &tail{rd: bufio.NewReader(r)}
	lines := make(chan string, 4)

	w.WriteString("first\r\nsec")
	require.NoError(t, tl.drain(g, lines))
	w.WriteString("ond\n")
	require.NoError(t, tl.drain(g, lines))
	close(lines)
	assert.Equal(t, []string{"first", "second"}, collect(lines))
}

// ioPipeFile returns both ends of a fresh capture file.
func ioPipeFile(t *testing.T) (*os.File, *os.File, func()) {
	dir, err := ioutil.TempDir("", "taisdecode")
	require.NoError(t, err)
	name := filepath.Join(dir, "capture.nmea")
	w, err := os.Create(name)
	require.NoError(t, err)
	r, err := os.Open(name)
	require.NoError(t, err)
	return r, w, func() {
		r.Close()
		w.Close()
		os.RemoveAll(dir)
	}
}

func TestFollow(t *testing.T) {
	r, w, cleanup := ioPipeFile(t)
	defer cleanup()
	w.WriteString(brestSentence + "\r\n")

	g := gogroup.New(nil, "follow")
	lines := make(chan string, 4)
	done := make(chan error, 1)
	go func() { done <- follow(g, r.Name(), lines) }()

	select {
	case l := <-lines:
		assert.Equal(t, brestSentence, l)
	case <-time.After(5 * time.Second):
		t.Fatal("existing line not read")
	}

	w.WriteString(gpsdSentence + "\r\n")
	select {
	case l := <-lines:
		assert.Equal(t, gpsdSentence, l)
	case <-time.After(5 * time.Second):
		t.Fatal("appended line not read")
	}

	g.Cancel(nil)
	assert.NoError(t, <-done)
}

func TestProcess(t *testing.T) {
	lines := make(chan string, 8)
	lines <- brestSentence
	lines <- ""
	lines <- "garbage"
	lines <- gpsdSentence
	close(lines)

	bad := &failingSink{}
	st := process(testLineDecoder(false), lines, bad)
	assert.Equal(t, stats{lines: 3, decoded: 2, rejected: 1, failed: 2}, st)
	assert.Equal(t, 2, bad.calls)
}
