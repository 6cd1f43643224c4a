package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"aisproto/gogroup"
	"aisproto/tms/log"
)

// readLines sends every line of r to out until EOF or cancellation.
func readLines(ctxt gogroup.GoGroup, r io.Reader, out chan<- string) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case out <- scanner.Text():
		case <-ctxt.Done():
			return nil
		}
	}
	return scanner.Err()
}

// tail reads the complete lines appended to a file. A trailing partial line
// is held back until its line end arrives.
type tail struct {
	rd      *bufio.Reader
	partial string
}

func (t *tail) drain(ctxt gogroup.GoGroup, out chan<- string) error {
	for {
		s, err := t.rd.ReadString('\n')
		if err == io.EOF {
			t.partial += s
			return nil
		}
		if err != nil {
			return err
		}
		line := strings.TrimRight(t.partial+s, "\r\n")
		t.partial = ""
		select {
		case out <- line:
		case <-ctxt.Done():
			return nil
		}
	}
}

// follow sends the lines of the file at path, then keeps sending the lines
// written to it until the group is canceled.
func follow(ctxt gogroup.GoGroup, path string, out chan<- string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %v", path)
	}
	defer f.Close()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "unable to watch")
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		return errors.Wrapf(err, "unable to watch %v", path)
	}

	t := &tail{rd: bufio.NewReader(f)}
	if err := t.drain(ctxt, out); err != nil {
		return err
	}
	for {
		select {
		case <-ctxt.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				if err := t.drain(ctxt, out); err != nil {
					return err
				}
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				log.Warn("%v was moved away, stop following", path)
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("error: %v", err)
		}
	}
}
