// taisdecode decodes AIS VDM/VDO sentences into JSON records
package main

import (
	"flag"
	"os"

	"github.com/pkg/errors"

	"aisproto/gogroup"
	"aisproto/tms/libmain"
	"aisproto/tms/log"
)

var (
	inFile        = flag.String("in", "", "read sentences from this file instead of stdin")
	followIn      = flag.Bool("follow", false, "keep reading lines appended to -in")
	strict        = flag.Bool("strict", false, "reject sentences with a missing or wrong checksum")
	legacy13      = flag.Bool("legacy13", false, "decode message id 13 as an aircraft position report")
	format        = flag.String("format", "json", "output format: json or spew")
	quiet         = flag.Bool("quiet", false, "do not write records to stdout")
	redisHost     = flag.String("redis", "", "publish records to this redis host:port")
	redisDB       = flag.Int("redis-db", 0, "redis database")
	redisPassword = flag.String("redis-password", "", "redis password")
	channel       = flag.String("channel", "ais", "redis channel for published records")
)

func main() {
	libmain.Main(run)
}

func run(ctxt gogroup.GoGroup) error {
	if *followIn && *inFile == "" {
		return errors.New("-follow needs -in")
	}

	var sinks multiSink
	if !*quiet {
		s, err := newWriterSink(os.Stdout, *format)
		if err != nil {
			return err
		}
		sinks = append(sinks, s)
	}
	if *redisHost != "" {
		pool := newRedisPool(*redisHost, *redisDB, *redisPassword)
		defer pool.Close()
		sinks = append(sinks, &redisSink{pool: pool, channel: *channel})
	}

	lines := make(chan string, 64)
	reader := ctxt.Child("reader")
	reader.Go(func(g gogroup.GoGroup) error {
		defer close(lines)
		switch {
		case *followIn:
			return follow(g, *inFile, lines)
		case *inFile != "":
			f, err := os.Open(*inFile)
			if err != nil {
				return errors.Wrapf(err, "open %v", *inFile)
			}
			defer f.Close()
			return readLines(g, f, lines)
		default:
			return readLines(g, os.Stdin, lines)
		}
	})

	st := process(newLineDecoder(*strict, *legacy13), lines, sinks)
	log.Info("decoded %d of %d sentences, %d rejected, %d not delivered", st.decoded, st.lines, st.rejected, st.failed)
	reader.Wait()
	return nil
}

type stats struct {
	lines, decoded, rejected, failed int
}

// process decodes every line until lines is closed. Failures are logged and
// counted, they never stop the run.
func process(d *lineDecoder, lines <-chan string, sink Sink) stats {
	var st stats
	for line := range lines {
		rec, err := d.Decode(line)
		if rec == nil && err == nil {
			continue
		}
		st.lines++
		if err != nil {
			st.rejected++
			log.Warn("%q: %v", line, err)
			continue
		}
		st.decoded++
		if err := sink.Write(rec); err != nil {
			st.failed++
			log.Error("%v %v: %v", rec.Type, rec.MMSI, err)
		}
	}
	return st
}
