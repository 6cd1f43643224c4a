package main

import (
	"io"

	"github.com/gomodule/redigo/redis"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"aisproto/tms/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Sink consumes decoded records.
type Sink interface {
	Write(rec *Record) error
}

type writerSink struct {
	w      io.Writer
	format string
}

func newWriterSink(w io.Writer, format string) (*writerSink, error) {
	switch format {
	case "json", "spew":
	default:
		return nil, errors.Errorf("unknown output format %q", format)
	}
	return &writerSink{w: w, format: format}, nil
}

func (s *writerSink) Write(rec *Record) error {
	if s.format == "spew" {
		_, err := io.WriteString(s.w, log.Spew(rec))
		return err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "marshal record")
	}
	_, err = s.w.Write(append(data, '\n'))
	return err
}

// redisSink publishes every record as JSON on a Redis channel.
type redisSink struct {
	pool    *redis.Pool
	channel string
}

func newRedisPool(address string, db int, password string) *redis.Pool {
	return &redis.Pool{
		MaxIdle: 2,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", address, redis.DialDatabase(db), redis.DialPassword(password))
		},
	}
}

func (s *redisSink) Write(rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "marshal record")
	}
	conn := s.pool.Get()
	defer conn.Close()
	receivers, err := redis.Int(conn.Do("PUBLISH", s.channel, data))
	if err != nil {
		return errors.Wrapf(err, "publish on %v", s.channel)
	}
	log.Debug("published %v %v to %d receivers", rec.Type, rec.MMSI, receivers)
	return nil
}

type multiSink []Sink

func (m multiSink) Write(rec *Record) error {
	var first error
	for _, s := range m {
		if err := s.Write(rec); err != nil && first == nil {
			first = err
		}
	}
	return first
}
