// Package libmain provides common main function which does extra work
package libmain

import (
	"flag"
	"fmt"
	golog "log"
	"log/syslog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"path"
	"runtime"
	"sync/atomic"

	"aisproto/gogroup"
	"aisproto/tms/log"

	"github.com/kardianos/osext"
)

var (
	// Background routines which much exit before we exit
	Background gogroup.GoGroup

	ProfilePort  string
	PrintVersion bool

	failures int32
)

func init() {
	flag.StringVar(&ProfilePort, "profile", "", "Profile and listen on this port e.g. localhost:6060")
	flag.BoolVar(&PrintVersion, "version", false, "Print version then exit")
}

// Main parses flags, sets up logging and runs realMain in the background
// group. It returns once every routine of the group has exited.
func Main(realMain func(gogroup.GoGroup) error) {
	flag.Parse()
	log.RegisterTracers()

	exe, err := osext.Executable()
	if err != nil {
		golog.Fatalf("Cannot find executable: %v", err)
	}
	name := path.Base(exe)

	if PrintVersion {
		fmt.Println(VersionString(name))
		os.Exit(0)
	}

	runtime.SetBlockProfileRate(0)
	runtime.SetCPUProfileRate(0)
	if ProfilePort != "" {
		runtime.SetBlockProfileRate(10)
		runtime.SetCPUProfileRate(1000)
		go func() { golog.Println(http.ListenAndServe(ProfilePort, nil)) }()
	}

	log.Init(name)
	golog.SetFlags(0)
	golog.SetOutput(log.NewSyslogWriter(syslog.LOG_INFO))

	Background = NewGroup("background")

	sigch := make(chan os.Signal, 2)
	signal.Notify(sigch, os.Interrupt)

	go func() {
		<-sigch
		log.Info("Got SIGINT, cancelling main context")
		if EnvDevelopment() {
			log.Info("AIS_ENV=development, killing program")
			os.Exit(1)
		}
		Background.Cancel(nil)

		<-sigch
		log.Info("Got second SIGINT, killing program")
		os.Exit(1)
	}()

	Background.Go(realMain)

	Background.Wait()
	Background.Cancel(nil)
	if atomic.LoadInt32(&failures) > 0 {
		os.Exit(1)
	}
}

// NewGroup returns a group whose errors are logged as they happen.
func NewGroup(name string) gogroup.GoGroup {
	g := gogroup.New(nil, name)
	g.ErrCallback(func(err error) {
		atomic.AddInt32(&failures, 1)
		if pe, ok := err.(gogroup.PanicError); ok {
			log.Error("Panic in %v goroutine: %v\n%v", name, pe.Msg, pe.Stack)
		} else {
			log.Error("Error in %v goroutine: %v", name, err)
		}
	})
	return g
}

func EnvDevelopment() bool {
	switch os.Getenv("AIS_ENV") {
	case "development":
		return true
	}
	return false
}
