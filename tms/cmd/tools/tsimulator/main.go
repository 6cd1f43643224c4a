// tsimulator moves simulated vessels and streams their AIS sentences to TCP
// clients.
package main

import (
	"flag"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/net/netutil"

	"aisproto/gogroup"
	"aisproto/tms/cmd/tools/tsimulator/object"
	"aisproto/tms/cmd/tools/tsimulator/web"
	"aisproto/tms/libmain"
	"aisproto/tms/log"
)

const defaultStaticEvery = 30

var (
	scenarioFile = flag.String("scenario", "scenario.json", "A file which contains stations and vessels")
	addr         = flag.String("addr", ":10110", "An address for clients reading the NMEA stream")
	webAddr      = flag.String("webaddr", ":8089", "An address for listening to connections of REST requests")
	period       = flag.Duration("period", 2*time.Second, "How often vessels move and report")
	maxClients   = flag.Int("maxclients", 0, "Limit of simultaneous stream clients, 0 means no limit")
)

func main() {
	libmain.Main(run)
}

func run(ctxt gogroup.GoGroup) error {
	sc, err := loadScenario(*scenarioFile)
	if err != nil {
		return err
	}
	control, err := object.NewControl(sc.Stations, sc.Vessels, nil)
	if err != nil {
		return errors.Wrap(err, "bad scenario")
	}
	every := *period
	if sc.PeriodSeconds != 0 {
		every = time.Duration(sc.PeriodSeconds) * time.Second
	}

	listener, err := net.Listen("tcp", *addr)
	if err != nil {
		return errors.Wrap(err, "error listen to port")
	}
	if *maxClients > 0 {
		listener = netutil.LimitListener(listener, *maxClients)
	}
	b := NewBroadcaster()
	defer b.Close()

	sim := ctxt.Child("simulator")
	router := web.NewRouter(control)
	router.Handle("/stream", &streamHandler{ctxt: sim, b: b})
	srv := &http.Server{
		Addr:        *webAddr,
		Handler:     router,
		ReadTimeout: 30 * time.Second,
	}

	sim.GoRestart(acceptRetry, func(g gogroup.GoGroup) error {
		return listenClients(g, listener, b)
	})
	sim.Go(func(g gogroup.GoGroup) error {
		return lifeCycle(g, control, b, every, sc.StaticEvery)
	})
	sim.Go(func(g gogroup.GoGroup) error {
		go func() {
			<-g.Done()
			srv.Close()
		}()
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	log.Info("simulating %d vessels on %v, api on %v", len(sc.Vessels), *addr, *webAddr)
	sim.Wait()
	return nil
}
