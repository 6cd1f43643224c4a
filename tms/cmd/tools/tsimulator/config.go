package main

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"aisproto/tms/cmd/tools/tsimulator/object"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Scenario is the content of a scenario file.
type Scenario struct {
	// Seconds between two position broadcasts, 0 keeps the -period flag
	PeriodSeconds uint32 `json:"period_seconds"`
	// Static data goes out every StaticEvery position broadcasts
	StaticEvery uint32           `json:"static_every"`
	Stations    []object.Station `json:"stations"`
	Vessels     []object.Vessel  `json:"vessels"`
}

func loadScenario(configFile string) (*Scenario, error) {
	f, err := os.Open(configFile)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open a scenario")
	}
	defer f.Close()
	sc := &Scenario{}
	if err = json.NewDecoder(f).Decode(sc); err != nil {
		return nil, errors.Wrapf(err, "unable to parse %v", configFile)
	}
	if sc.StaticEvery == 0 {
		sc.StaticEvery = defaultStaticEvery
	}
	return sc, nil
}
