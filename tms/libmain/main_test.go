package libmain

import (
	"errors"
	"log/syslog"
	"os"
	"strings"
	"testing"

	"aisproto/gogroup"
	"aisproto/tms/log"

	"github.com/stretchr/testify/assert"
)

func TestNewGroupLogsErrors(t *testing.T) {
	var out strings.Builder
	log.SetDefault(log.New(syslog.LOG_DEBUG).AddWriter(&out))
	defer log.SetDefault(nil)

	g := NewGroup("worker")
	g.Go(func(gogroup.GoGroup) error { return errors.New("lost connection") })
	g.Wait()
	g2 := NewGroup("crasher")
	g2.Run(func(gogroup.GoGroup) error { panic("bad state") })

	assert.Contains(t, out.String(), "Error in worker goroutine: lost connection")
	assert.Contains(t, out.String(), "Panic in crasher goroutine: bad state")
}

func TestEnvDevelopment(t *testing.T) {
	defer os.Unsetenv("AIS_ENV")
	os.Setenv("AIS_ENV", "development")
	assert.True(t, EnvDevelopment())
	os.Setenv("AIS_ENV", "production")
	assert.False(t, EnvDevelopment())
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "AIS taisdecode version: dev build date unknown", VersionString("taisdecode"))
}
