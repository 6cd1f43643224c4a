package libmain

import "fmt"

// Set at link time with -ldflags "-X aisproto/tms/libmain.VersionNumber=..."
var (
	VersionNumber = "dev"
	VersionDate   = "unknown"
)

func VersionString(exe string) string {
	return fmt.Sprintf("AIS %v version: %v build date %v", exe, VersionNumber, VersionDate)
}
