// Package platform enumerates the operating systems chromedriver is
// released for.
package platform

import "runtime"

// Platform is one of the supported operating systems. The zero value is
// not valid, always obtain one from Detect or the constants.
type Platform int

// The supported platforms
const (
	Windows Platform = iota + 1
	MacOS
	Linux
)

var goosMap = map[string]Platform{
	"windows": Windows,
	"darwin":  MacOS,
	"linux":   Linux,
}

// Detect the platform of the current process. It should be called once at
// startup, the result never changes for the process lifetime.
func Detect() Platform {
	p, has := goosMap[runtime.GOOS]
	if !has {
		panic("unsupported platform: " + runtime.GOOS)
	}
	return p
}

// Key identifies the platform in chromedriver download urls
func (p Platform) Key() string {
	return map[Platform]string{
		Windows: "win32",
		MacOS:   "mac64",
		Linux:   "linux64",
	}[p]
}

// DriverName is the file name of the chromedriver executable
func (p Platform) DriverName() string {
	if p == Windows {
		return "chromedriver.exe"
	}
	return "chromedriver"
}

func (p Platform) String() string {
	return map[Platform]string{
		Windows: "windows",
		MacOS:   "macos",
		Linux:   "linux",
	}[p]
}
