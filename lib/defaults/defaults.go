// Package defaults holds some commonly used options parsed from env var "driverget".
// Set them will set the default value of options used by driverget.
// Each value is separated by a ",", key and value are separated by "=",
// For example:
//
//    driverget=quiet
//
//    driverget=quiet,host=http://localhost:7317,bin=/usr/bin/google-chrome
//
package defaults

import (
	"os"
	"strings"
)

// Quiet silences the download progress log
var Quiet bool

// Host is the default of driverget.Updater.Host
var Host string

// Bin is the default of driverget.Updater.BrowserPath
var Bin string

// Dir is the default of driverget.Updater.Dir
var Dir string

// Parse the flags
func init() {
	ResetWithEnv()
}

// Reset all flags to their init values.
func Reset() {
	Quiet = false
	Host = ""
	Bin = ""
	Dir = ""
}

// ResetWithEnv all flags by the value of the driverget env var.
func ResetWithEnv() {
	Reset()
	parse(os.Getenv("driverget"))
}

// parse options and set them globally
func parse(options string) {
	if options == "" {
		return
	}

	for _, f := range strings.Split(options, ",") {
		kv := strings.Split(f, "=")
		v := ""
		if len(kv) == 2 {
			v = kv[1]
		}

		rule, has := rules[kv[0]]
		if !has {
			panic("no such driverget option: " + kv[0])
		}
		rule(v)
	}
}

var rules = map[string]func(string){
	"quiet": func(string) {
		Quiet = true
	},
	"host": func(v string) {
		Host = v
	},
	"bin": func(v string) {
		Bin = v
	},
	"dir": func(v string) {
		Dir = v
	},
}
