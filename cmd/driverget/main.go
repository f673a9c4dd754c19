// Installs the chromedriver matching the version of the local Chrome,
// following https://chromedriver.chromium.org/downloads/version-selection
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/driverget/driverget"
	"github.com/driverget/driverget/lib/utils"
)

var quiet = flag.Bool("quiet", false, "silence the download progress log")

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: driverget [options] <chrome-path> <output-dir>")
		fmt.Fprintln(flag.CommandLine.Output(), "Options:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	u := driverget.New(flag.Arg(0), flag.Arg(1))
	if *quiet {
		u.Logger = utils.LoggerQuiet
	}

	browser, err := u.BrowserVersion()
	exitOn(err)

	required, err := u.RequiredVersion(browser)
	exitOn(err)

	current, err := u.DriverVersion()
	exitOn(err)

	need := driverget.MustUpdate(current, required)

	fmt.Println("Required version:", required)
	if current == nil {
		fmt.Println("Current version: None")
	} else {
		fmt.Println("Current version:", *current)
	}
	fmt.Println("Require update:", need)

	if need {
		fmt.Println("Download:", u.DownloadURL(required))
		exitOn(u.Download(required))
	}
}

func exitOn(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
