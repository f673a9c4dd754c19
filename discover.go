package driverget

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/driverget/driverget/lib/platform"
	"github.com/driverget/driverget/lib/utils"
	"github.com/driverget/driverget/lib/version"
	"github.com/ysmood/lookpath"
)

// Chrome.exe ignores the arguments passed on the command line, so on
// windows the version has to be read from the file metadata through wmic:
// https://stackoverflow.com/questions/50880917/how-to-get-chrome-version-using-command-prompt-in-windows
const wmicPath = `C:\Windows\System32\wbem\WMIC.exe`

// BrowserVersion reads the version of the browser at BrowserPath
func (u *Updater) BrowserVersion() (version.Version, error) {
	bin, err := u.browserBin()
	if err != nil {
		return version.Version{}, err
	}

	if u.Platform == platform.Windows {
		out, err := u.run(wmicPath,
			"datafile", "where", fmt.Sprintf("name=%q", bin),
			"get", "Version", "/value",
		)
		if err != nil {
			return version.Version{}, err
		}

		v, _, err := version.ParseWmic(out)
		if err != nil {
			return version.Version{}, &Error{Err: err, Code: ErrParseVersion, Details: out}
		}
		return v, nil
	}

	out, err := u.run(bin, "--version")
	if err != nil {
		return version.Version{}, err
	}

	v, _, err := version.ParseWith(out, "Google Chrome")
	if err != nil {
		return version.Version{}, &Error{Err: err, Code: ErrParseVersion, Details: out}
	}
	return v, nil
}

// DriverVersion reads the version of the chromedriver inside Dir.
// A missing driver is not an error, it reports a nil version.
func (u *Updater) DriverVersion() (*version.Version, error) {
	bin := filepath.Join(u.Dir, u.Platform.DriverName())

	if !utils.FileExists(bin) {
		return nil, nil
	}

	out, err := u.run(bin, "--version")
	if err != nil {
		return nil, err
	}

	v, _, err := version.ParseWith(out, "ChromeDriver")
	if err != nil {
		return nil, &Error{Err: err, Code: ErrParseVersion, Details: out}
	}
	return &v, nil
}

func (u *Updater) browserBin() (string, error) {
	if u.BrowserPath != "" {
		if !utils.FileExists(u.BrowserPath) {
			return "", &Error{Code: ErrBinaryNotFound, Details: u.BrowserPath}
		}
		return u.BrowserPath, nil
	}

	for _, bin := range browserSearchMap[runtime.GOOS] {
		found, err := lookpath.LookPath(os.Getenv("PATH"), bin)
		if err == nil {
			return found, nil
		}
	}

	return "", &Error{Code: ErrBinaryNotFound, Details: "no browser found in the usual places"}
}

func (u *Updater) run(bin string, args ...string) (string, error) {
	out, err := u.Runner.Run(bin, args...)
	if err != nil {
		return "", &Error{Err: err, Code: ErrRunBinary, Details: bin}
	}
	return out, nil
}

var browserSearchMap = map[string][]string{
	"darwin": {
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		"/Applications/Chromium.app/Contents/MacOS/Chromium",
	},
	"linux": {
		"chromium",
		"chromium-browser",
		"google-chrome",
		"/usr/bin/google-chrome",
	},
	"windows": append([]string{"chrome"}, expandWindowsExePaths(
		`Google\Chrome\Application\chrome.exe`,
	)...),
}

func expandWindowsExePaths(list ...string) []string {
	newList := []string{}
	for _, p := range list {
		newList = append(
			newList,
			filepath.Join(os.Getenv("ProgramFiles"), p),
			filepath.Join(os.Getenv("ProgramFiles(x86)"), p),
			filepath.Join(os.Getenv("LocalAppData"), p),
		)
	}

	return newList
}
