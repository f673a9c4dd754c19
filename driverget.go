// Package driverget resolves and installs the chromedriver release matching
// a locally installed Chrome. It follows the official version selection
// algorithm: https://chromedriver.chromium.org/downloads/version-selection
package driverget

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/driverget/driverget/lib/defaults"
	"github.com/driverget/driverget/lib/platform"
	"github.com/driverget/driverget/lib/proc"
	"github.com/driverget/driverget/lib/utils"
	"github.com/driverget/driverget/lib/version"
	"github.com/mholt/archiver"
)

// HostGoogle is the default host of the chromedriver releases
const HostGoogle = "https://chromedriver.storage.googleapis.com"

// Updater resolves the chromedriver release required by the local browser
// and installs it into Dir. Every step is synchronous, each one feeds the
// next, nothing is retried.
type Updater struct {
	Context context.Context

	// Host of the release endpoints, example urls:
	// https://chromedriver.storage.googleapis.com/LATEST_RELEASE_91.0.4472
	// https://chromedriver.storage.googleapis.com/91.0.4472.101/chromedriver_linux64.zip
	Host string

	// BrowserPath is the location of the browser executable. When empty the
	// usual install locations of the platform are searched.
	BrowserPath string

	// Dir is where the chromedriver executable is extracted to
	Dir string

	// Platform is detected once at startup and never re-derived
	Platform platform.Platform

	// Logger to print download progress
	Logger utils.Logger

	// Runner runs the browser and driver executables to read their versions
	Runner proc.Runner
}

// New Updater with default values. Defaults can be overridden with the
// "driverget" env var, see lib/defaults.
func New(browserPath, dir string) *Updater {
	host := HostGoogle
	if defaults.Host != "" {
		host = defaults.Host
	}
	if browserPath == "" {
		browserPath = defaults.Bin
	}
	if dir == "" {
		dir = defaults.Dir
	}

	logger := utils.DefaultLogger
	if defaults.Quiet {
		logger = utils.LoggerQuiet
	}

	return &Updater{
		Context:     context.Background(),
		Host:        host,
		BrowserPath: browserPath,
		Dir:         dir,
		Platform:    platform.Detect(),
		Logger:      logger,
		Runner:      proc.NewRunner(),
	}
}

// MustUpdate reports whether the installed driver has to be replaced by the
// required one. A nil current means no driver is installed yet. Each of the
// four components is compared on its own: a driver that is behind in any one
// of them is replaced, even when the other components are ahead.
func MustUpdate(current *version.Version, required version.Version) bool {
	if current == nil {
		return true
	}

	return current.Major < required.Major ||
		current.Minor < required.Minor ||
		current.Build < required.Build ||
		current.Patch < required.Patch
}

// RequiredVersion asks the release endpoint which chromedriver release
// matches the browser. Releases are indexed by major.minor.build only, the
// patch plays no role in the lookup.
func (u *Updater) RequiredVersion(browser version.Version) (version.Version, error) {
	url := fmt.Sprintf("%s/LATEST_RELEASE_%d.%d.%d", u.Host, browser.Major, browser.Minor, browser.Build)

	res, err := u.get(url)
	if err != nil {
		return version.Version{}, &Error{Err: err, Code: ErrRequest, Details: url}
	}
	defer func() { _ = res.Body.Close() }()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return version.Version{}, &Error{Err: err, Code: ErrRequest, Details: url}
	}

	v, _, err := version.Parse(string(body))
	if err != nil {
		return version.Version{}, &Error{Err: err, Code: ErrParseVersion, Details: string(body)}
	}

	return v, nil
}

// DownloadURL of the chromedriver archive for the required version
func (u *Updater) DownloadURL(required version.Version) string {
	return fmt.Sprintf("%s/%s/chromedriver_%s.zip", u.Host, required, u.Platform.Key())
}

// Download the archive of the required version and extract the driver
// executable into Dir.
func (u *Updater) Download(required version.Version) error {
	url := u.DownloadURL(required)

	u.Logger.Println("[driverget] Download:", url)

	err := utils.Mkdir(u.Dir)
	if err != nil {
		return &Error{Err: err, Code: ErrDownload, Details: u.Dir}
	}

	zipPath := filepath.Join(u.Dir, fmt.Sprintf("chromedriver_%s.zip", required))

	zipFile, err := os.OpenFile(zipPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.ModePerm)
	if err != nil {
		return &Error{Err: err, Code: ErrDownload, Details: zipPath}
	}

	res, err := u.get(url)
	if err != nil {
		_ = zipFile.Close()
		return &Error{Err: err, Code: ErrRequest, Details: url}
	}
	defer func() { _ = res.Body.Close() }()

	size, _ := strconv.Atoi(res.Header.Get("Content-Length"))
	progress := &progresser{size: size, logger: u.Logger}

	_, err = io.Copy(io.MultiWriter(zipFile, progress), res.Body)
	if err != nil {
		_ = zipFile.Close()
		return &Error{Err: err, Code: ErrDownload, Details: url}
	}

	err = zipFile.Close()
	if err != nil {
		return &Error{Err: err, Code: ErrDownload, Details: zipPath}
	}

	u.Logger.Println("[driverget] Downloaded:", zipPath)

	err = archiver.Unarchive(zipPath, u.Dir)
	if err != nil {
		return &Error{Err: err, Code: ErrExtract, Details: zipPath}
	}

	return os.Remove(zipPath)
}

func (u *Updater) get(url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(u.Context, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := (&http.Client{
		Transport: &http.Transport{
			DisableKeepAlives: true,
			IdleConnTimeout:   30 * time.Second,
		},
	}).Do(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode >= 400 {
		_ = res.Body.Close()
		return nil, fmt.Errorf("server responded with %s", res.Status)
	}

	return res, nil
}

type progresser struct {
	size   int
	count  int
	logger utils.Logger
	last   time.Time
}

func (p *progresser) Write(b []byte) (n int, err error) {
	n = len(b)

	if p.size == 0 {
		return
	}

	if p.count == 0 {
		p.logger.Println("[driverget] Progress:")
	}

	p.count += n

	if p.count == p.size {
		p.logger.Println("100%")
		return
	}

	if time.Since(p.last) < time.Second {
		return
	}

	p.last = time.Now()
	p.logger.Println(fmt.Sprintf("%02d%%", p.count*100/p.size))

	return
}
