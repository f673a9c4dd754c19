package version_test

import (
	"testing"

	"github.com/driverget/driverget/lib/version"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "89.0.4389.23", version.New(89, 0, 4389, 23).String())
	assert.Equal(t, "0.0.0.0", version.Version{}.String())
}

func TestParseRoundTrip(t *testing.T) {
	for _, v := range []version.Version{
		version.New(89, 0, 4389, 23),
		version.New(109, 0, 5414, 87),
		version.New(0, 0, 0, 0),
		version.New(100, 1, 2, 3),
	} {
		parsed, rest, err := version.Parse(v.String())
		assert.Nil(t, err)
		assert.Equal(t, "", rest)
		assert.Equal(t, v, parsed)
	}
}

func TestParseLeftover(t *testing.T) {
	v, rest, err := version.Parse("91.0.4472.101\n")
	assert.Nil(t, err)
	assert.Equal(t, version.New(91, 0, 4472, 101), v)
	assert.Equal(t, "\n", rest)
}

func TestParseErr(t *testing.T) {
	for _, s := range []string{"", "89", "89.0", "89.0.4389", "89.0.4389.", "a.b.c.d", "-1.0.0.0"} {
		_, _, err := version.Parse(s)
		assert.Error(t, err)
	}

	_, _, err := version.Parse("89..4389.23")
	assert.IsType(t, &version.ParseError{}, err)
	assert.Contains(t, err.Error(), "decimal digits")
	assert.Contains(t, err.Error(), ".4389.23")
}

func TestParseWith(t *testing.T) {
	v, rest, err := version.ParseWith(
		"ChromeDriver 89.0.4389.23 (61b08ee2c50024bab004e48d2b1b083cdbdac579-refs/branch-heads/4389@{#294})",
		"ChromeDriver",
	)
	assert.Nil(t, err)
	assert.Equal(t, version.New(89, 0, 4389, 23), v)
	assert.Equal(t, " (61b08ee2c50024bab004e48d2b1b083cdbdac579-refs/branch-heads/4389@{#294})", rest)

	v, _, err = version.ParseWith("Google Chrome 109.0.5414.87", "Google Chrome")
	assert.Nil(t, err)
	assert.Equal(t, version.New(109, 0, 5414, 87), v)
}

func TestParseWithErr(t *testing.T) {
	_, _, err := version.ParseWith("Chromium 89.0.4389.23", "Google Chrome")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"Google Chrome"`)
	assert.Contains(t, err.Error(), "Chromium")

	// a matched label must not rescue a broken number
	_, _, err = version.ParseWith("ChromeDriver oops", "ChromeDriver")
	assert.Error(t, err)
}

func TestParseWmic(t *testing.T) {
	v, rest, err := version.ParseWmic("\r\r\n\r\r\nVersion=103.0.5060.114\r\r\n\r\r\n\r\r\n")
	assert.Nil(t, err)
	assert.Equal(t, version.New(103, 0, 5060, 114), v)
	assert.Equal(t, "\r\r\n\r\r\n\r\r\n", rest)
}

func TestParseWmicErr(t *testing.T) {
	// single \r\n pairs are not what WMIC emits, reject them
	_, _, err := version.ParseWmic("\r\n\r\nVersion=103.0.5060.114")
	assert.Error(t, err)

	_, _, err = version.ParseWmic("Version=103.0.5060.114")
	assert.Error(t, err)
}
