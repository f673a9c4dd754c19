package utils_test

import (
	"errors"
	"io/ioutil"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/driverget/driverget/lib/utils"
	"github.com/stretchr/testify/assert"
)

func TestE(t *testing.T) {
	utils.E(nil)

	assert.Panics(t, func() {
		utils.E(errors.New("err"))
	})
}

func TestLog(t *testing.T) {
	utils.Log(func(msg ...interface{}) {}).Println()
	utils.LoggerQuiet.Println()
}

func TestMkdir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "b")
	assert.Nil(t, utils.Mkdir(p))

	list, err := ioutil.ReadDir(filepath.Dir(p))
	assert.Nil(t, err)
	assert.Len(t, list, 1)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, utils.FileExists(dir))
	assert.False(t, utils.FileExists(filepath.Join(dir, "not-exists")))

	p := filepath.Join(dir, "f")
	utils.E(ioutil.WriteFile(p, []byte("ok"), 0664))
	assert.True(t, utils.FileExists(p))
}

func TestServe(t *testing.T) {
	url, mux, close := utils.Serve("")
	defer close()

	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		utils.E(w.Write([]byte("ok")))
	})
	mux.HandleFunc("/err", func(w http.ResponseWriter, r *http.Request) {
		panic("oops")
	})

	res, err := http.Get(url + "/ok")
	assert.Nil(t, err)
	b, _ := ioutil.ReadAll(res.Body)
	utils.E(res.Body.Close())
	assert.Equal(t, "ok", string(b))

	res, err = http.Get(url + "/err")
	assert.Nil(t, err)
	utils.E(res.Body.Close())
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
