package filestore

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const airportCodesJSON = `{
   "airport_codes": {
      "LGW": {"name": "London Gatwick", "tz": "Europe/London"},
      "RMU": {"name": "Region de Murcia International", "tz": "Europe/Madrid"}
   }
}`

// newTestFS builds an in-memory data filesystem with the airport lookup
// in place.
func newTestFS(t *testing.T) billy.Filesystem {
	t.Helper()

	fsys := memfs.New()
	writeTestFile(t, fsys, fsys.Join(lookupsFolder, airportCodesFile), airportCodesJSON)

	return fsys
}

func writeTestFile(t *testing.T, fsys billy.Filesystem, path, content string) {
	t.Helper()
	require.NoError(t, util.WriteFile(fsys, path, []byte(content), 0o644))
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "easyjet_a321_neo", sanitizeName("EasyJet", "A321", "neo"))
	assert.Equal(t, "u2_8549_20211120", sanitizeName("U2-8549", "20211120"))
	assert.Equal(t, "ba117_28a", sanitizeName("BA117", "28A"))
}
