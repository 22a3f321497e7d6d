package filestore

import (
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardFileName(t *testing.T) {
	departs := time.Date(2021, 11, 20, 10, 45, 0, 0, time.UTC)
	assert.Equal(t, "u28549_5d_20211120.html", cardFileName("U28549", "5D", departs, "html"))
}

func TestCardWriterWrite(t *testing.T) {
	fsys := memfs.New()
	w := NewCardWriter(fsys)
	departs := time.Date(2021, 11, 20, 10, 45, 0, 0, time.UTC)

	require.NoError(t, w.Write("U28549", "5D", departs, "txt", []byte("card content")))

	data, err := util.ReadFile(fsys, fsys.Join(boardingCardsFolder, "u28549_5d_20211120.txt"))
	require.NoError(t, err)
	assert.Equal(t, "card content", string(data))
}

func TestCardWriterWrite_ReplacesPreviousFile(t *testing.T) {
	fsys := memfs.New()
	w := NewCardWriter(fsys)
	departs := time.Date(2021, 11, 20, 10, 45, 0, 0, time.UTC)

	require.NoError(t, w.Write("U28549", "5D", departs, "txt", []byte("old")))
	require.NoError(t, w.Write("U28549", "5D", departs, "txt", []byte("new")))

	data, err := util.ReadFile(fsys, fsys.Join(boardingCardsFolder, "u28549_5d_20211120.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
