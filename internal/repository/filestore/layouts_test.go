package filestore

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/kirinyoku/aerobook/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const a319CSV = `Row,Class,Seats
1,Business,ABC
2,Economy,ABCDEF
3,Economy,ABCDEF
`

func newLayoutFS(t *testing.T, fileName, content string) billy.Filesystem {
	t.Helper()

	fsys := memfs.New()
	writeTestFile(t, fsys, fsys.Join(seatingPlansFolder, fileName), content)

	return fsys
}

func TestPlanFileName(t *testing.T) {
	assert.Equal(t, "easyjet_a321_neo.csv", planFileName("EasyJet", "A321", "neo"))
	assert.Equal(t, "easyjet_a319.csv", planFileName("EasyJet", "A319", ""))
}

func TestLayoutSourceRead(t *testing.T) {
	src := NewLayoutSource(newLayoutFS(t, "easyjet_a319.csv", a319CSV))

	plan, err := src.Read("EasyJet", "A319", "")
	require.NoError(t, err)

	assert.Equal(t, "EasyJet", plan.Airline())
	assert.Equal(t, "A319", plan.Aircraft())
	assert.Empty(t, plan.Layout())
	assert.Equal(t, 15, plan.Capacity())

	rows := plan.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "Business", rows[0].Class)
	assert.Equal(t, "ABC", rows[0].Letters)
}

func TestLayoutSourceRead_WithLayoutName(t *testing.T) {
	src := NewLayoutSource(newLayoutFS(t, "easyjet_a319_2.csv", a319CSV))

	plan, err := src.Read("EasyJet", "A319", "2")
	require.NoError(t, err)

	assert.Equal(t, "2", plan.Layout())
}

func TestLayoutSourceRead_NotFound(t *testing.T) {
	src := NewLayoutSource(memfs.New())

	_, err := src.Read("EasyJet", "A319", "")

	var notFound PlanNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "A319", notFound.Aircraft)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLayoutSourceRead_HeaderOnly(t *testing.T) {
	src := NewLayoutSource(newLayoutFS(t, "easyjet_a319.csv", "Row,Class,Seats\n"))

	_, err := src.Read("EasyJet", "A319", "")
	assert.ErrorIs(t, err, repository.ErrMalformed)
}

func TestLayoutSourceRead_BadRowNumber(t *testing.T) {
	src := NewLayoutSource(newLayoutFS(t, "easyjet_a319.csv", "Row,Class,Seats\nten,Economy,ABCDEF\n"))

	_, err := src.Read("EasyJet", "A319", "")
	assert.ErrorIs(t, err, repository.ErrMalformed)
}

func TestLayoutSourceRead_DuplicateRow(t *testing.T) {
	src := NewLayoutSource(newLayoutFS(t, "easyjet_a319.csv",
		"Row,Class,Seats\n1,Economy,ABC\n1,Economy,DEF\n"))

	_, err := src.Read("EasyJet", "A319", "")
	assert.Error(t, err)
}
