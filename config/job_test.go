package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJob = `
customer: ahmet yılmaz
params:
  length: 420
  spacing: 3.5
  height: "1,8"
  mesh-eye:
prices:
  direk: 150
  gergi: "59,90"
`

func TestParseJob(t *testing.T) {
	job, err := ParseJob([]byte(sampleJob))
	require.NoError(t, err)

	assert.Equal(t, "ahmet yılmaz", job.Customer)
	assert.Equal(t, map[string]string{
		"length":   "420",
		"spacing":  "3.5",
		"height":   "1,8",
		"mesh-eye": "",
	}, job.Params)
	assert.Equal(t, map[string]string{
		"direk": "150",
		"gergi": "59,90",
	}, job.Prices)
}

func TestParseJob_Invalid(t *testing.T) {
	_, err := ParseJob([]byte("params: [1, 2"))
	assert.Error(t, err)

	_, err = ParseJob([]byte("params:\n  length: [1, 2]\n"))
	assert.Error(t, err)
}

func TestLoadJob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleJob), 0o644))

	job, err := LoadJob(path)
	require.NoError(t, err)
	assert.Equal(t, "420", job.Params["length"])

	_, err = LoadJob(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
