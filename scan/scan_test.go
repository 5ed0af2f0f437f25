package scan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DMaendlen/netmeasure/common"

	"github.com/longbridgeapp/assert"
)

func touch(t *testing.T, path string) {
	t.Helper()
	assert.Nil(t, os.MkdirAll(filepath.Dir(path), 0755))
	assert.Nil(t, os.WriteFile(path, []byte("{}"), 0644))
}

func TestBatchesFiltersByPrefixAndType(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"2018-05-01_11-00", "2018-05-01_10-00", "2017-12-31_23-00", "scripts"} {
		assert.Nil(t, os.Mkdir(filepath.Join(root, d), 0755))
	}
	touch(t, filepath.Join(root, "2018-notes.txt"))

	dirs, err := Batches(root, "2018")
	assert.Nil(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "2018-05-01_10-00"),
		filepath.Join(root, "2018-05-01_11-00"),
	}, dirs)
}

func TestBatchesMissingWorkdir(t *testing.T) {
	_, err := Batches(filepath.Join(t.TempDir(), "nope"), "2018")
	assert.True(t, errors.Is(err, common.ErrWorkingDir))
}

func TestClassifySuffix(t *testing.T) {
	root := t.TempDir()
	batch := filepath.Join(root, "2018-05-01_10-00")
	touch(t, filepath.Join(batch, "srv1_upload"))
	touch(t, filepath.Join(batch, "srv2_upload"))
	touch(t, filepath.Join(batch, "srv1_download"))
	touch(t, filepath.Join(batch, "README"))
	assert.Nil(t, os.Mkdir(filepath.Join(batch, "old_download"), 0755))
	empty := filepath.Join(root, "2018-05-01_11-00")
	assert.Nil(t, os.Mkdir(empty, 0755))

	sets, err := Classify([]string{batch, empty}, common.ConventionSuffix)
	assert.Nil(t, err)
	assert.Equal(t, []string{
		filepath.Join(batch, "srv1_upload"),
		filepath.Join(batch, "srv2_upload"),
	}, sets[common.Upload][batch])
	assert.Equal(t, []string{filepath.Join(batch, "srv1_download")}, sets[common.Download][batch])
	assert.Equal(t, []string{}, sets[common.Upload][empty])
	assert.Equal(t, []string{}, sets[common.Download][empty])
}

func TestClassifyLogConvention(t *testing.T) {
	root := t.TempDir()
	batch := filepath.Join(root, "2018-05-01_10-00")
	touch(t, filepath.Join(batch, "srv1-upload.log"))
	touch(t, filepath.Join(batch, "srv1-download.log"))
	touch(t, filepath.Join(batch, "srv1_download"))

	sets, err := Discover(root, "2018", common.ConventionLog)
	assert.Nil(t, err)
	assert.Equal(t, []string{filepath.Join(batch, "srv1-upload.log")}, sets[common.Upload][batch])
	assert.Equal(t, []string{filepath.Join(batch, "srv1-download.log")}, sets[common.Download][batch])
}

func TestClassifyFileInAtMostOneDirection(t *testing.T) {
	root := t.TempDir()
	batch := filepath.Join(root, "2018-05-01_10-00")
	for _, n := range []string{"a_upload", "b_download", "upload_then_download", "download_then_upload"} {
		touch(t, filepath.Join(batch, n))
	}

	sets, err := Classify([]string{batch}, common.ConventionSuffix)
	assert.Nil(t, err)
	seen := map[string]int{}
	for _, d := range common.Directions {
		for _, f := range sets[d][batch] {
			seen[f]++
		}
	}
	assert.Equal(t, 4, len(seen))
	for f, n := range seen {
		if n != 1 {
			t.Fatalf("%s classified %d times", f, n)
		}
	}
}
