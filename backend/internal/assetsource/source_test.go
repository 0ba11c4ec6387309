package assetsource

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
	"vincit.fi/asset-viewer/api/apitype"
)

func writeFile(t *testing.T, path string, modTime time.Time) {
	require.Nil(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.Nil(t, os.WriteFile(path, []byte("not really media"), 0644))
	require.Nil(t, os.Chtimes(path, modTime, modTime))
}

func albumByName(albums []*apitype.Album, name string) *apitype.Album {
	for _, album := range albums {
		if album.FolderName() == name {
			return album
		}
	}
	return nil
}

func TestSource_ScanAlbums(t *testing.T) {
	a := assert.New(t)
	root := t.TempDir()
	base := time.Date(2022, 5, 1, 12, 0, 0, 0, time.UTC)

	writeFile(t, filepath.Join(root, "Camera", "one.jpg"), base)
	writeFile(t, filepath.Join(root, "Camera", "two.mp4"), base.Add(2*time.Hour))
	writeFile(t, filepath.Join(root, "Voice", "memo.m4a"), base.Add(time.Hour))
	writeFile(t, filepath.Join(root, "loose.png"), base.Add(3*time.Hour))
	writeFile(t, filepath.Join(root, ".hidden", "secret.jpg"), base)
	writeFile(t, filepath.Join(root, "Camera", ".thumbs"), base)
	require.Nil(t, os.MkdirAll(filepath.Join(root, "Empty"), 0755))

	albums, err := NewSource(root).ScanAlbums()
	require.Nil(t, err)

	t.Run("Albums", func(t *testing.T) {
		a.Equal(3, len(albums))
		a.Equal(apitype.RecentsAlbum, albums[0].FolderName())
		a.NotNil(albumByName(albums, "Camera"))
		a.NotNil(albumByName(albums, "Voice"))
		a.Nil(albumByName(albums, "Empty"))
		a.Nil(albumByName(albums, ".hidden"))
	})

	t.Run("Album content", func(t *testing.T) {
		camera := albumByName(albums, "Camera")
		a.Equal(2, camera.Count())
		a.Equal(apitype.AssetId("Camera/one.jpg"), camera.Assets()[0].Id())
		a.Equal(apitype.AssetImage, camera.Assets()[0].Type())
		a.Equal(apitype.AssetVideo, camera.Assets()[1].Type())
		a.Equal(filepath.Join(root, "Camera", "two.mp4"), camera.Assets()[1].Path())
	})

	t.Run("Recents newest first", func(t *testing.T) {
		recents := albums[0].Assets()
		a.Equal(4, len(recents))
		a.Equal(apitype.AssetId("loose.png"), recents[0].Id())
		a.Equal(apitype.AssetId("Camera/two.mp4"), recents[1].Id())
		a.Equal(apitype.AssetId("Voice/memo.m4a"), recents[2].Id())
		a.Equal(apitype.AssetId("Camera/one.jpg"), recents[3].Id())
	})

	t.Run("Jpeg without exif falls back to mod time", func(t *testing.T) {
		camera := albumByName(albums, "Camera")
		a.True(base.Equal(camera.Assets()[0].Created()))
	})
}

func TestSource_ScanAlbums_MissingRoot(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "missing")).ScanAlbums()

	assert.NotNil(t, err)
}

func TestSource_CreatedTimeReader(t *testing.T) {
	a := assert.New(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Camera", "a.jpg"), time.Now())
	fixed := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	sut := NewSource(root)
	sut.readCreated = func(path string, info os.FileInfo) time.Time {
		return fixed
	}
	albums, err := sut.ScanAlbums()

	a.Nil(err)
	a.Equal(fixed, albums[0].Assets()[0].Created())
}
