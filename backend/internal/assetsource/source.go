package assetsource

import (
	"github.com/rwcarlsen/goexif/exif"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"vincit.fi/asset-viewer/api/apitype"
	"vincit.fi/asset-viewer/common/logger"
)

type CreatedTimeReader func(path string, info os.FileInfo) time.Time

type Source struct {
	rootDir     string
	readCreated CreatedTimeReader
}

func NewSource(rootDir string) *Source {
	return &Source{
		rootDir:     rootDir,
		readCreated: readCreatedTime,
	}
}

// ScanAlbums returns one album per sub directory of the root plus the
// Recents album with every asset. Files directly in the root only
// appear in Recents. Hidden files and directories are skipped.
func (s *Source) ScanAlbums() ([]*apitype.Album, error) {
	entries, err := os.ReadDir(s.rootDir)
	if err != nil {
		return nil, err
	}

	logger.Debug.Printf("Scanning directory '%s'", s.rootDir)
	var all []*apitype.Asset
	var albums []*apitype.Album
	for _, entry := range entries {
		if isHidden(entry.Name()) {
			continue
		}
		if entry.IsDir() {
			assets, err := s.scanDirectory(entry.Name())
			if err != nil {
				return nil, err
			}
			if len(assets) > 0 {
				albums = append(albums, apitype.NewAlbum(entry.Name(), assets))
				all = append(all, assets...)
			}
		} else if asset := s.toAsset("", entry); asset != nil {
			all = append(all, asset)
		}
	}

	recents := make([]*apitype.Asset, len(all))
	copy(recents, all)
	sort.SliceStable(recents, func(i, j int) bool {
		return recents[i].Created().After(recents[j].Created())
	})

	logger.Debug.Printf("Found %d assets in %d albums", len(all), len(albums))
	return append([]*apitype.Album{apitype.NewAlbum(apitype.RecentsAlbum, recents)}, albums...), nil
}

func (s *Source) scanDirectory(folderName string) ([]*apitype.Asset, error) {
	entries, err := os.ReadDir(filepath.Join(s.rootDir, folderName))
	if err != nil {
		return nil, err
	}

	var assets []*apitype.Asset
	for _, entry := range entries {
		if entry.IsDir() || isHidden(entry.Name()) {
			continue
		}
		if asset := s.toAsset(folderName, entry); asset != nil {
			assets = append(assets, asset)
		}
	}
	return assets, nil
}

func (s *Source) toAsset(folderName string, entry os.DirEntry) *apitype.Asset {
	info, err := entry.Info()
	if err != nil {
		logger.Warn.Printf("Could not stat '%s': %s", entry.Name(), err)
		return nil
	}

	relativePath := filepath.ToSlash(filepath.Join(folderName, entry.Name()))
	path := filepath.Join(s.rootDir, folderName, entry.Name())
	return apitype.NewAssetWithDetails(
		apitype.AssetId(relativePath),
		apitype.AssetTypeForFile(entry.Name()),
		entry.Name(),
		0,
		s.readCreated(path, info),
		path,
	)
}

func readCreatedTime(path string, info os.FileInfo) time.Time {
	extension := strings.ToLower(filepath.Ext(path))
	if extension != ".jpg" && extension != ".jpeg" {
		return info.ModTime()
	}

	file, err := os.Open(path)
	if err != nil {
		return info.ModTime()
	}
	defer file.Close()

	decodedExif, err := exif.Decode(file)
	if err != nil {
		logger.Trace.Printf("No Exif data in '%s': %s", path, err)
		return info.ModTime()
	}
	created, err := decodedExif.DateTime()
	if err != nil {
		return info.ModTime()
	}
	return created
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
