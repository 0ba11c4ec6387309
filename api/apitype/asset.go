package apitype

import (
	"path/filepath"
	"strings"
	"time"
)

type AssetId string

const NoAsset = AssetId("")

type AssetType int

const (
	AssetOther AssetType = iota
	AssetImage
	AssetVideo
	AssetAudio
)

func (s AssetType) String() string {
	switch s {
	case AssetImage:
		return "image"
	case AssetVideo:
		return "video"
	case AssetAudio:
		return "audio"
	case AssetOther:
		return "other"
	}
	return "unknown"
}

var assetTypesByExtension = map[string]AssetType{
	".jpg":  AssetImage,
	".jpeg": AssetImage,
	".png":  AssetImage,
	".gif":  AssetImage,
	".heic": AssetImage,
	".webp": AssetImage,
	".mp4":  AssetVideo,
	".mov":  AssetVideo,
	".m4v":  AssetVideo,
	".avi":  AssetVideo,
	".mkv":  AssetVideo,
	".mp3":  AssetAudio,
	".m4a":  AssetAudio,
	".aac":  AssetAudio,
	".wav":  AssetAudio,
	".flac": AssetAudio,
}

func AssetTypeForFile(fileName string) AssetType {
	if assetType, ok := assetTypesByExtension[strings.ToLower(filepath.Ext(fileName))]; ok {
		return assetType
	}
	return AssetOther
}

// Asset is an immutable media library entry. Two assets are the same
// asset when their ids match.
type Asset struct {
	id        AssetId
	assetType AssetType
	title     string
	duration  time.Duration
	created   time.Time
	path      string
}

func NewAsset(id AssetId, assetType AssetType, title string) *Asset {
	return &Asset{
		id:        id,
		assetType: assetType,
		title:     title,
	}
}

func NewAssetWithDetails(id AssetId, assetType AssetType, title string, duration time.Duration, created time.Time, path string) *Asset {
	return &Asset{
		id:        id,
		assetType: assetType,
		title:     title,
		duration:  duration,
		created:   created,
		path:      path,
	}
}

func (s *Asset) IsValid() bool {
	return s != nil && s.id != NoAsset
}

func (s *Asset) Id() AssetId {
	if s != nil {
		return s.id
	} else {
		return NoAsset
	}
}

func (s *Asset) Type() AssetType {
	if s != nil {
		return s.assetType
	} else {
		return AssetOther
	}
}

func (s *Asset) Title() string {
	if s != nil {
		return s.title
	} else {
		return ""
	}
}

func (s *Asset) Duration() time.Duration {
	if s != nil {
		return s.duration
	} else {
		return 0
	}
}

func (s *Asset) Created() time.Time {
	if s != nil {
		return s.created
	} else {
		return time.Time{}
	}
}

// Path is the raw file of the asset. Empty when the source has not
// resolved it.
func (s *Asset) Path() string {
	if s != nil {
		return s.path
	} else {
		return ""
	}
}

func (s *Asset) SameAs(other *Asset) bool {
	return s.IsValid() && other.IsValid() && s.id == other.id
}

func (s *Asset) String() string {
	if s != nil {
		if s.IsValid() {
			return "Asset{" + string(s.id) + ":" + s.assetType.String() + "}"
		} else {
			return "Asset<invalid>"
		}
	} else {
		return "Asset<nil>"
	}
}
