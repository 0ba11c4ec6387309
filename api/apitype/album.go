package apitype

// RecentsAlbum is the virtual album holding every asset, newest first.
const RecentsAlbum = "Recents"

type Album struct {
	folderName string
	assets     []*Asset
}

func NewAlbum(folderName string, assets []*Asset) *Album {
	return &Album{
		folderName: folderName,
		assets:     assets,
	}
}

// FolderName is the name reported by the source, before localization.
func (s *Album) FolderName() string {
	if s != nil {
		return s.folderName
	} else {
		return ""
	}
}

func (s *Album) Assets() []*Asset {
	if s != nil {
		return s.assets
	} else {
		return []*Asset{}
	}
}

func (s *Album) Count() int {
	return len(s.Assets())
}
