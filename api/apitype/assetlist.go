package apitype

// AssetList is an ordered collection of assets unique by id. The
// insertion order is the pick order of the user. A list is shared by
// pointer when the same collection backs multiple views.
type AssetList struct {
	assets []*Asset
}

func NewAssetList(assets ...*Asset) *AssetList {
	list := &AssetList{assets: make([]*Asset, 0, len(assets))}
	for _, asset := range assets {
		list.Append(asset)
	}
	return list
}

func (s *AssetList) Len() int {
	if s != nil {
		return len(s.assets)
	} else {
		return 0
	}
}

func (s *AssetList) At(index int) *Asset {
	if s == nil || index < 0 || index >= len(s.assets) {
		return nil
	}
	return s.assets[index]
}

func (s *AssetList) IndexOf(asset *Asset) int {
	if s == nil || !asset.IsValid() {
		return -1
	}
	for i, existing := range s.assets {
		if existing.Id() == asset.Id() {
			return i
		}
	}
	return -1
}

func (s *AssetList) Contains(asset *Asset) bool {
	return s.IndexOf(asset) >= 0
}

// Append adds the asset to the end of the list. Returns false when
// the asset is invalid or already in the list.
func (s *AssetList) Append(asset *Asset) bool {
	if !asset.IsValid() || s.Contains(asset) {
		return false
	}
	s.assets = append(s.assets, asset)
	return true
}

func (s *AssetList) Remove(asset *Asset) bool {
	index := s.IndexOf(asset)
	if index < 0 {
		return false
	}
	s.assets = append(s.assets[:index], s.assets[index+1:]...)
	return true
}

// Replace puts newAsset into the slot of oldAsset and returns the slot
// index, or -1 when oldAsset is not in the list. If newAsset already
// had another slot that one is dropped so that ids stay unique.
func (s *AssetList) Replace(oldAsset *Asset, newAsset *Asset) int {
	index := s.IndexOf(oldAsset)
	if index < 0 || !newAsset.IsValid() {
		return -1
	}
	if duplicate := s.IndexOf(newAsset); duplicate >= 0 && duplicate != index {
		s.assets = append(s.assets[:duplicate], s.assets[duplicate+1:]...)
		if duplicate < index {
			index--
		}
	}
	s.assets[index] = newAsset
	return index
}

// Assets returns a copy of the list content.
func (s *AssetList) Assets() []*Asset {
	if s == nil {
		return []*Asset{}
	}
	assets := make([]*Asset, len(s.assets))
	copy(assets, s.assets)
	return assets
}

func (s *AssetList) Clone() *AssetList {
	return &AssetList{assets: s.Assets()}
}
