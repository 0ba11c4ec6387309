package selection

import (
	"vincit.fi/asset-viewer/api"
	"vincit.fi/asset-viewer/api/apitype"
	"vincit.fi/asset-viewer/common/logger"
)

// State is the ordered selection of one viewer session.
//
// storage is the list mutated by Select and Unselect. When the session
// reviews an externally owned selection, storage is that list and every
// change writes through to the owner. mirror is an optional second
// owner that only follows replacements.
type State struct {
	sender   api.Sender
	storage  *apitype.AssetList
	mirror   *apitype.AssetList
	maxCount int

	api.SelectionState
}

// NewSelectionState creates a selection over storage. maxCount 0 means
// unlimited.
func NewSelectionState(sender api.Sender, storage *apitype.AssetList, maxCount int) *State {
	if storage == nil {
		storage = apitype.NewAssetList()
	}
	return &State{
		sender:   sender,
		storage:  storage,
		maxCount: maxCount,
	}
}

// NewMirroredSelectionState starts from a private copy of owner. Only
// replacements are written back to owner.
func NewMirroredSelectionState(sender api.Sender, owner *apitype.AssetList, maxCount int) *State {
	state := NewSelectionState(sender, owner.Clone(), maxCount)
	state.mirror = owner
	return state
}

// Select appends the asset. Selecting when the selection is full is
// silently ignored.
func (s *State) Select(asset *apitype.Asset) {
	if s.IsFull() {
		logger.Debug.Printf("Selection full (%d), ignoring %s", s.maxCount, asset)
		return
	}
	if s.storage.Append(asset) {
		logger.Trace.Printf("Selected %s", asset)
		s.sendUpdate()
	}
}

// Unselect reports whether the asset was selected.
func (s *State) Unselect(asset *apitype.Asset) bool {
	if s.storage.Remove(asset) {
		logger.Trace.Printf("Unselected %s", asset)
		s.sendUpdate()
		return true
	}
	return false
}

// Replace puts newAsset into the position of oldAsset in the selection
// and in the mirror when one exists.
func (s *State) Replace(oldAsset *apitype.Asset, newAsset *apitype.Asset) {
	replaced := s.storage.Replace(oldAsset, newAsset) >= 0
	if s.mirror != nil && s.mirror != s.storage {
		if s.mirror.Replace(oldAsset, newAsset) >= 0 {
			replaced = true
		}
	}
	if replaced {
		logger.Debug.Printf("Replaced %s with %s in selection", oldAsset, newAsset)
		s.sendUpdate()
	}
}

// Refresh broadcasts the selection again. Used when the shared storage
// was changed through the preview list.
func (s *State) Refresh() {
	s.sendUpdate()
}

func (s *State) Contains(asset *apitype.Asset) bool {
	return s.storage.Contains(asset)
}

func (s *State) Count() int {
	return s.storage.Len()
}

func (s *State) MaxCount() int {
	return s.maxCount
}

func (s *State) IsFull() bool {
	return s.maxCount > 0 && s.storage.Len() >= s.maxCount
}

func (s *State) Selected() []*apitype.Asset {
	return s.storage.Assets()
}

func (s *State) sendUpdate() {
	s.sender.SendCommandToTopic(api.SelectionUpdated, &api.SelectionUpdatedCommand{
		Count:  s.storage.Len(),
		Assets: s.storage.Assets(),
	})
}
