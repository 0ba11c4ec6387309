package paging

import (
	"errors"
	"fmt"
	"vincit.fi/asset-viewer/api"
	"vincit.fi/asset-viewer/api/apitype"
	"vincit.fi/asset-viewer/common/logger"
)

var (
	ErrIndexOutOfRange = errors.New("page index out of range")
	ErrAssetMismatch   = errors.New("asset is not on the current page")
	ErrDuplicateAsset  = errors.New("asset is already in the preview")
)

const noPage = -1

// State is the current page of the preview list. The preview list may
// be shared with the selection; Resync must be called when the shared
// list shrinks.
type State struct {
	sender       api.Sender
	assets       *apitype.AssetList
	currentIndex int

	api.PagingState
}

// NewPagingState starts at initialIndex. An empty list starts without
// a current page.
func NewPagingState(sender api.Sender, assets *apitype.AssetList, initialIndex int) (*State, error) {
	if assets == nil {
		assets = apitype.NewAssetList()
	}
	state := &State{
		sender:       sender,
		assets:       assets,
		currentIndex: noPage,
	}
	if assets.Len() == 0 {
		return state, nil
	}
	if err := state.checkRange(initialIndex); err != nil {
		return nil, err
	}
	state.currentIndex = initialIndex
	return state, nil
}

// SetCurrentIndex moves to the page without clamping. The new index is
// broadcast only when it differs from the current one.
func (s *State) SetCurrentIndex(index int) error {
	if err := s.checkRange(index); err != nil {
		return err
	}
	if index == s.currentIndex {
		return nil
	}
	logger.Trace.Printf("Page %d -> %d", s.currentIndex, index)
	s.currentIndex = index
	s.sendPageChanged()
	return nil
}

func (s *State) Move(offset int) error {
	return s.SetCurrentIndex(s.currentIndex + offset)
}

func (s *State) CurrentIndex() int {
	return s.currentIndex
}

func (s *State) Current() *apitype.Asset {
	return s.assets.At(s.currentIndex)
}

func (s *State) Total() int {
	return s.assets.Len()
}

func (s *State) IsEmpty() bool {
	return s.assets.Len() == 0
}

func (s *State) Assets() []*apitype.Asset {
	return s.assets.Assets()
}

// Replace swaps the asset on the current page. oldAsset must be the
// asset on the current page and newAsset must not be on another page.
func (s *State) Replace(oldAsset *apitype.Asset, newAsset *apitype.Asset) error {
	if err := s.CheckReplace(oldAsset, newAsset); err != nil {
		return err
	}
	index := s.assets.Replace(oldAsset, newAsset)
	s.currentIndex = index
	s.sender.SendCommandToTopic(api.PreviewAssetReplaced, &api.AssetReplacedCommand{
		Index:    index,
		OldAsset: oldAsset,
		NewAsset: newAsset,
	})
	return nil
}

// CheckReplace validates a Replace without changing anything.
func (s *State) CheckReplace(oldAsset *apitype.Asset, newAsset *apitype.Asset) error {
	if err := s.CheckCurrent(oldAsset); err != nil {
		return err
	}
	if !newAsset.IsValid() {
		return fmt.Errorf("replacement of %s is not a valid asset", oldAsset)
	}
	if index := s.assets.IndexOf(newAsset); index >= 0 && index != s.currentIndex {
		return fmt.Errorf("%w: %s at index %d", ErrDuplicateAsset, newAsset, index)
	}
	return nil
}

// CheckCurrent fails with ErrAssetMismatch unless asset is the asset
// on the current page.
func (s *State) CheckCurrent(asset *apitype.Asset) error {
	current := s.Current()
	if !current.SameAs(asset) {
		return fmt.Errorf("%w: expected %s at index %d, got %s", ErrAssetMismatch, current, s.currentIndex, asset)
	}
	return nil
}

// Resync keeps the index inside the list after the list shrank. The
// page is broadcast even when the index stays, since the asset on it
// has changed.
func (s *State) Resync() {
	total := s.assets.Len()
	newIndex := s.currentIndex
	if newIndex >= total {
		newIndex = total - 1
	}
	if total > 0 && newIndex < 0 {
		newIndex = 0
	}
	if total == 0 {
		newIndex = noPage
	}
	logger.Debug.Printf("Preview list changed to %d assets, page %d -> %d", total, s.currentIndex, newIndex)
	s.currentIndex = newIndex
	s.sendPageChanged()
}

func (s *State) checkRange(index int) error {
	if index < 0 || index >= s.assets.Len() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, s.assets.Len())
	}
	return nil
}

func (s *State) sendPageChanged() {
	s.sender.SendCommandToTopic(api.PreviewPageChanged, &api.PageChangedCommand{
		Index: s.currentIndex,
		Total: s.assets.Len(),
		Asset: s.Current(),
	})
}
