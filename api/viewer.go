package api

import (
	"context"
	"github.com/google/uuid"
	"vincit.fi/asset-viewer/api/apitype"
)

// SelectPredicate may veto a selection toggle. Returning false vetoes
// the change, true or nil allows it.
type SelectPredicate func(ctx context.Context, asset *apitype.Asset, currentlySelected bool) *bool

// EditRoute opens an editor for the asset. A nil asset means the edit
// produced no replacement.
type EditRoute func(ctx context.Context, asset *apitype.Asset, assetType apitype.AssetType) (*apitype.Asset, error)

type SessionRecorder interface {
	RecordSession(sessionId uuid.UUID, selected []*apitype.Asset) error
}

type AlbumNameLocalizer interface {
	Localize(folderName string, locale string) string
}

type SelectionState interface {
	Select(asset *apitype.Asset)
	Unselect(asset *apitype.Asset) bool
	Replace(oldAsset *apitype.Asset, newAsset *apitype.Asset)
	Contains(asset *apitype.Asset) bool
	Count() int
	IsFull() bool
	Selected() []*apitype.Asset
}

type PagingState interface {
	SetCurrentIndex(index int) error
	Move(offset int) error
	CurrentIndex() int
	Current() *apitype.Asset
	Total() int
	IsEmpty() bool
	Replace(oldAsset *apitype.Asset, newAsset *apitype.Asset) error
	Resync()
}

type ViewerController interface {
	RequestSelectionChange(ctx context.Context, asset *apitype.Asset, currentlySelected bool) (apitype.SelectionResult, error)
	RequestPageChange(index int) error
	ReplaceAsset(oldAsset *apitype.Asset, newAsset *apitype.Asset) error
	EditCurrent(ctx context.Context) error
	Selection() SelectionState
	Paging() PagingState
	IsAliased() bool
	Close() []*apitype.Asset
}

type AssetSource interface {
	ScanAlbums() ([]*apitype.Album, error)
}
