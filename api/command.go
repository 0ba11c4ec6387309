package api

import (
	"github.com/google/uuid"
	"vincit.fi/asset-viewer/api/apitype"
)

type ErrorCommand struct {
	Message string
}

type SelectionUpdatedCommand struct {
	Count  int
	Assets []*apitype.Asset
}

type PageChangedCommand struct {
	Index int
	Total int
	Asset *apitype.Asset
}

type AssetReplacedCommand struct {
	Index    int
	OldAsset *apitype.Asset
	NewAsset *apitype.Asset
}

type SessionClosedCommand struct {
	SessionId uuid.UUID
	Selected  []*apitype.Asset
}
