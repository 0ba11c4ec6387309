package apitype

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func assetIds(assets []*Asset) []AssetId {
	ids := make([]AssetId, len(assets))
	for i, asset := range assets {
		ids[i] = asset.Id()
	}
	return ids
}

func TestNewAssetList(t *testing.T) {
	a := assert.New(t)

	list := NewAssetList(
		NewAsset("a", AssetImage, ""),
		NewAsset("b", AssetImage, ""),
		NewAsset("a", AssetVideo, ""),
		nil,
	)

	a.Equal(2, list.Len())
	a.Equal([]AssetId{"a", "b"}, assetIds(list.Assets()))
}

func TestAssetList_NilList(t *testing.T) {
	a := assert.New(t)

	var list *AssetList
	a.Equal(0, list.Len())
	a.Nil(list.At(0))
	a.Equal(-1, list.IndexOf(NewAsset("a", AssetImage, "")))
	a.Empty(list.Assets())
}

func TestAssetList_AppendAndRemove(t *testing.T) {
	a := assert.New(t)

	assetA := NewAsset("a", AssetImage, "")
	assetB := NewAsset("b", AssetImage, "")

	list := NewAssetList()
	t.Run("Append", func(t *testing.T) {
		a.True(list.Append(assetA))
		a.True(list.Append(assetB))
		a.False(list.Append(NewAsset("a", AssetImage, "copy")))
		a.False(list.Append(nil))
		a.Equal([]AssetId{"a", "b"}, assetIds(list.Assets()))
	})
	t.Run("Remove", func(t *testing.T) {
		a.False(list.Remove(NewAsset("c", AssetImage, "")))
		a.True(list.Remove(NewAsset("a", AssetImage, "")))
		a.Equal([]AssetId{"b"}, assetIds(list.Assets()))
	})
	t.Run("At", func(t *testing.T) {
		a.Equal(assetB, list.At(0))
		a.Nil(list.At(1))
		a.Nil(list.At(-1))
	})
}

func TestAssetList_Replace(t *testing.T) {
	t.Run("Keeps position", func(t *testing.T) {
		a := assert.New(t)
		list := NewAssetList(NewAsset("a", AssetImage, ""), NewAsset("b", AssetImage, ""), NewAsset("c", AssetImage, ""))

		index := list.Replace(NewAsset("b", AssetImage, ""), NewAsset("b2", AssetImage, ""))

		a.Equal(1, index)
		a.Equal([]AssetId{"a", "b2", "c"}, assetIds(list.Assets()))
	})
	t.Run("Missing old asset", func(t *testing.T) {
		a := assert.New(t)
		list := NewAssetList(NewAsset("a", AssetImage, ""))

		a.Equal(-1, list.Replace(NewAsset("x", AssetImage, ""), NewAsset("y", AssetImage, "")))
		a.Equal([]AssetId{"a"}, assetIds(list.Assets()))
	})
	t.Run("New asset already in list", func(t *testing.T) {
		a := assert.New(t)
		list := NewAssetList(NewAsset("a", AssetImage, ""), NewAsset("b", AssetImage, ""), NewAsset("c", AssetImage, ""))

		index := list.Replace(NewAsset("c", AssetImage, ""), NewAsset("a", AssetImage, ""))

		a.Equal(1, index)
		a.Equal([]AssetId{"b", "a"}, assetIds(list.Assets()))
	})
}

func TestAssetList_AssetsIsCopy(t *testing.T) {
	a := assert.New(t)

	list := NewAssetList(NewAsset("a", AssetImage, ""))
	assets := list.Assets()
	assets[0] = NewAsset("z", AssetImage, "")

	a.Equal(AssetId("a"), list.At(0).Id())

	clone := list.Clone()
	clone.Append(NewAsset("b", AssetImage, ""))
	a.Equal(1, list.Len())
	a.Equal(2, clone.Len())
}

func TestSelectionResult_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("applied", SelectionApplied.String())
	a.Equal("rejected", SelectionRejected.String())
}
