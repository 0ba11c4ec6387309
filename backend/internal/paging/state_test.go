package paging

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"testing"
	"vincit.fi/asset-viewer/api"
	"vincit.fi/asset-viewer/api/apitype"
)

type MockSender struct {
	api.Sender
	mock.Mock
}

func (s *MockSender) SendToTopic(topic api.Topic) {
	s.Called(topic)
}

func (s *MockSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.Called(topic, command)
}

func (s *MockSender) SendError(message string, err error) {
	s.Called(message, err)
}

func newSender() *MockSender {
	sender := new(MockSender)
	sender.On("SendCommandToTopic", mock.Anything, mock.Anything).Return()
	return sender
}

func pageIs(index int) interface{} {
	return mock.MatchedBy(func(command *api.PageChangedCommand) bool {
		return command.Index == index
	})
}

func newAssets(ids ...string) *apitype.AssetList {
	list := apitype.NewAssetList()
	for _, id := range ids {
		list.Append(apitype.NewAsset(apitype.AssetId(id), apitype.AssetImage, id+".jpg"))
	}
	return list
}

func TestNewPagingState(t *testing.T) {
	t.Run("Initial index", func(t *testing.T) {
		a := assert.New(t)
		sut, err := NewPagingState(newSender(), newAssets("a", "b", "c"), 1)
		a.Nil(err)
		a.Equal(1, sut.CurrentIndex())
		a.Equal(apitype.AssetId("b"), sut.Current().Id())
		a.Equal(3, sut.Total())
	})
	t.Run("Initial index out of range", func(t *testing.T) {
		_, err := NewPagingState(newSender(), newAssets("a"), 1)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})
	t.Run("Empty", func(t *testing.T) {
		a := assert.New(t)
		sut, err := NewPagingState(newSender(), nil, 0)
		a.Nil(err)
		a.True(sut.IsEmpty())
		a.Equal(-1, sut.CurrentIndex())
		a.Nil(sut.Current())
	})
}

func TestState_SetCurrentIndex(t *testing.T) {
	t.Run("In range", func(t *testing.T) {
		a := assert.New(t)
		sender := newSender()
		sut, _ := NewPagingState(sender, newAssets("a", "b", "c"), 0)

		a.Nil(sut.SetCurrentIndex(2))

		a.Equal(2, sut.CurrentIndex())
		sender.AssertCalled(t, "SendCommandToTopic", api.PreviewPageChanged, mock.MatchedBy(func(command *api.PageChangedCommand) bool {
			return command.Index == 2 && command.Total == 3 && command.Asset.Id() == "c"
		}))
	})
	t.Run("Out of range", func(t *testing.T) {
		a := assert.New(t)
		sender := newSender()
		sut, _ := NewPagingState(sender, newAssets("a", "b", "c"), 1)

		a.ErrorIs(sut.SetCurrentIndex(3), ErrIndexOutOfRange)
		a.ErrorIs(sut.SetCurrentIndex(-1), ErrIndexOutOfRange)

		a.Equal(1, sut.CurrentIndex())
		sender.AssertNotCalled(t, "SendCommandToTopic", mock.Anything, mock.Anything)
	})
	t.Run("Same index is not broadcast again", func(t *testing.T) {
		a := assert.New(t)
		sender := newSender()
		sut, _ := NewPagingState(sender, newAssets("a", "b", "c"), 0)

		a.Nil(sut.SetCurrentIndex(1))
		a.Nil(sut.SetCurrentIndex(1))
		a.Nil(sut.SetCurrentIndex(2))
		a.Nil(sut.SetCurrentIndex(1))

		sender.AssertNumberOfCalls(t, "SendCommandToTopic", 3)
	})
}

func TestState_Move(t *testing.T) {
	a := assert.New(t)
	sut, _ := NewPagingState(newSender(), newAssets("a", "b", "c"), 0)

	a.Nil(sut.Move(1))
	a.Nil(sut.Move(1))
	a.ErrorIs(sut.Move(1), ErrIndexOutOfRange)
	a.Equal(2, sut.CurrentIndex())
	a.Nil(sut.Move(-2))
	a.Equal(0, sut.CurrentIndex())
	a.ErrorIs(sut.Move(-1), ErrIndexOutOfRange)
}

func TestState_Replace(t *testing.T) {
	edited := apitype.NewAsset("b-edited", apitype.AssetImage, "b.jpg")

	t.Run("Current asset", func(t *testing.T) {
		a := assert.New(t)
		sender := newSender()
		sut, _ := NewPagingState(sender, newAssets("a", "b", "c"), 1)

		a.Nil(sut.Replace(sut.Current(), edited))

		a.Equal(1, sut.CurrentIndex())
		a.Equal(edited, sut.Current())
		sender.AssertCalled(t, "SendCommandToTopic", api.PreviewAssetReplaced, mock.MatchedBy(func(command *api.AssetReplacedCommand) bool {
			return command.Index == 1 && command.OldAsset.Id() == "b" && command.NewAsset.Id() == "b-edited"
		}))
	})
	t.Run("Not the current asset", func(t *testing.T) {
		a := assert.New(t)
		sender := newSender()
		assets := newAssets("a", "b", "c")
		sut, _ := NewPagingState(sender, assets, 1)

		err := sut.Replace(assets.At(2), edited)

		a.ErrorIs(err, ErrAssetMismatch)
		a.Equal(apitype.AssetId("c"), assets.At(2).Id())
		a.Equal(apitype.AssetId("b"), sut.Current().Id())
		sender.AssertNotCalled(t, "SendCommandToTopic", mock.Anything, mock.Anything)
	})
	t.Run("Replacement already on another page", func(t *testing.T) {
		a := assert.New(t)
		sender := newSender()
		assets := newAssets("a", "b", "c")
		sut, _ := NewPagingState(sender, assets, 0)

		err := sut.Replace(assets.At(0), assets.At(2))

		a.ErrorIs(err, ErrDuplicateAsset)
		a.Equal(3, sut.Total())
		a.Equal([]apitype.AssetId{"a", "b", "c"}, []apitype.AssetId{assets.At(0).Id(), assets.At(1).Id(), assets.At(2).Id()})
		sender.AssertNotCalled(t, "SendCommandToTopic", mock.Anything, mock.Anything)
	})
	t.Run("Same id on the current page", func(t *testing.T) {
		a := assert.New(t)
		sut, _ := NewPagingState(newSender(), newAssets("a", "b"), 1)
		renamed := apitype.NewAsset("b", apitype.AssetImage, "renamed.jpg")

		a.Nil(sut.Replace(sut.Current(), renamed))
		a.Equal("renamed.jpg", sut.Current().Title())
		a.Equal(2, sut.Total())
	})
	t.Run("Invalid replacement", func(t *testing.T) {
		sut, _ := NewPagingState(newSender(), newAssets("a"), 0)

		assert.NotNil(t, sut.Replace(sut.Current(), nil))
		assert.Equal(t, apitype.AssetId("a"), sut.Current().Id())
	})
}

func TestState_Resync(t *testing.T) {
	t.Run("Last page removed", func(t *testing.T) {
		a := assert.New(t)
		sender := newSender()
		assets := newAssets("a", "b", "c")
		sut, _ := NewPagingState(sender, assets, 2)

		require.True(t, assets.Remove(assets.At(2)))
		sut.Resync()

		a.Equal(1, sut.CurrentIndex())
		sender.AssertCalled(t, "SendCommandToTopic", api.PreviewPageChanged, pageIs(1))
	})
	t.Run("Current page removed in the middle", func(t *testing.T) {
		a := assert.New(t)
		sender := newSender()
		assets := newAssets("a", "b", "c")
		sut, _ := NewPagingState(sender, assets, 1)

		assets.Remove(assets.At(1))
		sut.Resync()

		a.Equal(1, sut.CurrentIndex())
		a.Equal(apitype.AssetId("c"), sut.Current().Id())
		sender.AssertCalled(t, "SendCommandToTopic", api.PreviewPageChanged, pageIs(1))
	})
	t.Run("All removed", func(t *testing.T) {
		a := assert.New(t)
		assets := newAssets("a")
		sut, _ := NewPagingState(newSender(), assets, 0)

		assets.Remove(assets.At(0))
		sut.Resync()

		a.True(sut.IsEmpty())
		a.Equal(-1, sut.CurrentIndex())
		a.ErrorIs(sut.SetCurrentIndex(0), ErrIndexOutOfRange)
	})
}
