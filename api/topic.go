package api

type Topic string

const (
	SelectionUpdated     Topic = "selection-updated"
	PreviewPageChanged   Topic = "preview-page-changed"
	PreviewAssetReplaced Topic = "preview-asset-replaced"
	SessionClosed        Topic = "session-closed"
	ShowError            Topic = "show-error"
)
