package viewer

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
	"sync"
	"vincit.fi/asset-viewer/api"
	"vincit.fi/asset-viewer/api/apitype"
	"vincit.fi/asset-viewer/backend/internal/paging"
	"vincit.fi/asset-viewer/backend/internal/selection"
	"vincit.fi/asset-viewer/common/logger"
	"vincit.fi/asset-viewer/common/util"
)

var ErrSessionClosed = errors.New("viewer session closed")

type Config struct {
	// PreviewAssets are browsed when the session is not aliased.
	PreviewAssets []*apitype.Asset
	// SelectedAssets is owned by the caller. In aliased mode it is
	// also the preview list.
	SelectedAssets *apitype.AssetList
	// Aliased previews SelectedAssets itself. A deselect removes the
	// asset from the preview, so it cannot be paged back to, and selecting
	// it again appends it to the end.
	Aliased        bool
	MaxCount       int
	InitialIndex   int

	SelectPredicate   api.SelectPredicate
	PredicateRequired bool
	EditRoute         api.EditRoute

	// Debug turns contract violations into panics.
	Debug bool
}

type assetGate struct {
	sem   *semaphore.Weighted
	users int
}

// Controller owns the selection and paging state of one session.
type Controller struct {
	sessionId uuid.UUID
	config    *Config
	sender    api.Sender
	recorder  api.SessionRecorder
	selection *selection.State
	paging    *paging.State

	ctx    context.Context
	cancel context.CancelFunc

	// stateLock makes each mutation of selection and paging one step.
	stateLock sync.Mutex
	// gateLock guards gates, pending and closed.
	gateLock  sync.Mutex
	gates     map[apitype.AssetId]*assetGate
	pending   *util.Set[apitype.AssetId]
	closed    bool
	closeOnce sync.Once
	result    []*apitype.Asset

	api.ViewerController
}

func NewController(config *Config, sender api.Sender, recorder api.SessionRecorder) (*Controller, error) {
	if config.SelectPredicate == nil && config.PredicateRequired {
		contractViolation(config.Debug, "select predicate is required but not configured")
	}

	var selectionState *selection.State
	var previewAssets *apitype.AssetList
	if config.Aliased {
		storage := config.SelectedAssets
		if storage == nil {
			storage = apitype.NewAssetList()
		}
		previewAssets = storage
		selectionState = selection.NewSelectionState(sender, storage, config.MaxCount)
	} else {
		previewAssets = apitype.NewAssetList(config.PreviewAssets...)
		if config.SelectedAssets != nil {
			selectionState = selection.NewMirroredSelectionState(sender, config.SelectedAssets, config.MaxCount)
		} else {
			selectionState = selection.NewSelectionState(sender, nil, config.MaxCount)
		}
	}

	pagingState, err := paging.NewPagingState(sender, previewAssets, config.InitialIndex)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	controller := &Controller{
		sessionId: uuid.New(),
		config:    config,
		sender:    sender,
		recorder:  recorder,
		selection: selectionState,
		paging:    pagingState,
		ctx:       ctx,
		cancel:    cancel,
		gates:     map[apitype.AssetId]*assetGate{},
		pending:   util.NewSet[apitype.AssetId](),
	}
	logger.Debug.Printf("Viewer session %s started with %d assets (aliased: %t)",
		controller.sessionId, pagingState.Total(), config.Aliased)
	return controller, nil
}

func (s *Controller) SessionId() uuid.UUID {
	return s.sessionId
}

func (s *Controller) IsAliased() bool {
	return s.config.Aliased
}

func (s *Controller) Selection() api.SelectionState {
	return s.selection
}

func (s *Controller) Paging() api.PagingState {
	return s.paging
}

// IsPending reports whether a selection change of the asset waits for
// the select predicate.
func (s *Controller) IsPending(asset *apitype.Asset) bool {
	s.gateLock.Lock()
	defer s.gateLock.Unlock()
	return s.pending.Contains(asset.Id())
}

// RequestSelectionChange toggles the selection of the asset unless the
// select predicate vetoes it. Requests for the same asset are handled
// one at a time in arrival order.
func (s *Controller) RequestSelectionChange(ctx context.Context, asset *apitype.Asset, currentlySelected bool) (apitype.SelectionResult, error) {
	if !asset.IsValid() {
		return apitype.SelectionRejected, fmt.Errorf("cannot change selection of %s", asset)
	}

	waitCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	gate, err := s.enterGate(waitCtx, asset.Id())
	if err != nil {
		return apitype.SelectionRejected, err
	}
	defer s.leaveGate(asset.Id(), gate)

	if !s.vetoAllows(waitCtx, asset, currentlySelected) {
		logger.Debug.Printf("Selection change of %s rejected", asset)
		return apitype.SelectionRejected, nil
	}
	if err := s.sessionErr(waitCtx); err != nil {
		return apitype.SelectionRejected, err
	}

	s.stateLock.Lock()
	defer s.stateLock.Unlock()
	// Close may have started since the check above.
	if s.ctx.Err() != nil {
		return apitype.SelectionRejected, ErrSessionClosed
	}
	if currentlySelected {
		if s.selection.Unselect(asset) && s.config.Aliased {
			s.paging.Resync()
		}
	} else {
		s.selection.Select(asset)
	}
	return apitype.SelectionApplied, nil
}

func (s *Controller) vetoAllows(ctx context.Context, asset *apitype.Asset, currentlySelected bool) bool {
	if s.config.SelectPredicate == nil {
		return true
	}
	allowed := s.config.SelectPredicate(ctx, asset, currentlySelected)
	return allowed == nil || *allowed
}

func (s *Controller) enterGate(ctx context.Context, id apitype.AssetId) (*assetGate, error) {
	s.gateLock.Lock()
	if s.closed {
		s.gateLock.Unlock()
		return nil, ErrSessionClosed
	}
	gate, ok := s.gates[id]
	if !ok {
		gate = &assetGate{sem: semaphore.NewWeighted(1)}
		s.gates[id] = gate
	}
	gate.users++
	s.gateLock.Unlock()

	if err := gate.sem.Acquire(ctx, 1); err != nil {
		s.releaseGate(id, gate)
		return nil, s.sessionErr(ctx)
	}

	s.gateLock.Lock()
	s.pending.Add(id)
	s.gateLock.Unlock()
	return gate, nil
}

func (s *Controller) leaveGate(id apitype.AssetId, gate *assetGate) {
	s.gateLock.Lock()
	s.pending.Remove(id)
	s.gateLock.Unlock()

	gate.sem.Release(1)
	s.releaseGate(id, gate)
}

func (s *Controller) releaseGate(id apitype.AssetId, gate *assetGate) {
	s.gateLock.Lock()
	defer s.gateLock.Unlock()
	gate.users--
	if gate.users == 0 {
		delete(s.gates, id)
	}
}

// sessionErr tells apart a closed session from a cancelled caller.
func (s *Controller) sessionErr(ctx context.Context) error {
	if s.ctx.Err() != nil {
		return ErrSessionClosed
	}
	return ctx.Err()
}

func (s *Controller) RequestPageChange(index int) error {
	if s.isClosed() {
		return ErrSessionClosed
	}
	s.stateLock.Lock()
	defer s.stateLock.Unlock()
	return s.paging.SetCurrentIndex(index)
}

// ReplaceAsset swaps the asset on the current page, for example after
// it was edited. oldAsset must be the asset on the current page.
func (s *Controller) ReplaceAsset(oldAsset *apitype.Asset, newAsset *apitype.Asset) error {
	if s.isClosed() {
		return ErrSessionClosed
	}
	if !newAsset.IsValid() {
		return fmt.Errorf("cannot replace %s with %s", oldAsset, newAsset)
	}

	s.stateLock.Lock()
	defer s.stateLock.Unlock()
	if err := s.paging.Replace(oldAsset, newAsset); err != nil {
		return err
	}
	if s.config.Aliased {
		// Preview and selection share the list. It has been written once.
		s.selection.Refresh()
	} else {
		s.selection.Replace(oldAsset, newAsset)
	}
	logger.Debug.Printf("Replaced %s with %s at page %d", oldAsset, newAsset, s.paging.CurrentIndex())
	return nil
}

// EditCurrent sends the asset on the current page to the edit route
// and replaces it with the result, if any.
func (s *Controller) EditCurrent(ctx context.Context) error {
	if s.isClosed() {
		return ErrSessionClosed
	}
	if s.config.EditRoute == nil {
		logger.Debug.Print("No edit route configured")
		return nil
	}

	s.stateLock.Lock()
	current := s.paging.Current()
	s.stateLock.Unlock()
	if current == nil {
		return fmt.Errorf("nothing to edit: %w", paging.ErrIndexOutOfRange)
	}

	edited, err := s.config.EditRoute(ctx, current, current.Type())
	if err != nil {
		return fmt.Errorf("editing %s failed: %w", current, err)
	}
	if edited == nil {
		logger.Debug.Printf("Edit of %s produced no replacement", current)
		return nil
	}
	return s.ReplaceAsset(current, edited)
}

// Close ends the session and returns the final selection. Pending
// selection changes are aborted. Calling Close again returns the
// same selection.
func (s *Controller) Close() []*apitype.Asset {
	s.closeOnce.Do(s.close)
	return s.result
}

func (s *Controller) close() {
	s.gateLock.Lock()
	s.closed = true
	s.gateLock.Unlock()

	s.cancel()

	s.stateLock.Lock()
	s.result = s.selection.Selected()
	s.stateLock.Unlock()

	if s.recorder != nil {
		if err := s.recorder.RecordSession(s.sessionId, s.result); err != nil {
			s.sender.SendError("Could not store viewer session", err)
		}
	}
	s.sender.SendCommandToTopic(api.SessionClosed, &api.SessionClosedCommand{
		SessionId: s.sessionId,
		Selected:  s.result,
	})
	logger.Debug.Printf("Viewer session %s closed with %d selected", s.sessionId, len(s.result))
}

func (s *Controller) isClosed() bool {
	s.gateLock.Lock()
	defer s.gateLock.Unlock()
	return s.closed
}

func contractViolation(debug bool, message string) {
	logger.Error.Printf("Contract violation: %s", message)
	if debug {
		panic(message)
	}
}
