package backend

import (
	"vincit.fi/asset-viewer/api"
	"vincit.fi/asset-viewer/api/apitype"
	"vincit.fi/asset-viewer/backend/internal/assetsource"
	"vincit.fi/asset-viewer/backend/internal/database"
	"vincit.fi/asset-viewer/backend/internal/localizer"
	"vincit.fi/asset-viewer/backend/internal/viewer"
	"vincit.fi/asset-viewer/common"
	"vincit.fi/asset-viewer/common/event"
	"vincit.fi/asset-viewer/common/logger"
)

type Stores struct {
	SessionStore *database.SessionStore
	workDirDb    *database.Database
}

func (s *Stores) Close() {
	s.workDirDb.Close()
}

type Services struct {
	AssetSource api.AssetSource
	Localizer   api.AlbumNameLocalizer
}

type Brokers struct {
	Broker        *event.Broker
	DevNullBroker *event.DevNullBroker
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker:        event.InitBus(eventBusQueueSize),
		DevNullBroker: event.InitDevNullBus(),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

func InitializeServices(params *common.Params) *Services {
	logger.Debug.Printf("Initialize services...")
	services := &Services{
		AssetSource: assetsource.NewSource(params.RootPath()),
		Localizer:   localizer.NewLocalizer(),
	}
	logger.Debug.Printf("Services initialized")
	return services
}

// InitializeStores opens the session history DB in the root directory.
// An empty directory keeps the history in memory.
func InitializeStores(directory string, databaseFileName string) (*Stores, error) {
	logger.Debug.Printf("Initialize databases...")
	var workDirDb *database.Database
	if directory == "" {
		workDirDb = database.NewInMemoryDatabase()
	} else {
		workDirDb = database.NewDatabase()
		if err := workDirDb.InitializeForDirectory(directory, databaseFileName); err != nil {
			return nil, err
		}
	}
	if tableExist := workDirDb.Migrate(); tableExist == database.TableNotExist {
		logger.Debug.Printf("Created session history tables")
	}

	stores := &Stores{
		SessionStore: database.NewSessionStore(workDirDb),
		workDirDb:    workDirDb,
	}
	logger.Debug.Printf("Stores and databases initialized")
	return stores, nil
}

type SessionOptions struct {
	PreviewAssets  []*apitype.Asset
	SelectedAssets *apitype.AssetList
	InitialIndex   int

	SelectPredicate   api.SelectPredicate
	PredicateRequired bool
	EditRoute         api.EditRoute

	// Unobserved sessions publish nothing.
	Unobserved bool
}

// OpenViewerSession starts a viewer session. With reviewSelected the
// session previews the selected assets themselves.
func OpenViewerSession(params *common.Params, brokers *Brokers, stores *Stores, options *SessionOptions) (api.ViewerController, error) {
	var recorder api.SessionRecorder
	if stores != nil && stores.SessionStore != nil {
		recorder = stores.SessionStore
	}

	var sender api.Sender = brokers.Broker
	if options.Unobserved {
		sender = brokers.DevNullBroker
	}

	return viewer.NewController(&viewer.Config{
		PreviewAssets:     options.PreviewAssets,
		SelectedAssets:    options.SelectedAssets,
		Aliased:           params.ReviewSelected(),
		MaxCount:          params.MaxCount(),
		InitialIndex:      options.InitialIndex,
		SelectPredicate:   options.SelectPredicate,
		PredicateRequired: options.PredicateRequired,
		EditRoute:         options.EditRoute,
		Debug:             params.Debug(),
	}, sender, recorder)
}
