package database

import (
	"github.com/google/uuid"
	"github.com/upper/db/v4"
	"time"
	"vincit.fi/asset-viewer/api"
	"vincit.fi/asset-viewer/api/apitype"
	"vincit.fi/asset-viewer/common/logger"
)

// SessionStore keeps the final selection of closed viewer sessions.
type SessionStore struct {
	database   *Database
	collection db.Collection
	now        func() time.Time

	api.SessionRecorder
}

func NewSessionStore(database *Database) *SessionStore {
	return &SessionStore{
		database: database,
		now:      time.Now,
	}
}

func (s *SessionStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("session")
	}
	return s.collection
}

func (s *SessionStore) RecordSession(sessionId uuid.UUID, selected []*apitype.Asset) error {
	return s.getCollection().Session().Tx(func(sess db.Session) error {
		if _, err := sess.Collection("session").Insert(&Session{
			SessionId:       sessionId.String(),
			ClosedTimestamp: s.now(),
			SelectedCount:   len(selected),
		}); err != nil {
			return err
		}

		assets := sess.Collection("session_asset")
		for position, asset := range selected {
			if _, err := assets.Insert(&SessionAsset{
				SessionId: sessionId.String(),
				Position:  position,
				AssetId:   string(asset.Id()),
				AssetType: int(asset.Type()),
				Title:     asset.Title(),
			}); err != nil {
				logger.Error.Printf("Error while storing %s of session %s", asset, sessionId)
				return err
			}
		}
		logger.Debug.Printf("Stored session %s with %d assets", sessionId, len(selected))
		return nil
	})
}

// GetSessionAssets returns the selection of the session in pick order.
func (s *SessionStore) GetSessionAssets(sessionId uuid.UUID) ([]*apitype.Asset, error) {
	var rows []SessionAsset
	err := s.getCollection().Session().Collection("session_asset").
		Find(db.Cond{"session_id": sessionId.String()}).
		OrderBy("position").
		All(&rows)
	if err != nil {
		return nil, err
	}

	assets := make([]*apitype.Asset, len(rows))
	for i, row := range rows {
		assets[i] = apitype.NewAsset(apitype.AssetId(row.AssetId), apitype.AssetType(row.AssetType), row.Title)
	}
	return assets, nil
}

// LatestSession returns the id of the last recorded session, or
// uuid.Nil if there are none.
func (s *SessionStore) LatestSession() (uuid.UUID, error) {
	var session Session
	err := s.getCollection().Find().OrderBy("-id").One(&session)
	if err == db.ErrNoMoreRows {
		return uuid.Nil, nil
	} else if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(session.SessionId)
}

func (s *SessionStore) GetSessionCount() (uint64, error) {
	return s.getCollection().Find().Count()
}
