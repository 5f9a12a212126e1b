// Package session holds the current Session (token pair plus user) in
// memory, mirrored to the local metadata table. Reads are synchronous and
// never fail; mutations are transactional and atomic with respect to
// subscribers.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/actionunit/aumcli/internal/client/models"
	"github.com/actionunit/aumcli/internal/common"
	"github.com/actionunit/aumcli/internal/dbx"
	"github.com/actionunit/aumcli/internal/logging"
)

// Store is the process-wide session holder. Construct one per application
// (or per test) and inject it; there is no package-level instance.
type Store struct {
	db  *sql.DB
	log logging.Logger

	mu      sync.RWMutex
	access  string
	refresh string
	user    *models.User
	subs    []chan *models.User
}

// NewStore builds a Store and rehydrates it from the local database. A
// malformed persisted session, or a token stored without its user, is
// treated as no session at all: the store comes up cleared rather than
// returning an error.
func NewStore(ctx context.Context, db *sql.DB, log logging.Logger) *Store {
	s := &Store{db: db, log: log}
	s.rehydrate(ctx)
	return s
}

func (s *Store) rehydrate(ctx context.Context) {
	repo := newMetadataRepo(s.db)

	access, err := repo.Get(ctx, common.StorageKeyAccessToken)
	if err != nil {
		s.log.Warn(ctx, "session rehydration failed, starting anonymous", "err", err)
		return
	}
	refresh, err := repo.Get(ctx, common.StorageKeyRefreshToken)
	if err != nil {
		s.log.Warn(ctx, "session rehydration failed, starting anonymous", "err", err)
		return
	}
	userData, err := repo.Get(ctx, common.StorageKeyUser)
	if err != nil {
		s.log.Warn(ctx, "session rehydration failed, starting anonymous", "err", err)
		return
	}

	if len(access) == 0 && len(userData) == 0 {
		return
	}

	var user models.User
	if len(access) == 0 || len(userData) == 0 || json.Unmarshal(userData, &user) != nil {
		// Half a session or unparseable user: fail closed.
		s.log.Warn(ctx, "malformed persisted session, clearing")
		if err := s.Clear(ctx); err != nil {
			s.log.Error(ctx, "failed to clear malformed session", "err", err)
		}
		return
	}

	s.mu.Lock()
	s.access = string(access)
	s.refresh = string(refresh)
	s.user = &user
	s.mu.Unlock()
}

// AccessToken returns the current access token, or "" when anonymous.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

// RefreshToken returns the current refresh token, or "" when anonymous.
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

// CurrentUser returns the last published user, nil when anonymous. Callers
// must treat the value as read-only.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Save persists the whole session in one transaction, then publishes the
// user. A session without both an access token and a user is rejected.
func (s *Store) Save(ctx context.Context, sess models.Session) error {
	if sess.AccessToken == "" || sess.User == nil {
		return common.ErrMalformedSession
	}

	userData, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := newMetadataRepo(tx)
		if err := repo.Set(ctx, common.StorageKeyAccessToken, []byte(sess.AccessToken)); err != nil {
			return err
		}
		if err := repo.Set(ctx, common.StorageKeyRefreshToken, []byte(sess.RefreshToken)); err != nil {
			return err
		}
		return repo.Set(ctx, common.StorageKeyUser, userData)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.access = sess.AccessToken
	s.refresh = sess.RefreshToken
	s.user = sess.User
	s.publishLocked(sess.User)
	s.mu.Unlock()

	return nil
}

// SetAccessToken overwrites only the access token, after a refresh. The
// user and refresh token stay as they are. When no session is held the
// write is dropped: a refresh that lands after logout must not resurrect
// half a session.
func (s *Store) SetAccessToken(ctx context.Context, token string) error {
	s.mu.RLock()
	active := s.user != nil
	s.mu.RUnlock()
	if !active {
		return nil
	}

	repo := newMetadataRepo(s.db)
	if err := repo.Set(ctx, common.StorageKeyAccessToken, []byte(token)); err != nil {
		return err
	}

	s.mu.Lock()
	if s.user != nil {
		s.access = token
	}
	s.mu.Unlock()
	return nil
}

// Clear erases all three persisted entries and publishes nil.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := newMetadataRepo(tx)
		for _, key := range []string{common.StorageKeyAccessToken, common.StorageKeyRefreshToken, common.StorageKeyUser} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.access = ""
	s.refresh = ""
	s.user = nil
	s.publishLocked(nil)
	s.mu.Unlock()

	return nil
}

// Subscribe returns a channel carrying user changes. The last known value
// (possibly nil) is replayed immediately, so new subscribers never have to
// wait for the next transition.
func (s *Store) Subscribe() <-chan *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan *models.User, 1)
	ch <- s.user
	s.subs = append(s.subs, ch)
	return ch
}

// publishLocked pushes u to every subscriber, keeping only the latest value
// when a subscriber lags. Callers hold s.mu.
func (s *Store) publishLocked(u *models.User) {
	for _, ch := range s.subs {
		select {
		case ch <- u:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- u
		}
	}
}
