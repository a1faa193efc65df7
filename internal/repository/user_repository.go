package repository

import (
	"context"

	"truth_buddy_backend/internal/model"
	"truth_buddy_backend/internal/session"
	"truth_buddy_backend/internal/util"
	"truth_buddy_backend/pkg/localstore"
	"truth_buddy_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultAvatar = "😊"

// UserRepository manages user records across the database and the local
// fallback store, and owns the current-user session: an in-memory cache plus
// a persisted current-user-id reference. Like every repository here, it never
// returns an error; failures degrade to the fallback store or to nil.
type UserRepository struct {
	DB       *gorm.DB
	Local    *localstore.Collection[*model.User]
	Store    *localstore.Store
	Selector *Selector
	Session  *session.Cache
}

func NewUserRepository(db *gorm.DB, store *localstore.Store, selector *Selector, cache *session.Cache) *UserRepository {
	return &UserRepository{
		DB:       db,
		Local:    localstore.NewCollection[*model.User](store, "users"),
		Store:    store,
		Selector: selector,
		Session:  cache,
	}
}

// List returns all users, best points first on the remote path.
func (r *UserRepository) List(ctx context.Context) ([]*model.User, Source) {
	if !r.Selector.UseRemote(ctx) {
		return r.Local.List(), SourceFallback
	}

	var users []*model.User
	err := r.DB.WithContext(ctx).Order("points DESC").Find(&users).Error
	if err != nil {
		logger.Log.Error("listing users from database failed", zap.Error(err))
		return r.Local.List(), SourceFallback
	}
	return users, SourceRemote
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) (*model.User, Source) {
	if !r.Selector.UseRemote(ctx) {
		return r.createLocal(u)
	}

	if err := r.DB.WithContext(ctx).Create(u).Error; err != nil {
		logger.Log.Error("creating user in database failed", zap.Error(err))
		return r.createLocal(u)
	}
	return u, SourceRemote
}

func (r *UserRepository) createLocal(u *model.User) (*model.User, Source) {
	created, err := r.Local.Create(u)
	if err != nil {
		logger.Log.Error("creating user in fallback store failed", zap.Error(err))
		return nil, SourceFallback
	}
	return created, SourceFallback
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, Source) {
	if !r.Selector.UseRemote(ctx) {
		u, _ := r.Local.FindByID(id)
		return u, SourceFallback
	}

	var u model.User
	err := r.DB.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Log.Error("finding user in database failed", zap.Error(err))
			u, _ := r.Local.FindByID(id)
			return u, SourceFallback
		}
		return nil, SourceRemote
	}
	return &u, SourceRemote
}

func (r *UserRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (*model.User, Source) {
	if !r.Selector.UseRemote(ctx) {
		return r.updateLocal(id, patch)
	}

	tx := r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(patch)
	if tx.Error != nil {
		logger.Log.Error("updating user in database failed", zap.Error(tx.Error))
		return r.updateLocal(id, patch)
	}
	if tx.RowsAffected == 0 {
		return nil, SourceRemote
	}
	u, _ := r.FindByID(ctx, id)
	return u, SourceRemote
}

func (r *UserRepository) updateLocal(id string, patch map[string]interface{}) (*model.User, Source) {
	u, found, err := r.Local.Update(id, patch)
	if err != nil {
		logger.Log.Error("updating user in fallback store failed", zap.Error(err))
		return nil, SourceFallback
	}
	if !found {
		return nil, SourceFallback
	}
	return u, SourceFallback
}

// CurrentUser returns the active player: session cache first, then the
// persisted current-user reference, and as a last resort it bootstraps a
// brand-new user with a generated nickname and persists the reference.
func (r *UserRepository) CurrentUser(ctx context.Context) (*model.User, Source) {
	if u := r.Session.Get(ctx); u != nil {
		return u, SourceSession
	}

	if id, ok := r.Store.CurrentUserID(); ok {
		if u, src := r.FindByID(ctx, id); u != nil {
			r.Session.Put(ctx, u)
			return u, src
		}
		logger.Log.Warn("current user reference is stale, creating a new user",
			zap.String("user_id", id))
	}

	return r.bootstrapUser(ctx)
}

func (r *UserRepository) bootstrapUser(ctx context.Context) (*model.User, Source) {
	fresh := &model.User{
		Nickname:      util.GenerateUniqueUsername(),
		Avatar:        defaultAvatar,
		Points:        0,
		CurrentStreak: 0,
	}

	created, src := r.Create(ctx, fresh)
	if created == nil {
		return nil, src
	}
	if err := r.Store.SetCurrentUserID(created.ID); err != nil {
		logger.Log.Error("persisting current user reference failed", zap.Error(err))
	}
	r.Session.Put(ctx, created)
	logger.Log.Info("created new user", zap.String("nickname", created.Nickname),
		zap.String("source", src.String()))
	return created, src
}

// UpdateCurrentUser shallow-merges patch into the active player's record and
// refreshes the session cache.
func (r *UserRepository) UpdateCurrentUser(ctx context.Context, patch map[string]interface{}) (*model.User, Source) {
	current, _ := r.CurrentUser(ctx)
	if current == nil {
		return nil, SourceFallback
	}

	updated, src := r.Update(ctx, current.ID, patch)
	if updated != nil {
		r.Session.Put(ctx, updated)
	}
	return updated, src
}

// Refresh re-reads the current user from the backing store, bypassing the
// session cache. Returns nil when the persisted reference no longer resolves.
func (r *UserRepository) Refresh(ctx context.Context) (*model.User, Source) {
	id, ok := r.Store.CurrentUserID()
	if !ok {
		return nil, SourceFallback
	}

	u, src := r.FindByID(ctx, id)
	if u != nil {
		r.Session.Put(ctx, u)
	}
	return u, src
}

// ClearSession drops the in-memory session and the persisted reference.
// The user record itself is kept.
func (r *UserRepository) ClearSession(ctx context.Context) {
	r.Session.Clear(ctx)
	r.Store.ClearCurrentUserID()
}
