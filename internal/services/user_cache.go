package services

import (
	"strconv"
	"time"

	"github.com/dmitrijs2005/lightbnb/internal/models"
	"github.com/karlseguin/ccache/v3"
)

// userCache keeps recently read users. Users never change once created, so
// entries only leave the cache by TTL or eviction. A nil *userCache is a valid,
// always-missing cache.
type userCache struct {
	c       *ccache.Cache[models.User]
	ttl     time.Duration
	entries int64
}

// newUserCache holds up to size users. Each user is stored under its id and
// its email, so the underlying cache is sized at two entries per user.
func newUserCache(size int, ttl time.Duration) *userCache {
	if size <= 0 || ttl <= 0 {
		return nil
	}
	entries := 2 * int64(size)
	return &userCache{
		c:       ccache.New(ccache.Configure[models.User]().MaxSize(entries)),
		ttl:     ttl,
		entries: entries,
	}
}

func idKey(id int64) string { return "id:" + strconv.FormatInt(id, 10) }

func emailKey(email string) string { return "email:" + email }

func (uc *userCache) get(key string) (*models.User, bool) {
	if uc == nil {
		return nil, false
	}
	item := uc.c.Get(key)
	if item == nil || item.Expired() {
		return nil, false
	}
	u := item.Value()
	return &u, true
}

func (uc *userCache) byID(id int64) (*models.User, bool) { return uc.get(idKey(id)) }

func (uc *userCache) byEmail(email string) (*models.User, bool) { return uc.get(emailKey(email)) }

// add stores a copy of u under both of its keys.
func (uc *userCache) add(u *models.User) {
	if uc == nil || u == nil {
		return
	}
	uc.c.Set(idKey(u.ID), *u, uc.ttl)
	uc.c.Set(emailKey(u.Email), *u, uc.ttl)
}

func (uc *userCache) stop() {
	if uc != nil {
		uc.c.Stop()
	}
}
