// Package identity keeps a request-serving cache of resolved identities so
// repeated /auth/user lookups don't hit the store. It is an explicit state
// machine: an id is unknown until an event resolves it to authenticated or
// anonymous, and login/logout events update it directly.
package identity

import (
	"strconv"
	"time"

	"github.com/harsha/nutrition-dashboard/internal/domain"
	gocache "github.com/patrickmn/go-cache"
)

type State int

const (
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

type Cache struct {
	entries *gocache.Cache
}

// anonymous marks an id that resolved to no user.
type anonymous struct{}

func New(ttl time.Duration) *Cache {
	return &Cache{entries: gocache.New(ttl, 2*ttl)}
}

// Lookup returns the cached state for an id. StateUnknown means the caller
// must resolve the id against the store and report back with Resolved or
// ResolveFailed.
func (c *Cache) Lookup(id int64) (State, *domain.User) {
	v, found := c.entries.Get(key(id))
	if !found {
		return StateUnknown, nil
	}
	if user, ok := v.(*domain.User); ok {
		return StateAuthenticated, user
	}
	return StateAnonymous, nil
}

// LoggedIn records a fresh login.
func (c *Cache) LoggedIn(user *domain.User) {
	c.entries.SetDefault(key(user.ID), user.Sanitized())
}

// LoggedOut evicts the id. The cache is shared across clients, so logout
// returns the id to unknown rather than pinning it anonymous; the user row
// still exists and other requests may resolve it again.
func (c *Cache) LoggedOut(id int64) {
	c.entries.Delete(key(id))
}

// Resolved records a successful store lookup.
func (c *Cache) Resolved(user *domain.User) {
	c.entries.SetDefault(key(user.ID), user.Sanitized())
}

// ResolveFailed records that the id matched no user row.
func (c *Cache) ResolveFailed(id int64) {
	c.entries.SetDefault(key(id), anonymous{})
}

func key(id int64) string {
	return strconv.FormatInt(id, 10)
}
