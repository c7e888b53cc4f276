package limits

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Registry maps names to Limits and evaluates them. The zero value is not
// usable; create one with NewRegistry.
type Registry struct {
	mu     sync.Mutex
	limits map[string]*Limit

	now      func() time.Time
	loc      *time.Location
	rewrite  RewriteFunc
	override OverrideFunc
	tempName func() string
	logger   *slog.Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		limits:   make(map[string]*Limit),
		now:      time.Now,
		loc:      time.Local,
		tempName: defaultTempName,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register stores a new Limit under name. A name that is already taken is
// never overwritten: the existing Limit is returned along with an error
// wrapping ErrDuplicateName. An empty name gets a generated one.
func (r *Registry) Register(name string, conds ...Condition) (*Limit, error) {
	key := r.storageKey(name, conds)

	r.mu.Lock()
	existing, ok := r.limits[key]
	if !ok {
		r.limits[key] = newLimit(key, conds)
	}
	l := r.limits[key]
	r.mu.Unlock()

	if ok {
		r.logger.Warn("limit is already registered", slog.String("limit", key))
		return existing, fmt.Errorf("register limit %q: %w", key, ErrDuplicateName)
	}

	r.logger.Debug("limit registered", slog.String("limit", key), slog.Int("conditions", len(conds)))
	return l, nil
}

// Get returns the Limit registered under name.
//
// Without conditions, an unknown name yields a newly registered Limit that
// never holds. With conditions, an unknown name yields a newly registered
// Limit with those conditions; a known name yields the registered Limit and
// the supplied conditions are ignored.
func (r *Registry) Get(name string, conds ...Condition) *Limit {
	key := r.storageKey(name, conds)

	fresh := conds
	if len(fresh) == 0 {
		fresh = []Condition{Never}
	}

	r.mu.Lock()
	l, ok := r.limits[key]
	if !ok {
		l = newLimit(key, fresh)
		r.limits[key] = l
	}
	r.mu.Unlock()

	if ok && len(conds) > 0 {
		r.logger.Warn("limit is already registered, ignoring supplied conditions",
			slog.String("limit", key), slog.Int("conditions", len(conds)))
	}
	return l
}

// Exists reports whether a Limit is registered under name.
func (r *Registry) Exists(name string) bool {
	key := r.rewriteName(name, nil)
	if key == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.limits[key]
	return ok
}

// Limited is an alias of Exists.
func (r *Registry) Limited(name string) bool {
	return r.Exists(name)
}

// Limitless reports whether no Limit is registered under name.
func (r *Registry) Limitless(name string) bool {
	return !r.Exists(name)
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	names := make([]string, 0, len(r.limits))
	for name := range r.limits {
		names = append(names, name)
	}
	r.mu.Unlock()

	sort.Strings(names)
	return names
}

// Len returns the number of registered limits.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.limits)
}

func (r *Registry) rewriteName(name string, conds []Condition) string {
	if r.rewrite == nil {
		return name
	}
	return r.rewrite(name, conds)
}

func (r *Registry) storageKey(name string, conds []Condition) string {
	key := r.rewriteName(name, conds)
	if key == "" {
		key = r.tempName()
	}
	return key
}
