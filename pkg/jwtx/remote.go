package jwtx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// GoogleSecureTokenJWKS publishes the keys that sign Firebase ID tokens.
const GoogleSecureTokenJWKS = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

// RemoteKeySet fetches a JWKS over HTTP and caches it for the max-age the
// server announces. An unknown kid triggers a refresh, at most once per
// MinRefresh.
type RemoteKeySet struct {
	URL        string
	Client     *http.Client
	MinRefresh time.Duration
	DefaultTTL time.Duration
	Now        func() time.Time

	mu        sync.Mutex
	set       *KeySet
	expiresAt time.Time
	fetchedAt time.Time
}

func NewRemoteKeySet(url string) *RemoteKeySet {
	return &RemoteKeySet{
		URL:        url,
		Client:     &http.Client{Timeout: 10 * time.Second},
		MinRefresh: 30 * time.Second,
		DefaultTTL: time.Hour,
		Now:        time.Now,
		set:        NewKeySet(),
	}
}

func (r *RemoteKeySet) Key(ctx context.Context, kid string) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.Now()
	stale := r.set.Len() == 0 || now.After(r.expiresAt)
	if !stale {
		if pub, err := r.set.Key(ctx, kid); err == nil {
			return pub, nil
		}
		// Unknown kid on a fresh set: keys may have rotated.
		stale = now.Sub(r.fetchedAt) >= r.MinRefresh
	}

	if stale {
		if err := r.refresh(ctx, now); err != nil {
			return nil, err
		}
	}
	return r.set.Key(ctx, kid)
}

func (r *RemoteKeySet) refresh(ctx context.Context, now time.Time) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return err
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("jwtx: fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwtx: fetch jwks: status %d", resp.StatusCode)
	}

	var jwks JWKS
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return fmt.Errorf("jwtx: decode jwks: %w", err)
	}
	if len(jwks.Keys) == 0 {
		return errors.New("jwtx: jwks has no keys")
	}
	if err := r.set.Replace(jwks); err != nil {
		return err
	}

	ttl := r.DefaultTTL
	if maxAge, ok := parseMaxAge(resp.Header.Get("Cache-Control")); ok {
		ttl = maxAge
	}
	r.fetchedAt = now
	r.expiresAt = now.Add(ttl)
	return nil
}

func parseMaxAge(cc string) (time.Duration, bool) {
	for _, directive := range strings.Split(cc, ",") {
		name, value, found := strings.Cut(strings.TrimSpace(directive), "=")
		if !found || !strings.EqualFold(name, "max-age") {
			continue
		}
		secs, err := strconv.Atoi(strings.Trim(value, `"`))
		if err != nil || secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	return 0, false
}
