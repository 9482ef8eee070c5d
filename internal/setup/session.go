package setup

import (
	"context"
	"crypto/rand"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/vitrine/internal/config"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var NewSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (sessions.Store, error) {
	keyPairs := make([][]byte, 0)
	if len(conf.HTTP.Session.Keys) == 0 {
		key, err := getRandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		slog.WarnContext(ctx, "no session key configured, using a random one")

		keyPairs = append(keyPairs, key)
	} else {
		// Every configured key is a hash key without encryption. The first
		// one signs new cookies, the others are kept for verification only.
		for _, k := range conf.HTTP.Session.Keys {
			if k == "" {
				return nil, errors.New("session keys must not be empty")
			}

			keyPairs = append(keyPairs, []byte(k), nil)
		}
	}

	sessionStore := sessions.NewCookieStore(keyPairs...)

	if maxAge := conf.HTTP.Session.Cookie.MaxAge; maxAge != nil {
		sessionStore.MaxAge(int(time.Duration(*maxAge) / time.Second))
	}

	sessionStore.Options.Path = string(conf.HTTP.Session.Cookie.Path)
	sessionStore.Options.HttpOnly = bool(conf.HTTP.Session.Cookie.HTTPOnly)
	sessionStore.Options.Secure = bool(conf.HTTP.Session.Cookie.Secure)
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return sessionStore, nil
})

func getRandomBytes(n int) ([]byte, error) {
	data := make([]byte, n)

	read, err := rand.Read(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if read != n {
		return nil, errors.Errorf("could not read %d bytes", n)
	}

	return data, nil
}
