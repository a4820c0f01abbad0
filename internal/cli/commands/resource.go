package commands

import (
	"Portfolio/internal/cli/api"
	"Portfolio/internal/cli/store"
	"Portfolio/internal/config"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// collections — допустимые коллекции и их пути на сервере
var collections = map[string]string{
	"blog":     "blog",
	"projects": "projects",
	"project":  "projects",
}

type imageView struct {
	Data        []byte `json:"data"`
	ContentType string `json:"contentType"`
}

type resourceView struct {
	ID       string    `json:"_id"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Link     string    `json:"link"`
	Image    imageView `json:"image"`
}

// collectionNames — канонические имена коллекций для справки
func collectionNames() []string {
	seen := map[string]bool{}
	var names []string
	for _, p := range collections {
		if !seen[p] {
			seen[p] = true
			names = append(names, p)
		}
	}
	sort.Strings(names)
	return names
}

func identityStore(cfg *config.Config) *store.IdentityStore {
	return store.NewIdentityStore(cfg.IdentityFile)
}

// loadIdentity требует сохранённую идентичность для изменяющих команд.
func loadIdentity(cfg *config.Config) (*store.Identity, error) {
	id, err := identityStore(cfg).Load()
	if errors.Is(err, store.ErrNoIdentity) {
		return nil, errors.New("not logged in, run login first")
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func collectionPath(name string) (string, error) {
	p, ok := collections[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("unknown collection %q (blog | projects)", name)
	}
	return p, nil
}

// parseForm разбирает аргументы вида key=value.
func parseForm(args []string) (api.ResourceForm, error) {
	var f api.ResourceForm
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return f, ErrUsage
		}
		switch strings.ToLower(k) {
		case "title":
			f.Title = v
		case "subtitle":
			f.Subtitle = v
		case "link":
			f.Link = v
		case "image":
			f.ImagePath = v
		default:
			return f, fmt.Errorf("unknown field %q", k)
		}
	}
	return f, nil
}
