package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tifosi-api/internal/models"
	"tifosi-api/internal/repository"
)

// Fakes en memoria de los stores; cada uno guarda sus documentos en un map
// por id y registra las escrituras para que los tests puedan inspeccionarlas.

type fakeMediaStore struct {
	byID    map[primitive.ObjectID]models.Media
	created []*models.Media
}

func newFakeMediaStore(media ...models.Media) *fakeMediaStore {
	f := &fakeMediaStore{byID: make(map[primitive.ObjectID]models.Media)}
	for _, m := range media {
		f.byID[m.ID] = m
	}
	return f
}

func (f *fakeMediaStore) Create(ctx context.Context, media *models.Media) error {
	media.ID = primitive.NewObjectID()
	f.byID[media.ID] = *media
	f.created = append(f.created, media)
	return nil
}

func (f *fakeMediaStore) FindByPublicID(ctx context.Context, publicID string) (*models.Media, error) {
	for _, m := range f.byID {
		if m.PublicID == publicID {
			found := m
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeMediaStore) FindAll(ctx context.Context, page, limit int) ([]models.Media, int64, error) {
	out := make([]models.Media, 0, len(f.byID))
	for _, m := range f.byID {
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (f *fakeMediaStore) FindMapByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Media, error) {
	out := make(map[primitive.ObjectID]models.Media)
	for _, id := range ids {
		if m, ok := f.byID[id]; ok {
			out[id] = m
		}
	}
	return out, nil
}

func (f *fakeMediaStore) AllExist(ctx context.Context, ids []primitive.ObjectID) (bool, error) {
	for _, id := range ids {
		if _, ok := f.byID[id]; !ok {
			return false, nil
		}
	}
	return true, nil
}

type fakeColorStore struct {
	byID map[primitive.ObjectID]models.Color
}

func newFakeColorStore(colors ...models.Color) *fakeColorStore {
	f := &fakeColorStore{byID: make(map[primitive.ObjectID]models.Color)}
	for _, c := range colors {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeColorStore) Create(ctx context.Context, color *models.Color) error {
	color.ID = primitive.NewObjectID()
	f.byID[color.ID] = *color
	return nil
}

func (f *fakeColorStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Color, error) {
	if c, ok := f.byID[id]; ok {
		return &c, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeColorStore) FindAll(ctx context.Context, page, limit int) ([]models.Color, int64, error) {
	out := make([]models.Color, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeColorStore) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Color, error) {
	if c, ok := f.byID[id]; ok {
		return &c, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeColorStore) FindMapByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Color, error) {
	out := make(map[primitive.ObjectID]models.Color)
	for _, id := range ids {
		if c, ok := f.byID[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

type fakeCountryStore struct {
	byID map[primitive.ObjectID]models.Country
}

func newFakeCountryStore(countries ...models.Country) *fakeCountryStore {
	f := &fakeCountryStore{byID: make(map[primitive.ObjectID]models.Country)}
	for _, c := range countries {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeCountryStore) Create(ctx context.Context, country *models.Country) error {
	country.ID = primitive.NewObjectID()
	f.byID[country.ID] = *country
	return nil
}

func (f *fakeCountryStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Country, error) {
	if c, ok := f.byID[id]; ok {
		return &c, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCountryStore) FindAll(ctx context.Context, page, limit int) ([]models.Country, int64, error) {
	out := make([]models.Country, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCountryStore) FindMapByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Country, error) {
	out := make(map[primitive.ObjectID]models.Country)
	for _, id := range ids {
		if c, ok := f.byID[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

type fakeLeagueStore struct {
	byID map[primitive.ObjectID]models.League
}

func newFakeLeagueStore(leagues ...models.League) *fakeLeagueStore {
	f := &fakeLeagueStore{byID: make(map[primitive.ObjectID]models.League)}
	for _, l := range leagues {
		f.byID[l.ID] = l
	}
	return f
}

func (f *fakeLeagueStore) Create(ctx context.Context, league *models.League) error {
	league.ID = primitive.NewObjectID()
	f.byID[league.ID] = *league
	return nil
}

func (f *fakeLeagueStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.League, error) {
	if l, ok := f.byID[id]; ok {
		return &l, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeLeagueStore) FindAll(ctx context.Context, filter bson.M, page, limit int) ([]models.League, int64, error) {
	out := make([]models.League, 0, len(f.byID))
	for _, l := range f.byID {
		out = append(out, l)
	}
	return out, int64(len(out)), nil
}

func (f *fakeLeagueStore) FindMapByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.League, error) {
	out := make(map[primitive.ObjectID]models.League)
	for _, id := range ids {
		if l, ok := f.byID[id]; ok {
			out[id] = l
		}
	}
	return out, nil
}

type fakeTeamStore struct {
	byID    map[primitive.ObjectID]models.Team
	created []*models.Team
}

func newFakeTeamStore(teams ...models.Team) *fakeTeamStore {
	f := &fakeTeamStore{byID: make(map[primitive.ObjectID]models.Team)}
	for _, team := range teams {
		f.byID[team.ID] = team
	}
	return f
}

func (f *fakeTeamStore) Create(ctx context.Context, team *models.Team) error {
	team.ID = primitive.NewObjectID()
	f.byID[team.ID] = *team
	f.created = append(f.created, team)
	return nil
}

func (f *fakeTeamStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	if team, ok := f.byID[id]; ok {
		return &team, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTeamStore) FindAll(ctx context.Context, filter bson.M, page, limit int) ([]models.Team, int64, error) {
	out := make([]models.Team, 0, len(f.byID))
	for _, team := range f.byID {
		out = append(out, team)
	}
	return out, int64(len(out)), nil
}

func (f *fakeTeamStore) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Team, error) {
	if team, ok := f.byID[id]; ok {
		return &team, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTeamStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeTeamStore) FindMapByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Team, error) {
	out := make(map[primitive.ObjectID]models.Team)
	for _, id := range ids {
		if team, ok := f.byID[id]; ok {
			out[id] = team
		}
	}
	return out, nil
}

type fakeProductStore struct {
	byID      map[primitive.ObjectID]models.Product
	created   []*models.Product
	gotFilter bson.M
	gotSort   bson.D
	gotUpdate bson.M
}

func newFakeProductStore(products ...models.Product) *fakeProductStore {
	f := &fakeProductStore{byID: make(map[primitive.ObjectID]models.Product)}
	for _, p := range products {
		f.byID[p.ID] = p
	}
	return f
}

func (f *fakeProductStore) Create(ctx context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	f.byID[product.ID] = *product
	f.created = append(f.created, product)
	return nil
}

func (f *fakeProductStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	if p, ok := f.byID[id]; ok {
		return &p, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProductStore) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	for _, p := range f.byID {
		if p.Slug == slug {
			found := p
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProductStore) FindAll(ctx context.Context, filter bson.M, sort bson.D, page, limit int) ([]models.Product, int64, error) {
	f.gotFilter = filter
	f.gotSort = sort
	out := make([]models.Product, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductStore) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Product, error) {
	f.gotUpdate = update
	if p, ok := f.byID[id]; ok {
		return &p, nil
	}
	return nil, repository.ErrNotFound
}

// performRequest ejecuta una request JSON contra el router y devuelve el recorder.
func performRequest(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
