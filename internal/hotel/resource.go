package hotel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/hotelsuite/hotelsuite/internal/apiclient"
	"github.com/hotelsuite/hotelsuite/internal/normalize"
)

// ListParams are the pagination and search parameters of a list call. Zero
// values are left out of the query string.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

func (p ListParams) query() string {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// Collection is the type-erased view of a Resource used by generic list and
// delete screens.
type Collection interface {
	Name() string
	Browse(ctx context.Context, params ListParams) (*normalize.Page[Entity], error)
	Remove(ctx context.Context, id ID) (bool, error)
}

// Resource is a CRUD endpoint family rooted at path.
//
// Every method returns a nil result and a nil error when the API answered
// 401: the session has been torn down and navigation to sign-in is in flight.
type Resource[T Entity] struct {
	name   string
	path   string
	client *apiclient.Client
	log    zerolog.Logger
}

// NewResource creates a resource rooted at path, e.g. "/api/rooms".
func NewResource[T Entity](client *apiclient.Client, log zerolog.Logger, name, path string) *Resource[T] {
	return &Resource[T]{
		name:   name,
		path:   path,
		client: client,
		log:    log.With().Str("resource", name).Logger(),
	}
}

func (r *Resource[T]) Name() string {
	return r.name
}

// List fetches one page of entities, whatever envelope the endpoint uses.
func (r *Resource[T]) List(ctx context.Context, params ListParams) (*normalize.Page[T], error) {
	resp, err := r.client.Get(ctx, r.path+params.query())
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.name, err)
	}
	if resp == nil {
		return nil, nil
	}

	page := normalize.DecodePage[T](r.log, resp.Body)
	return &page, nil
}

// Browse is List with the items widened to Entity.
func (r *Resource[T]) Browse(ctx context.Context, params ListParams) (*normalize.Page[Entity], error) {
	page, err := r.List(ctx, params)
	if err != nil || page == nil {
		return nil, err
	}

	items := make([]Entity, len(page.Items))
	for i, item := range page.Items {
		items[i] = item
	}
	return &normalize.Page[Entity]{Items: items, Total: page.Total, Page: page.Page, Limit: page.Limit}, nil
}

// Get fetches a single entity.
func (r *Resource[T]) Get(ctx context.Context, id ID) (*T, error) {
	resp, err := r.client.Get(ctx, r.itemPath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %s: %w", r.name, id, err)
	}
	return r.single(resp)
}

// Create posts payload as JSON.
func (r *Resource[T]) Create(ctx context.Context, payload any) (*T, error) {
	resp, err := r.client.Post(ctx, r.path, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", r.name, err)
	}
	return r.single(resp)
}

// CreateWithFile posts a multipart form, for entities carrying an image.
func (r *Resource[T]) CreateWithFile(ctx context.Context, form *apiclient.Form) (*T, error) {
	return r.Create(ctx, form)
}

// Update replaces the entity with id.
func (r *Resource[T]) Update(ctx context.Context, id ID, payload any) (*T, error) {
	resp, err := r.client.Put(ctx, r.itemPath(id), payload)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s %s: %w", r.name, id, err)
	}
	return r.single(resp)
}

// Delete removes the entity with id. It reports false when the session
// ended before the call completed.
func (r *Resource[T]) Delete(ctx context.Context, id ID) (bool, error) {
	resp, err := r.client.Delete(ctx, r.itemPath(id))
	if err != nil {
		return false, fmt.Errorf("failed to delete %s %s: %w", r.name, id, err)
	}
	return resp != nil, nil
}

func (r *Resource[T]) Remove(ctx context.Context, id ID) (bool, error) {
	return r.Delete(ctx, id)
}

func (r *Resource[T]) itemPath(id ID) string {
	return r.path + "/" + url.PathEscape(id.String())
}

// single decodes a one-entity answer, which some endpoints wrap in
// {"data": {...}}. An empty body yields a zero entity.
func (r *Resource[T]) single(resp *apiclient.Response) (*T, error) {
	if resp == nil {
		return nil, nil
	}

	var entity T
	if len(resp.Body) == 0 {
		return &entity, nil
	}

	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	body := resp.Body
	if err := json.Unmarshal(body, &wrapped); err == nil {
		if data := bytes.TrimSpace(wrapped.Data); len(data) > 0 && data[0] == '{' {
			body = data
		}
	}

	if err := json.Unmarshal(body, &entity); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.name, err)
	}
	return &entity, nil
}

// ReadOnly narrows a resource to reads, for the public endpoints.
type ReadOnly[T Entity] struct {
	res *Resource[T]
}

func (p *ReadOnly[T]) List(ctx context.Context, params ListParams) (*normalize.Page[T], error) {
	return p.res.List(ctx, params)
}

func (p *ReadOnly[T]) Get(ctx context.Context, id ID) (*T, error) {
	return p.res.Get(ctx, id)
}

var _ Collection = (*Resource[Room])(nil)
