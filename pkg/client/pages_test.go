package client

import (
	"context"
	"errors"
	"testing"

	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/serialization"
)

// fakePages serves pages keyed by the cursor that requests them ("" is the
// first page).
type fakePages struct {
	pages   map[string]*models.Page[*models.ServiceInfo]
	cursors []string
}

func (f *fakePages) fetch(_ context.Context, cursor *string) (*models.Page[*models.ServiceInfo], error) {
	key := ""
	if cursor != nil {
		key = *cursor
	}
	f.cursors = append(f.cursors, key)
	p, ok := f.pages[key]
	if !ok {
		return nil, errors.New("unknown cursor " + key)
	}
	return p, nil
}

func servicePage(next string, names ...string) *models.Page[*models.ServiceInfo] {
	items := make([]*models.ServiceInfo, 0, len(names))
	for _, n := range names {
		items = append(items, &models.ServiceInfo{Name: ptr(n)})
	}
	p := models.NewPage(models.NewServiceInfo, items)
	if next != "" {
		p.HasMore = true
		p.NextCursor = ptr(next)
	}
	return p
}

func TestPagesWalksCursors(t *testing.T) {
	f := &fakePages{pages: map[string]*models.Page[*models.ServiceInfo]{
		"":   servicePage("c2", "api", "web"),
		"c2": servicePage("c3", "worker"),
		"c3": servicePage("", "billing"),
	}}

	var names []string
	for s, err := range Pages(context.Background(), f.fetch) {
		if err != nil {
			t.Fatalf("Pages: %v", err)
		}
		names = append(names, *s.Name)
	}

	if want := []string{"api", "web", "worker", "billing"}; !equalStrings(names, want) {
		t.Errorf("items = %v, want %v", names, want)
	}
	if want := []string{"", "c2", "c3"}; !equalStrings(f.cursors, want) {
		t.Errorf("cursors = %v, want %v", f.cursors, want)
	}
}

func TestPagesStopsOnBreak(t *testing.T) {
	f := &fakePages{pages: map[string]*models.Page[*models.ServiceInfo]{
		"":   servicePage("c2", "api", "web"),
		"c2": servicePage("", "worker"),
	}}
	for range Pages(context.Background(), f.fetch) {
		break
	}
	if len(f.cursors) != 1 {
		t.Errorf("fetched %d pages after break, want 1", len(f.cursors))
	}
}

func TestPagesYieldsFetchError(t *testing.T) {
	f := &fakePages{pages: map[string]*models.Page[*models.ServiceInfo]{
		"": servicePage("missing", "api"),
	}}
	var (
		items int
		last  error
	)
	for _, err := range Pages(context.Background(), f.fetch) {
		if err != nil {
			last = err
			continue
		}
		items++
	}
	if items != 1 || last == nil {
		t.Errorf("items = %d, err = %v", items, last)
	}
}

func TestPagesRejectsRepeatedCursor(t *testing.T) {
	f := &fakePages{pages: map[string]*models.Page[*models.ServiceInfo]{
		"":     servicePage("loop", "api"),
		"loop": servicePage("loop", "web"),
	}}
	var last error
	for _, err := range Pages(context.Background(), f.fetch) {
		last = err
	}
	if !serialization.IsContractViolation(last) {
		t.Errorf("err = %v, want contract violation", last)
	}
}

func TestPagesHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := &fakePages{}
	for _, err := range Pages(ctx, f.fetch) {
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	}
	if len(f.cursors) != 0 {
		t.Error("fetched a page with a cancelled context")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
