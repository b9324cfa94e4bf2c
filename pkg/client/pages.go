package client

import (
	"context"
	"iter"

	"github.com/ANcpLua/qyl/pkg/models"
	"github.com/ANcpLua/qyl/pkg/serialization"
)

// PageFunc fetches the page that starts at cursor; a nil cursor asks for
// the first page.
type PageFunc[T serialization.Parsable] func(ctx context.Context, cursor *string) (*models.Page[T], error)

// Pages walks a cursor-paginated listing item by item, passing each
// next_cursor back unmodified. Iteration stops after the last page, on the
// first error (yielded once), when ctx ends or when the caller breaks.
//
//	for d, err := range client.Pages(ctx, func(ctx context.Context, cursor *string) (*models.Page[*models.DeploymentEntity], error) {
//		return c.V1().Deployments().Get(ctx, &client.Config[client.DeploymentsGetQueryParameters]{
//			QueryParameters: &client.DeploymentsGetQueryParameters{Cursor: cursor},
//		})
//	}) { ... }
func Pages[T serialization.Parsable](ctx context.Context, fetch PageFunc[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var (
			zero   T
			cursor *string
			seen   = make(map[string]bool)
		)
		for {
			if err := ctx.Err(); err != nil {
				yield(zero, err)
				return
			}
			page, err := fetch(ctx, cursor)
			if err != nil {
				yield(zero, err)
				return
			}
			if page == nil {
				return
			}
			for _, item := range page.Items {
				if !yield(item, nil) {
					return
				}
			}
			if !page.HasMore || page.NextCursor == nil {
				return
			}
			// A server repeating a cursor would otherwise loop forever.
			if seen[*page.NextCursor] {
				yield(zero, serialization.Violationf("paginate", "cursor %q repeated", *page.NextCursor))
				return
			}
			seen[*page.NextCursor] = true
			cursor = page.NextCursor
		}
	}
}
