package notion

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dgallion1/notiondoc/internal/doctree"
	"golang.org/x/sync/errgroup"
)

// Query is the body of a database query. Filter and Sorts are passed to the
// API as-is.
type Query struct {
	Filter      any    `json:"filter,omitempty"`
	Sorts       []any  `json:"sorts,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
}

// QueryDatabase returns every page matching q. All result pages are
// collected before the call counts as succeeded or failed, so a retry
// restarts the drain from the first cursor.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, q Query, opts RetryOptions) ([]doctree.PageObject, error) {
	raw, err := retry(ctx, c.policy(opts), "query database", func(ctx context.Context) ([]wirePage, error) {
		return c.drainQuery(ctx, databaseID, q)
	})
	if err != nil {
		return nil, err
	}
	pages := make([]doctree.PageObject, 0, len(raw))
	for _, p := range raw {
		page, err := p.object()
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func (c *Client) drainQuery(ctx context.Context, databaseID string, q Query) ([]wirePage, error) {
	var pages []wirePage
	q.StartCursor = ""
	for {
		var resp listResponse[wirePage]
		if err := c.do(ctx, http.MethodPost, "/v1/databases/"+databaseID+"/query", q, &resp); err != nil {
			return nil, err
		}
		pages = append(pages, resp.Results...)
		cursor, ok := resp.next()
		if !ok {
			return pages, nil
		}
		q.StartCursor = cursor
	}
}

// QueryDatabaseWithBlocks runs QueryDatabase and fetches the block tree of
// every result concurrently. Results keep the query order.
func (c *Client) QueryDatabaseWithBlocks(ctx context.Context, databaseID string, q Query, opts RetryOptions) ([]doctree.Page, error) {
	objects, err := c.QueryDatabase(ctx, databaseID, q, opts)
	if err != nil {
		return nil, err
	}

	pages := make([]doctree.Page, len(objects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrency)
	for i, obj := range objects {
		g.Go(func() error {
			blocks, err := c.BlockChildren(gctx, obj.ID, opts)
			if err != nil {
				return err
			}
			pages[i] = doctree.Page{Page: obj, Blocks: blocks}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

// GetPage retrieves a single page. A page the integration cannot see in
// full is a structural error.
func (c *Client) GetPage(ctx context.Context, pageID string, opts RetryOptions) (doctree.PageObject, error) {
	raw, err := retry(ctx, c.policy(opts), "retrieve page", func(ctx context.Context) (wirePage, error) {
		var p wirePage
		err := c.do(ctx, http.MethodGet, "/v1/pages/"+pageID, nil, &p)
		return p, err
	})
	if err != nil {
		return doctree.PageObject{}, err
	}
	return raw.object()
}

// GetPageWithBlocks retrieves a page and its complete block tree.
func (c *Client) GetPageWithBlocks(ctx context.Context, pageID string, opts RetryOptions) (*doctree.Page, error) {
	obj, err := c.GetPage(ctx, pageID, opts)
	if err != nil {
		return nil, err
	}
	blocks, err := c.BlockChildren(ctx, obj.ID, opts)
	if err != nil {
		return nil, err
	}
	return &doctree.Page{Page: obj, Blocks: blocks}, nil
}

// BlockChildren returns the children of a block, recursively materialized.
// Sibling subtrees are fetched concurrently; each fetch spends its own copy
// of opts.
func (c *Client) BlockChildren(ctx context.Context, blockID string, opts RetryOptions) ([]doctree.Block, error) {
	raw, err := retry(ctx, c.policy(opts), "list block children", func(ctx context.Context) ([]wireBlock, error) {
		return c.drainChildren(ctx, blockID)
	})
	if err != nil {
		return nil, err
	}

	blocks := make([]doctree.Block, len(raw))
	for i, b := range raw {
		if !b.full() {
			c.log.Error("non-full block", "block_id", b.ID, "parent_id", blockID)
			return nil, fmt.Errorf("%w: found non-full block %s", doctree.ErrStructure, b.ID)
		}
		blocks[i] = doctree.Block{ID: b.ID, Content: b.content()}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrency)
	for i, b := range raw {
		if !b.HasChildren {
			continue
		}
		g.Go(func() error {
			children, err := c.BlockChildren(gctx, b.ID, opts)
			if err != nil {
				return err
			}
			blocks[i].Children = children
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (c *Client) drainChildren(ctx context.Context, blockID string) ([]wireBlock, error) {
	var blocks []wireBlock
	params := url.Values{"page_size": {"100"}}
	for {
		var resp listResponse[wireBlock]
		path := "/v1/blocks/" + blockID + "/children?" + params.Encode()
		if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return nil, err
		}
		blocks = append(blocks, resp.Results...)
		cursor, ok := resp.next()
		if !ok {
			return blocks, nil
		}
		params.Set("start_cursor", cursor)
	}
}
