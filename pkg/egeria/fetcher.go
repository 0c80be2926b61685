package egeria

import (
	"context"

	"github.com/stacklok/egeria-client-go/pkg/output"
)

var _ output.Fetcher = (*Client)(nil)

// FetchElement implements output.Fetcher with a get-by-GUID call
func (c *Client) FetchElement(ctx context.Context, service, path string) (output.Element, bool, error) {
	res, err := c.GetElementByGUID(ctx, service, path, nil)
	if err != nil {
		return output.Element{}, false, err
	}
	el, ok := res.Get()
	return el, ok, nil
}

// FetchRelated implements output.Fetcher with a results call returning raw elements
func (c *Client) FetchRelated(ctx context.Context, service, path string) ([]output.Element, error) {
	res, err := c.GetRelated(ctx, service, path, nil, "", output.Options{Format: output.JSON})
	if err != nil {
		return nil, err
	}
	rendered, ok := res.Get()
	if !ok {
		return nil, nil
	}
	return rendered.Elements, nil
}
