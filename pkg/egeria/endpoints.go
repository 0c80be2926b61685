package egeria

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/trace"

	egeriaotel "github.com/stacklok/egeria-client-go/internal/otel"
	"github.com/stacklok/egeria-client-go/pkg/output"
	"github.com/stacklok/egeria-client-go/pkg/requests"
)

// pager is implemented by query bodies that carry paging fields
type pager interface {
	SetDefaultPageSize(n int)
}

// CreateElement validates body as a new-element request whose properties class is one
// of allowed, posts it and returns the guid of the new element, or NoGUIDReturned.
// Nothing is sent when validation fails.
func (c *Client) CreateElement(ctx context.Context, service, path string, body any, allowed ...string) (string, error) {
	req, err := requests.NewElement(body, allowed...)
	if err != nil {
		return "", err
	}
	return c.Create(ctx, service, path, req)
}

// Create posts an already validated body and returns the guid from the response
func (c *Client) Create(ctx context.Context, service, path string, body any) (string, error) {
	resp, err := c.post(ctx, "create", service, path, body)
	if err != nil {
		return "", err
	}
	guid := resp.Get("guid").String()
	if guid == "" {
		slog.Debug("No guid in create response", "service", service, "path", path)
		return NoGUIDReturned, nil
	}
	return guid, nil
}

// GetElementByGUID posts a get request and returns the "element" of the response.
// A nil body sends an empty get request.
func (c *Client) GetElementByGUID(ctx context.Context, service, path string, body any) (Result[output.Element], error) {
	req, err := requests.Get(body)
	if err != nil {
		return Empty[output.Element](), err
	}
	resp, err := c.post(ctx, "get", service, path, req)
	if err != nil {
		return Empty[output.Element](), err
	}
	return elementResult(resp), nil
}

// GetElement issues a GET and returns the "element" of the response
func (c *Client) GetElement(ctx context.Context, service, path string) (Result[output.Element], error) {
	resp, err := c.call(ctx, "get", http.MethodGet, service, path, nil)
	if err != nil {
		return Empty[output.Element](), err
	}
	return elementResult(resp), nil
}

// FindElements posts a query body and returns the "elements" of the response rendered
// as opts asks. A body with paging fields gets the configured page size when it has none.
func (c *Client) FindElements(ctx context.Context, service, path string, body any, typeName string, opts output.Options) (Result[output.Rendered], error) {
	if p, ok := body.(pager); ok && c.cfg.PageSize > 0 {
		p.SetDefaultPageSize(c.cfg.PageSize)
	}
	resp, err := c.post(ctx, "find", service, path, body)
	if err != nil {
		return Empty[output.Rendered](), err
	}
	return c.render(ctx, resp, typeName, opts)
}

// GetRelated validates body as a results request and returns the related elements
// an endpoint lists, rendered as opts asks
func (c *Client) GetRelated(ctx context.Context, service, path string, body any, typeName string, opts output.Options) (Result[output.Rendered], error) {
	req, err := requests.Results(body)
	if err != nil {
		return Empty[output.Rendered](), err
	}
	if c.cfg.PageSize > 0 {
		req.SetDefaultPageSize(c.cfg.PageSize)
	}
	resp, err := c.post(ctx, "related", service, path, req)
	if err != nil {
		return Empty[output.Rendered](), err
	}
	return c.render(ctx, resp, typeName, opts)
}

// ListElements issues a GET and returns the "elements" of the response rendered as opts asks
func (c *Client) ListElements(ctx context.Context, service, path, typeName string, opts output.Options) (Result[output.Rendered], error) {
	resp, err := c.call(ctx, "list", http.MethodGet, service, path, nil)
	if err != nil {
		return Empty[output.Rendered](), err
	}
	return c.render(ctx, resp, typeName, opts)
}

// GetGraph validates body as a results request and renders the single element a graph
// endpoint returns, typically with MERMAID output
func (c *Client) GetGraph(ctx context.Context, service, path string, body any, typeName string, opts output.Options) (Result[output.Rendered], error) {
	req, err := requests.Results(body)
	if err != nil {
		return Empty[output.Rendered](), err
	}
	resp, err := c.post(ctx, "graph", service, path, req)
	if err != nil {
		return Empty[output.Rendered](), err
	}
	el := elementResult(resp)
	if !el.Found() {
		return Empty[output.Rendered](), nil
	}
	return c.renderElements(ctx, []output.Element{el.Value()}, typeName, opts)
}

// Do posts body and only reports failure. It serves update, delete, attach, detach,
// classify and declassify calls.
func (c *Client) Do(ctx context.Context, service, path string, body any) error {
	_, err := c.post(ctx, "do", service, path, body)
	return err
}

// Update validates body as an update request limited to the allowed classes and posts it
func (c *Client) Update(ctx context.Context, service, path string, body any, allowed ...string) error {
	req, err := requests.UpdateElement(body, allowed...)
	if err != nil {
		return err
	}
	return c.Do(ctx, service, path, req)
}

// Delete validates body as a delete request and posts it. cascade only applies when
// body is nil.
func (c *Client) Delete(ctx context.Context, service, path string, body any, cascade bool) error {
	req, err := requests.Delete(body, cascade)
	if err != nil {
		return err
	}
	return c.Do(ctx, service, path, req)
}

// Attach validates body as a new-relationship request and posts it
func (c *Client) Attach(ctx context.Context, service, path string, body any, allowed ...string) error {
	req, err := requests.NewRelationship(body, allowed...)
	if err != nil {
		return err
	}
	return c.Do(ctx, service, path, req)
}

// Detach posts a delete request that removes a relationship
func (c *Client) Detach(ctx context.Context, service, path string, body any) error {
	return c.Delete(ctx, service, path, body, false)
}

// Classify validates body as a new-classification request and posts it
func (c *Client) Classify(ctx context.Context, service, path string, body any, allowed ...string) error {
	req, err := requests.NewClassification(body, allowed...)
	if err != nil {
		return err
	}
	return c.Do(ctx, service, path, req)
}

// Field calls an endpoint and returns one member of the response, for endpoints that
// answer with something other than elements (flags, names, type definitions)
func (c *Client) Field(ctx context.Context, method, service, path string, body any, field string) (gjson.Result, error) {
	resp, err := c.call(ctx, "field", method, service, path, body)
	if err != nil {
		return gjson.Result{}, err
	}
	return resp.Get(field), nil
}

func elementResult(resp gjson.Result) Result[output.Element] {
	el := resp.Get("element")
	if !el.IsObject() || len(el.Map()) == 0 {
		return Empty[output.Element]()
	}
	return Found(output.ElementsFrom(el)[0])
}

// render extracts the "elements" (or "elementList") of a response. A missing or empty
// list, or the platform's own "No elements found" text, gives an empty Result.
func (c *Client) render(ctx context.Context, resp gjson.Result, typeName string, opts output.Options) (Result[output.Rendered], error) {
	list := resp.Get("elements")
	if !list.Exists() {
		list = resp.Get("elementList")
	}
	return c.renderElements(ctx, output.ElementsFrom(list), typeName, opts)
}

func (c *Client) renderElements(ctx context.Context, elements []output.Element, typeName string, opts output.Options) (Result[output.Rendered], error) {
	c.metrics.RecordElements(ctx, typeName, len(elements))
	if len(elements) == 0 {
		return Empty[output.Rendered](), nil
	}

	ctx, span := egeriaotel.StartSpan(ctx, c.tracer, "egeria.render",
		trace.WithAttributes(
			egeriaotel.AttrTypeName.String(typeName),
			egeriaotel.AttrOutputFormat.String(string(opts.Format)),
			egeriaotel.AttrResultCount.Int(len(elements)),
		),
	)
	defer span.End()

	rendered, err := c.formatter.Generate(ctx, typeName, elements, opts)
	if err != nil {
		egeriaotel.RecordError(span, err)
		return Empty[output.Rendered](), err
	}
	return Found(rendered), nil
}
