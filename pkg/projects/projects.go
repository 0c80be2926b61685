// Package projects manages projects, their teams and the links between projects
// through the project-manager view service.
package projects

import (
	"context"

	"github.com/stacklok/egeria-client-go/pkg/egeria"
	"github.com/stacklok/egeria-client-go/pkg/output"
	"github.com/stacklok/egeria-client-go/pkg/requests"
)

// Service is the view service behind every Manager call
const Service = "project-manager"

// Type names used to pick format sets
const (
	TypeProjects    = "Projects"
	TypeProjectTeam = "ProjectTeam"
)

// Manager issues project-manager requests
type Manager struct {
	client *egeria.Client
}

// NewManager returns a Manager using client
func NewManager(client *egeria.Client) *Manager {
	return &Manager{client: client}
}

// CreateProject creates a project and returns its guid. Campaigns, tasks and personal
// projects are projects with an initial classification in body.
func (m *Manager) CreateProject(ctx context.Context, body any) (string, error) {
	return m.client.CreateElement(ctx, Service, "projects", body, requests.ClassProjectProperties)
}

// UpdateProject updates the properties of a project
func (m *Manager) UpdateProject(ctx context.Context, guid string, body any) error {
	if err := egeria.RequireGUID("projectGUID", guid); err != nil {
		return err
	}
	return m.client.Update(ctx, Service, egeria.Path("projects/%s/update", guid), body, requests.ClassProjectProperties)
}

// DeleteProject deletes a project
func (m *Manager) DeleteProject(ctx context.Context, guid string, body any, cascade bool) error {
	if err := egeria.RequireGUID("projectGUID", guid); err != nil {
		return err
	}
	return m.client.Delete(ctx, Service, egeria.Path("projects/%s/delete", guid), body, cascade)
}

// FindProjects returns the projects matching searchString, "*" for all
func (m *Manager) FindProjects(ctx context.Context, searchString string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	req, err := requests.Search(body, searchString)
	if err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.FindElements(ctx, Service, "projects/by-search-string", req, TypeProjects, opts)
}

// GetProjectByGUID returns one project
func (m *Manager) GetProjectByGUID(ctx context.Context, guid string, body any) (egeria.Result[output.Element], error) {
	if err := egeria.RequireGUID("projectGUID", guid); err != nil {
		return egeria.Empty[output.Element](), err
	}
	return m.client.GetElementByGUID(ctx, Service, egeria.Path("projects/%s/retrieve", guid), body)
}

// GetProjectsByName returns the projects whose name is exactly name
func (m *Manager) GetProjectsByName(ctx context.Context, name string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	req, err := requests.Filter(body, name)
	if err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.FindElements(ctx, Service, "projects/by-name", req, TypeProjects, opts)
}

// GetProjectGraph returns a project with its mermaid graph
func (m *Manager) GetProjectGraph(ctx context.Context, guid string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	if err := egeria.RequireGUID("projectGUID", guid); err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.GetGraph(ctx, Service, egeria.Path("projects/%s/graph", guid), body, TypeProjects, opts)
}

// GetLinkedProjects lists the projects linked to an element, such as the projects a
// person sponsors or the sub-projects of a project
func (m *Manager) GetLinkedProjects(ctx context.Context, parentGUID string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	if err := egeria.RequireGUID("parentGUID", parentGUID); err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.GetRelated(ctx, Service, egeria.Path("metadata-elements/%s/projects", parentGUID), body, TypeProjects, opts)
}
