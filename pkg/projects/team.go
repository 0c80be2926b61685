package projects

import (
	"context"

	"github.com/stacklok/egeria-client-go/pkg/egeria"
	"github.com/stacklok/egeria-client-go/pkg/output"
	"github.com/stacklok/egeria-client-go/pkg/requests"
)

// GetProjectTeam lists the actors in a project's team
func (m *Manager) GetProjectTeam(ctx context.Context, projectGUID string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	if err := egeria.RequireGUID("projectGUID", projectGUID); err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.GetRelated(ctx, Service, egeria.Path("projects/%s/team", projectGUID), body, TypeProjectTeam, opts)
}

// AddToProjectTeam adds an actor to a project's team
func (m *Manager) AddToProjectTeam(ctx context.Context, projectGUID, actorGUID string, body any) error {
	if err := egeria.RequireGUIDs("projectGUID", projectGUID, "actorGUID", actorGUID); err != nil {
		return err
	}
	return m.client.Attach(ctx, Service, egeria.Path("projects/%s/team-members/%s/attach", projectGUID, actorGUID),
		body, requests.ClassProjectTeamProperties)
}

// RemoveFromProjectTeam removes an actor from a project's team
func (m *Manager) RemoveFromProjectTeam(ctx context.Context, projectGUID, actorGUID string, body any) error {
	if err := egeria.RequireGUIDs("projectGUID", projectGUID, "actorGUID", actorGUID); err != nil {
		return err
	}
	return m.client.Detach(ctx, Service, egeria.Path("projects/%s/team-members/%s/detach", projectGUID, actorGUID), body)
}

// SetupProjectManagementRole makes a person role the manager of a project
func (m *Manager) SetupProjectManagementRole(ctx context.Context, projectGUID, roleGUID string, body any) error {
	if err := egeria.RequireGUIDs("projectGUID", projectGUID, "projectRoleGUID", roleGUID); err != nil {
		return err
	}
	return m.client.Attach(ctx, Service,
		egeria.Path("projects/%s/project-management-roles/%s/attach", projectGUID, roleGUID), body)
}

// LinkProjectDependency records that one project depends on another
func (m *Manager) LinkProjectDependency(ctx context.Context, projectGUID, dependsOnGUID string, body any) error {
	if err := egeria.RequireGUIDs("projectGUID", projectGUID, "dependsOnProjectGUID", dependsOnGUID); err != nil {
		return err
	}
	return m.client.Attach(ctx, Service,
		egeria.Path("projects/%s/project-dependencies/%s/attach", projectGUID, dependsOnGUID),
		body, requests.ClassProjectDependencyProperties)
}

// DetachProjectDependency removes a project dependency
func (m *Manager) DetachProjectDependency(ctx context.Context, projectGUID, dependsOnGUID string, body any) error {
	if err := egeria.RequireGUIDs("projectGUID", projectGUID, "dependsOnProjectGUID", dependsOnGUID); err != nil {
		return err
	}
	return m.client.Detach(ctx, Service,
		egeria.Path("projects/%s/project-dependencies/%s/detach", projectGUID, dependsOnGUID), body)
}

// LinkProjectHierarchy makes one project the parent of another
func (m *Manager) LinkProjectHierarchy(ctx context.Context, parentGUID, childGUID string, body any) error {
	if err := egeria.RequireGUIDs("projectGUID", parentGUID, "managedProjectGUID", childGUID); err != nil {
		return err
	}
	return m.client.Attach(ctx, Service,
		egeria.Path("projects/%s/project-hierarchies/%s/attach", parentGUID, childGUID),
		body, requests.ClassProjectHierarchyProperties)
}

// DetachProjectHierarchy removes a parent/child link between projects
func (m *Manager) DetachProjectHierarchy(ctx context.Context, parentGUID, childGUID string, body any) error {
	if err := egeria.RequireGUIDs("projectGUID", parentGUID, "managedProjectGUID", childGUID); err != nil {
		return err
	}
	return m.client.Detach(ctx, Service,
		egeria.Path("projects/%s/project-hierarchies/%s/detach", parentGUID, childGUID), body)
}
