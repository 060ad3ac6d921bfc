package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cryptly-dev/cryptly/internal/core/domain"
	"github.com/cryptly-dev/cryptly/internal/core/service"
	"github.com/cryptly-dev/cryptly/pkg/coresdk"
	"github.com/cryptly-dev/cryptly/pkg/httpx"
	"github.com/cryptly-dev/cryptly/pkg/slogx"
)

type ProjectsHandler struct {
	ProjectService *service.ProjectService
}

// writeAccessDenied collapses every authorization failure into one opaque
// response so callers cannot distinguish "no such project" from "not a
// member" from "role too low".
func writeAccessDenied(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusForbidden, coresdk.ErrorResponse{
		Error:            "access_denied",
		ErrorDescription: "Access denied",
	})
}

// HandleCreate godoc
//
//	@Summary		Create Project Endpoint
//	@Description	Create a new project. The caller becomes the project's first Admin.
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Param			request	body		coresdk.CreateProjectRequest	true	"Project to create"
//	@Success		201		{object}	coresdk.ProjectResponse			"id, name, encrypted_secrets"
//	@Failure		400		{object}	coresdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	coresdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/projects [post].
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req coresdk.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, coresdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	userID := httpx.UserIDFromContext(ctx)

	project, err := h.ProjectService.CreateProject(ctx, userID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidProjectRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, coresdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "name is required",
			})
		default:
			log.Error("failed to create project", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, coresdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to create project",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, coresdk.ProjectResponse{
		ID:               project.ID,
		Name:             project.Name,
		EncryptedSecrets: project.EncryptedSecrets,
	})
}

// HandleGet godoc
//
//	@Summary		Get Project Endpoint
//	@Description	Fetch a project's metadata and encrypted secrets payload. Requires Read access.
//	@Tags			Projects
//	@Produce		json
//	@Param			id	path		string					true	"Project ID"
//	@Success		200	{object}	coresdk.ProjectResponse	"id, name, encrypted_secrets"
//	@Failure		403	{object}	coresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id} [get].
func (h *ProjectsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	projectID := r.PathValue("id")

	project, err := h.ProjectService.GetProject(ctx, userID, projectID)
	if err != nil {
		if service.IsAccessDenied(err) {
			writeAccessDenied(w)
			return
		}
		log.Error("failed to get project", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, coresdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to get project",
		})
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, coresdk.ProjectResponse{
		ID:               project.ID,
		Name:             project.Name,
		EncryptedSecrets: project.EncryptedSecrets,
	})
}

// HandleUpdateSecrets godoc
//
//	@Summary		Update Project Secrets Endpoint
//	@Description	Replace the project's encrypted secrets payload. The server never inspects the ciphertext. Requires Write access.
//	@Tags			Projects
//	@Accept			json
//	@Param			id		path	string							true	"Project ID"
//	@Param			request	body	coresdk.UpdateSecretsRequest	true	"New encrypted payload"
//	@Success		204
//	@Failure		400	{object}	coresdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	coresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id}/secrets [put].
func (h *ProjectsHandler) HandleUpdateSecrets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req coresdk.UpdateSecretsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, coresdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	projectID := r.PathValue("id")

	err := h.ProjectService.UpdateSecrets(ctx, userID, projectID, req.EncryptedSecrets)
	if err != nil {
		if service.IsAccessDenied(err) {
			writeAccessDenied(w)
			return
		}
		log.Error("failed to update secrets", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, coresdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to update secrets",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListMembers godoc
//
//	@Summary		List Project Members Endpoint
//	@Description	List the project's members and their roles. Requires Read access.
//	@Tags			Projects
//	@Produce		json
//	@Param			id	path		string					true	"Project ID"
//	@Success		200	{object}	coresdk.MembersResponse	"members"
//	@Failure		403	{object}	coresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id}/members [get].
func (h *ProjectsHandler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	projectID := r.PathValue("id")

	members, err := h.ProjectService.Members(ctx, userID, projectID)
	if err != nil {
		if service.IsAccessDenied(err) {
			writeAccessDenied(w)
			return
		}
		log.Error("failed to list members", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, coresdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list members",
		})
		return
	}

	out := make(map[string]string, len(members))
	for id, role := range members {
		out[id] = role.String()
	}
	httpx.WriteJSON(w, http.StatusOK, coresdk.MembersResponse{Members: out})
}

// HandleSetMemberRole godoc
//
//	@Summary		Set Member Role Endpoint
//	@Description	Change an existing member's role. Demoting the last Admin is rejected. Requires Admin access.
//	@Tags			Projects
//	@Accept			json
//	@Param			id		path	string							true	"Project ID"
//	@Param			userId	path	string							true	"Member user ID"
//	@Param			request	body	coresdk.SetMemberRoleRequest	true	"New role"
//	@Success		204
//	@Failure		400	{object}	coresdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	coresdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	coresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id}/members/{userId} [put].
func (h *ProjectsHandler) HandleSetMemberRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req coresdk.SetMemberRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, coresdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, coresdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "role must be one of: read, write, admin",
		})
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	projectID := r.PathValue("id")
	memberID := r.PathValue("userId")

	err = h.ProjectService.SetMemberRole(ctx, userID, projectID, memberID, role)
	if err != nil {
		switch {
		case service.IsAccessDenied(err):
			writeAccessDenied(w)
		case errors.Is(err, service.ErrMemberNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, coresdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "Member not found",
			})
		case errors.Is(err, service.ErrLastAdmin):
			httpx.WriteJSON(w, http.StatusConflict, coresdk.ErrorResponse{
				Error:            "conflict",
				ErrorDescription: "Project must keep at least one admin",
			})
		default:
			log.Error("failed to set member role", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, coresdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to set member role",
			})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleRemoveMember godoc
//
//	@Summary		Remove Member Endpoint
//	@Description	Remove a member from the project. Removing the last Admin is rejected. Requires Admin access.
//	@Tags			Projects
//	@Param			id		path	string	true	"Project ID"
//	@Param			userId	path	string	true	"Member user ID"
//	@Success		204
//	@Failure		403	{object}	coresdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	coresdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	coresdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id}/members/{userId} [delete].
func (h *ProjectsHandler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	projectID := r.PathValue("id")
	memberID := r.PathValue("userId")

	err := h.ProjectService.RemoveMember(ctx, userID, projectID, memberID)
	if err != nil {
		switch {
		case service.IsAccessDenied(err):
			writeAccessDenied(w)
		case errors.Is(err, service.ErrMemberNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, coresdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "Member not found",
			})
		case errors.Is(err, service.ErrLastAdmin):
			httpx.WriteJSON(w, http.StatusConflict, coresdk.ErrorResponse{
				Error:            "conflict",
				ErrorDescription: "Project must keep at least one admin",
			})
		default:
			log.Error("failed to remove member", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, coresdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to remove member",
			})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
