package http

import (
	"net/http"
	"strconv"

	"github.com/kawerewagaba/bucketlist/internal/bucketlist/domain"
	"github.com/kawerewagaba/bucketlist/internal/bucketlist/service"
	"github.com/kawerewagaba/bucketlist/pkg/apiclient"
	"github.com/kawerewagaba/bucketlist/pkg/httpx"
	"github.com/kawerewagaba/bucketlist/pkg/slogx"
)

// BucketlistsHandler serves the /bucketlists collection and its members. The
// authentication middleware has already placed the principal id in the
// request context by the time any of these run.
type BucketlistsHandler struct {
	BucketlistService *service.BucketlistService
}

// HandleList godoc
//
//	@Summary		List bucketlists
//	@Description	Returns one page of the caller's bucketlists, newest first.
//	@Tags			Bucketlists
//	@Produce		json
//	@Param			q		query		string	false	"Filter by name substring"
//	@Param			page	query		int		false	"1-based page number"
//	@Param			limit	query		int		false	"Rows per page (capped server-side)"
//	@Success		200		{object}	apiclient.BucketlistPage
//	@Failure		401		{object}	apiclient.ErrorResponse
//	@Security		BearerAuth
//	@Router			/bucketlists [get].
func (h *BucketlistsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	query := r.URL.Query().Get("q")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.BucketlistService.List(ctx, userID, query, domain.Page{
		Number: page,
		Limit:  limit,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := apiclient.BucketlistPage{
		Bucketlists: make([]apiclient.Bucketlist, 0, len(result.Bucketlists)),
		Page:        result.Page,
		Limit:       result.Limit,
		Total:       result.Total,
	}
	for _, b := range result.Bucketlists {
		out.Bucketlists = append(out.Bucketlists, toWireBucketlist(b))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Create a bucketlist
//	@Tags			Bucketlists
//	@Accept			json
//	@Produce		json
//	@Param			body	body		apiclient.BucketlistRequest	true	"Bucketlist name"
//	@Success		201		{object}	apiclient.Bucketlist
//	@Failure		400		{object}	apiclient.ErrorResponse
//	@Failure		401		{object}	apiclient.ErrorResponse
//	@Failure		409		{object}	apiclient.ErrorResponse	"Name already in use"
//	@Security		BearerAuth
//	@Router			/bucketlists [post].
func (h *BucketlistsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	var req apiclient.BucketlistRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "request body must be valid JSON")
		return
	}

	b, err := h.BucketlistService.Create(ctx, userID, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slogx.FromContext(ctx).Info("bucketlist created", "user_id", userID, "bucketlist_id", b.ID)
	httpx.WriteJSON(w, http.StatusCreated, toWireBucketlist(b))
}

// HandleGet godoc
//
//	@Summary		Get a bucketlist
//	@Description	Returns the bucketlist with its items. A bucketlist owned by
//	@Description	someone else is indistinguishable from a missing one.
//	@Tags			Bucketlists
//	@Produce		json
//	@Param			id	path		int	true	"Bucketlist id"
//	@Success		200	{object}	apiclient.Bucketlist
//	@Failure		401	{object}	apiclient.ErrorResponse
//	@Failure		404	{object}	apiclient.ErrorResponse
//	@Security		BearerAuth
//	@Router			/bucketlists/{id} [get].
func (h *BucketlistsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	b, err := h.BucketlistService.Get(ctx, userID, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := toWireBucketlist(b)
	out.Items = make([]apiclient.Item, 0, len(b.Items))
	for _, it := range b.Items {
		out.Items = append(out.Items, toWireItem(it))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdate godoc
//
//	@Summary		Rename a bucketlist
//	@Tags			Bucketlists
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Bucketlist id"
//	@Param			body	body		apiclient.BucketlistRequest	true	"New name"
//	@Success		200		{object}	apiclient.Bucketlist
//	@Failure		400		{object}	apiclient.ErrorResponse
//	@Failure		401		{object}	apiclient.ErrorResponse
//	@Failure		404		{object}	apiclient.ErrorResponse
//	@Failure		409		{object}	apiclient.ErrorResponse
//	@Security		BearerAuth
//	@Router			/bucketlists/{id} [put].
func (h *BucketlistsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req apiclient.BucketlistRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "request body must be valid JSON")
		return
	}

	b, err := h.BucketlistService.Rename(ctx, userID, id, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireBucketlist(b))
}

// HandleDelete godoc
//
//	@Summary		Delete a bucketlist
//	@Description	Removes the bucketlist and everything in it.
//	@Tags			Bucketlists
//	@Produce		json
//	@Param			id	path		int	true	"Bucketlist id"
//	@Success		200	{object}	apiclient.MessageResponse
//	@Failure		401	{object}	apiclient.ErrorResponse
//	@Failure		404	{object}	apiclient.ErrorResponse
//	@Security		BearerAuth
//	@Router			/bucketlists/{id} [delete].
func (h *BucketlistsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.BucketlistService.Delete(ctx, userID, id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	slogx.FromContext(ctx).Info("bucketlist deleted", "user_id", userID, "bucketlist_id", id)
	httpx.WriteJSON(w, http.StatusOK, apiclient.MessageResponse{
		Message: "Bucketlist deleted.",
	})
}

// pathID parses a positive integer path value; a garbage id can't exist, so
// it reports 404 rather than 400.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteJSON(w, http.StatusNotFound, apiclient.ErrorResponse{
			Error:            apiclient.ErrorCodeNotFound,
			ErrorDescription: "resource not found",
		})
		return 0, false
	}
	return id, true
}

func toWireBucketlist(b domain.Bucketlist) apiclient.Bucketlist {
	return apiclient.Bucketlist{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toWireItem(it domain.Item) apiclient.Item {
	return apiclient.Item{
		ID:           it.ID,
		BucketlistID: it.BucketlistID,
		Name:         it.Name,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}
