package http

import (
	"net/http"

	"github.com/kawerewagaba/bucketlist/internal/bucketlist/service"
	"github.com/kawerewagaba/bucketlist/pkg/apiclient"
	"github.com/kawerewagaba/bucketlist/pkg/httpx"
	"github.com/kawerewagaba/bucketlist/pkg/slogx"
)

// ItemsHandler serves items nested under a bucketlist. Resolving the parent
// bucketlist through the owner scope happens in the service, so a foreign
// bucketlist id 404s before any item is touched.
type ItemsHandler struct {
	ItemService *service.ItemService
}

// HandleList godoc
//
//	@Summary		List items
//	@Tags			Items
//	@Produce		json
//	@Param			id	path		int	true	"Bucketlist id"
//	@Success		200	{array}		apiclient.Item
//	@Failure		401	{object}	apiclient.ErrorResponse
//	@Failure		404	{object}	apiclient.ErrorResponse	"Unknown bucketlist"
//	@Security		BearerAuth
//	@Router			/bucketlists/{id}/items [get].
func (h *ItemsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	bucketlistID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	items, err := h.ItemService.List(ctx, userID, bucketlistID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]apiclient.Item, 0, len(items))
	for _, it := range items {
		out = append(out, toWireItem(it))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Add an item
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Bucketlist id"
//	@Param			body	body		apiclient.ItemRequest	true	"Item name"
//	@Success		201		{object}	apiclient.Item
//	@Failure		400		{object}	apiclient.ErrorResponse
//	@Failure		401		{object}	apiclient.ErrorResponse
//	@Failure		404		{object}	apiclient.ErrorResponse
//	@Failure		409		{object}	apiclient.ErrorResponse	"Item name already in this bucketlist"
//	@Security		BearerAuth
//	@Router			/bucketlists/{id}/items [post].
func (h *ItemsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	bucketlistID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req apiclient.ItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "request body must be valid JSON")
		return
	}

	it, err := h.ItemService.Add(ctx, userID, bucketlistID, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slogx.FromContext(ctx).Info("item added", "user_id", userID, "bucketlist_id", bucketlistID, "item_id", it.ID)
	httpx.WriteJSON(w, http.StatusCreated, toWireItem(it))
}

// HandleGet godoc
//
//	@Summary		Get an item
//	@Tags			Items
//	@Produce		json
//	@Param			id		path		int	true	"Bucketlist id"
//	@Param			item_id	path		int	true	"Item id"
//	@Success		200		{object}	apiclient.Item
//	@Failure		401		{object}	apiclient.ErrorResponse
//	@Failure		404		{object}	apiclient.ErrorResponse
//	@Security		BearerAuth
//	@Router			/bucketlists/{id}/items/{item_id} [get].
func (h *ItemsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	bucketlistID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, "item_id")
	if !ok {
		return
	}

	it, err := h.ItemService.Get(ctx, userID, bucketlistID, itemID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireItem(it))
}

// HandleUpdate godoc
//
//	@Summary		Rename an item
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Bucketlist id"
//	@Param			item_id	path		int						true	"Item id"
//	@Param			body	body		apiclient.ItemRequest	true	"New name"
//	@Success		200		{object}	apiclient.Item
//	@Failure		400		{object}	apiclient.ErrorResponse
//	@Failure		401		{object}	apiclient.ErrorResponse
//	@Failure		404		{object}	apiclient.ErrorResponse
//	@Failure		409		{object}	apiclient.ErrorResponse
//	@Security		BearerAuth
//	@Router			/bucketlists/{id}/items/{item_id} [put].
func (h *ItemsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	bucketlistID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, "item_id")
	if !ok {
		return
	}

	var req apiclient.ItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "request body must be valid JSON")
		return
	}

	it, err := h.ItemService.Rename(ctx, userID, bucketlistID, itemID, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireItem(it))
}

// HandleDelete godoc
//
//	@Summary		Delete an item
//	@Tags			Items
//	@Produce		json
//	@Param			id		path		int	true	"Bucketlist id"
//	@Param			item_id	path		int	true	"Item id"
//	@Success		200		{object}	apiclient.MessageResponse
//	@Failure		401		{object}	apiclient.ErrorResponse
//	@Failure		404		{object}	apiclient.ErrorResponse
//	@Security		BearerAuth
//	@Router			/bucketlists/{id}/items/{item_id} [delete].
func (h *ItemsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromCtx(ctx)

	bucketlistID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, "item_id")
	if !ok {
		return
	}

	if err := h.ItemService.Delete(ctx, userID, bucketlistID, itemID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, apiclient.MessageResponse{
		Message: "Item deleted.",
	})
}
