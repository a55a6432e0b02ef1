package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/go-chi/chi/v5"
)

var exampleItem = models.ExampleItem{
	Name: "Alice1",
	Age:  30,
	City: "New York",
}

func (h *Handler) exampleList(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, exampleItem, http.StatusOK)
}

func (h *Handler) exampleByID(w http.ResponseWriter, r *http.Request) {
	itemID, err := intParam("item_id", chi.URLParam(r, "item_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ExampleItemByID{ItemID: itemID, Name: exampleItem.Name}, http.StatusOK)
}
