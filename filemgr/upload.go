package filemgr

import (
	"net/http"

	"tabu/config"
	"tabu/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	cfg     *config.Config
	manager *Manager
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg, manager: NewManager(cfg.UploadDir)}
}

// POST /api/uploads/:entity
// Multipart upload with field "image". The returned URL path is served
// from the static file route.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	entity, ok := ValidEntity(ps.ByName("entity"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Tipo de entidad no válido")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "No se pudo procesar el formulario")
		return
	}

	name, thumb, err := h.manager.SaveFormImage(r.MultipartForm, "image", entity)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success":  true,
		"filename": name,
		"url":      "/uploads/" + string(entity) + "/" + name,
		"thumbUrl": "/uploads/" + string(entity) + "/thumbs/" + thumb,
	})
}
