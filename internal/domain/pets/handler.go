package pets

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pets-api/internal/platform/logger"
	"pets-api/internal/platform/pagination"
	"pets-api/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20 // 1MB

var schema = validation.New()

func RegisterRoutes(r chi.Router, svc *Service, pageSize int) {
	if pageSize <= 0 {
		pageSize = 10
	}

	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc, pageSize))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
	})
}

type groupRequest struct {
	ScientificName *string `json:"scientific_name" validate:"required,notblank,max=50"`
}

type traitRequest struct {
	Name *string `json:"name" validate:"required,notblank,max=20"`
}

// createPetRequest es el cuerpo para registrar una mascota.
type createPetRequest struct {
	Name   *string        `json:"name" validate:"required,notblank,max=50"`
	Age    *int           `json:"age" validate:"required,min=-2147483648,max=2147483647"`
	Weight *float64       `json:"weight" validate:"required"`
	Sex    *string        `json:"sex" validate:"omitempty,oneof='Male' 'Female' 'Not Informed'" enums:"Male,Female,Not Informed"`
	Group  *groupRequest  `json:"group" validate:"required"`
	Traits []traitRequest `json:"traits" validate:"required,dive"`
}

// updatePetRequest: todos opcionales. traits con elementos reemplaza el set; [] no lo toca.
type updatePetRequest struct {
	Name   *string         `json:"name" validate:"omitempty,notblank,max=50"`
	Age    *int            `json:"age" validate:"omitempty,min=-2147483648,max=2147483647"`
	Weight *float64        `json:"weight"`
	Sex    *string         `json:"sex" validate:"omitempty,oneof='Male' 'Female' 'Not Informed'" enums:"Male,Female,Not Informed"`
	Group  *groupRequest   `json:"group"`
	Traits *[]traitRequest `json:"traits" validate:"omitempty,dive"`
}

type groupResponse struct {
	ID             int64     `json:"id"`
	ScientificName string    `json:"scientific_name"`
	CreatedAt      time.Time `json:"created_at"`
}

type traitResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// petResponse es la representación de una mascota devuelta por la API.
type petResponse struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Age    int             `json:"age"`
	Weight float64         `json:"weight"`
	Sex    Sex             `json:"sex"`
	Group  groupResponse   `json:"group"`
	Traits []traitResponse `json:"traits"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Valida el payload, resuelve (get-or-create, sin distinguir mayúsculas) el grupo y cada trait, y persiste la mascota.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} map[string]any "errores de validación por campo"
// @Router /pets/ [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		traitNames := make([]string, 0, len(req.Traits))
		for _, t := range req.Traits {
			traitNames = append(traitNames, *t.Name)
		}

		in := CreateInput{
			Name:       *req.Name,
			Age:        *req.Age,
			Weight:     *req.Weight,
			GroupName:  *req.Group.ScientificName,
			TraitNames: traitNames,
		}
		if req.Sex != nil {
			in.Sex = Sex(*req.Sex)
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Lista paginada de mascotas ordenadas por id. Con `trait` devuelve solo las que tienen ese trait.
// @Tags pets
// @Produce json
// @Param trait query string false "Nombre exacto del trait"
// @Param page query int false "Número de página (desde 1)"
// @Success 200 {object} pagination.Page[petResponse]
// @Failure 404 {object} detailResponse "Invalid page."
// @Router /pets/ [get]
func listPetsHandler(svc *Service, pageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pagination.ParsePage(r)
		if err != nil {
			writeDetail(w, http.StatusNotFound, "Invalid page.")
			return
		}

		items, count, err := svc.List(r.Context(), ListFilter{
			Trait:  r.URL.Query().Get("trait"),
			Limit:  pageSize,
			Offset: pagination.Offset(page, pageSize),
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if err := pagination.Check(page, pageSize, count); err != nil {
			writeDetail(w, http.StatusNotFound, "Invalid page.")
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, pagination.New(r, page, pageSize, count, out))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} detailResponse
// @Router /pets/{petID}/ [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			writeNotFound(w)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Tags pets
// @Param petID path int true "ID de la mascota"
// @Success 204
// @Failure 404 {object} detailResponse
// @Router /pets/{petID}/ [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			writeNotFound(w)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota (parcial)
// @Description Solo se modifican los campos enviados. group/traits se vuelven a resolver si vienen; traits reemplaza el set.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {object} map[string]any "errores de validación por campo"
// @Failure 404 {object} detailResponse
// @Router /pets/{petID}/ [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			writeNotFound(w)
			return
		}

		// 404 antes que 400: primero que exista.
		current, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		var req updatePetRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		in := UpdateInput{
			Name:   req.Name,
			Age:    req.Age,
			Weight: req.Weight,
		}
		if req.Sex != nil {
			sex := Sex(*req.Sex)
			in.Sex = &sex
		}
		if req.Group != nil {
			in.GroupName = req.Group.ScientificName
		}
		if req.Traits != nil && len(*req.Traits) > 0 {
			names := make([]string, 0, len(*req.Traits))
			for _, t := range *req.Traits {
				names = append(names, *t.Name)
			}
			in.TraitNames = &names
		}

		updated, err := svc.Apply(r.Context(), current, in)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

// decodeAndValidate decodifica el body en dst y corre las reglas del schema.
// Si algo falla ya escribió la respuesta 400 y devuelve false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "JSON parse error - "+err.Error())
		return false
	}

	// Body vacío se trata como {} (así el cliente recibe los "required").
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		if verrs, ok := validation.FromDecodeError(err); ok {
			writeJSON(w, http.StatusBadRequest, verrs)
			return false
		}
		writeDetail(w, http.StatusBadRequest, "JSON parse error - "+err.Error())
		return false
	}

	// null explícito no equivale a omitir el campo.
	nulls := validation.Nulls(raw, dst)

	if err := schema.Struct(dst); err != nil {
		var verrs validation.Errors
		if !errors.As(err, &verrs) {
			logger.FromContext(r.Context()).Error("validator misuse", map[string]any{"err": err})
			writeDetail(w, http.StatusInternalServerError, "A server error occurred.")
			return false
		}
		writeJSON(w, http.StatusBadRequest, verrs.Merge(nulls))
		return false
	}
	if nulls != nil {
		writeJSON(w, http.StatusBadRequest, nulls)
		return false
	}
	return true
}

func petIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, "petID")), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeNotFound(w)
	case errors.Is(err, ErrInvalidInput):
		// El schema ya filtra casi todo; esto cubre lo que solo el service detecta.
		writeDetail(w, http.StatusBadRequest, "Invalid input.")
	default:
		logger.FromContext(r.Context()).Error("pets request failed", map[string]any{
			"err":    err,
			"method": r.Method,
			"path":   r.URL.Path,
		})
		writeDetail(w, http.StatusInternalServerError, "A server error occurred.")
	}
}

func toPetResponse(p Pet) petResponse {
	ts := make([]traitResponse, 0, len(p.Traits))
	for _, t := range p.Traits {
		ts = append(ts, traitResponse{
			ID:        t.ID,
			Name:      t.Name,
			CreatedAt: t.CreatedAt,
		})
	}

	return petResponse{
		ID:     p.ID,
		Name:   p.Name,
		Age:    p.Age,
		Weight: p.Weight,
		Sex:    p.Sex,
		Group: groupResponse{
			ID:             p.Group.ID,
			ScientificName: p.Group.ScientificName,
			CreatedAt:      p.Group.CreatedAt,
		},
		Traits: ts,
	}
}

func writeNotFound(w http.ResponseWriter) {
	writeDetail(w, http.StatusNotFound, "Not found")
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
