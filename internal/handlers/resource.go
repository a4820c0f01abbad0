package handlers

import (
	"Portfolio/internal/config"
	"Portfolio/internal/middleware"
	"Portfolio/internal/model"
	"Portfolio/internal/repo"
	"Portfolio/internal/service"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	imageField         = "image"
	defaultContentType = "application/octet-stream"
	multipartMemory    = 32 << 20
)

var errTooLarge = errors.New("request body too large")

// ResourceHandler обслуживает CRUD одной коллекции (блог или проекты).
type ResourceHandler[T repo.Document] struct {
	Service *service.ResourceService[T]
	Logger  *zap.SugaredLogger
	Config  *config.Config
	msgs    resourceMessages
}

// newResourceHandler создаёт хендлер коллекции
func newResourceHandler[T repo.Document](svc *service.ResourceService[T], msgs resourceMessages, logger *zap.SugaredLogger, cfg *config.Config) *ResourceHandler[T] {
	return &ResourceHandler[T]{Service: svc, Logger: logger, Config: cfg, msgs: msgs}
}

// Mount регистрирует маршруты коллекции на подроутере.
func (h *ResourceHandler[T]) Mount(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

type createResponse struct {
	Message string `json:"message"`
	PostID  string `json:"postId"`
}

// Create POST /<collection>, multipart с файлом image
func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := h.readInput(w, r)
	if !ok {
		return
	}

	id, err := h.Service.Create(r.Context(), in, identity(r))
	if err != nil {
		h.writeMutationError(w, err, h.msgs.deniedCreate, "Create")
		return
	}
	writeJSON(w, http.StatusCreated, createResponse{Message: h.msgs.created, PostID: id})
}

// List GET /<collection>
func (h *ResourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Service.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List: service error", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// Get GET /<collection>/{id}
func (h *ResourceHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, err, id, "Get")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Update PUT /<collection>/{id}
func (h *ResourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	in, ok := h.readInput(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	doc, err := h.Service.Update(r.Context(), id, in, identity(r))
	if err != nil {
		h.writeMutationError(w, err, h.msgs.deniedUpdate, "Update")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Delete DELETE /<collection>/{id}
func (h *ResourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Service.Delete(r.Context(), id, identity(r)); err != nil {
		h.writeMutationError(w, err, h.msgs.deniedDelete, "Delete")
		return
	}
	writeMessage(w, http.StatusOK, h.msgs.deleted)
}

// writeMutationError: и пропущенное поле, и отказ в доступе отдаются с 401.
func (h *ResourceHandler[T]) writeMutationError(w http.ResponseWriter, err error, denied, op string) {
	var fe *service.FieldError
	switch {
	case errors.As(err, &fe):
		h.Logger.Warnw(op+": missing field", "field", fe.Field)
		writeMessage(w, http.StatusUnauthorized, h.msgs.required[fe.Field])
	case errors.Is(err, service.ErrUnauthorized):
		h.Logger.Warnw(op + ": unauthorized")
		writeMessage(w, http.StatusUnauthorized, denied)
	default:
		h.writeLookupError(w, err, "", op)
	}
}

func (h *ResourceHandler[T]) writeLookupError(w http.ResponseWriter, err error, id, op string) {
	if errors.Is(err, service.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, h.msgs.notFound)
		return
	}
	h.Logger.Errorw(op+": service error", "id", id, "error", err)
	writeMessage(w, http.StatusInternalServerError, msgInternal)
}

// readInput разбирает тело запроса. При ошибке ответ уже записан.
// Запрос не в multipart не ошибка: поля читаются из формы, картинки просто нет.
func (h *ResourceHandler[T]) readInput(w http.ResponseWriter, r *http.Request) (service.ResourceInput, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody())

	var in service.ResourceInput
	err := r.ParseMultipartForm(multipartMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			h.Logger.Warnw("readInput: body too large", "limit", mbe.Limit)
			writeMessage(w, http.StatusRequestEntityTooLarge, errTooLarge.Error())
			return in, false
		}
		h.Logger.Warnw("readInput: invalid form", "error", err)
		writeMessage(w, http.StatusBadRequest, "Invalid form data")
		return in, false
	}

	in.Title = r.FormValue("title")
	in.Subtitle = r.FormValue("subtitle")
	in.Link = r.FormValue("link")

	img, err := formImage(r)
	if err != nil {
		h.Logger.Errorw("readInput: failed to read image", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgInternal)
		return in, false
	}
	in.Image = img
	return in, true
}

func (h *ResourceHandler[T]) maxBody() int64 {
	mb := 16
	if h.Config != nil && h.Config.UploadMaxMB > 0 {
		mb = h.Config.UploadMaxMB
	}
	return int64(mb) * 1024 * 1024
}

// formImage достаёт байты и MIME-тип файла image, nil — если файла нет.
func formImage(r *http.Request) (*model.Image, error) {
	if r.MultipartForm == nil || len(r.MultipartForm.File[imageField]) == 0 {
		return nil, nil
	}
	fh := r.MultipartForm.File[imageField][0]
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = defaultContentType
	}
	return &model.Image{Data: data, ContentType: ct}, nil
}

func identity(r *http.Request) model.IdentityClaims {
	claims, _ := middleware.GetIdentityFromContext(r.Context())
	return claims
}
