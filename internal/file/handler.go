package file

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	errorx "github.com/ferdiebergado/templat/internal/pkg/error"
	"github.com/ferdiebergado/templat/internal/pkg/message"
	"github.com/ferdiebergado/templat/internal/pkg/web"
	"github.com/ferdiebergado/templat/internal/platform/storage"
)

const (
	PathKey    = "key"
	PathFolder = "folder"

	QueryPrefix    = "prefix"
	QueryExpiresIn = "expires_in"
)

var errInvalidExpiry = errors.New("file: expires_in out of range")

// maxExpiresIn is the largest expires_in accepted, in seconds.
var maxExpiresIn = int64(storage.MaxLinkExpiry / time.Second)

// Handler exposes one bucket of the object store over HTTP.
type Handler struct {
	store    storage.ObjectStore
	bucket   string
	maxBytes int64
	linkTTL  time.Duration
}

// NewHandler serves objects of bucket. Uploads larger than maxBytes are rejected.
// linkTTL is the lifetime of download links when the request does not set one.
func NewHandler(store storage.ObjectStore, bucket string, maxBytes int64, linkTTL time.Duration) *Handler {
	if linkTTL <= 0 {
		linkTTL = storage.DefaultLinkExpiry
	}
	linkTTL = min(linkTTL, storage.MaxLinkExpiry)
	return &Handler{
		store:    store,
		bucket:   bucket,
		maxBytes: maxBytes,
		linkTTL:  linkTTL,
	}
}

type UploadResponse struct {
	Key         string `json:"key"`
	Size        int    `json:"size"`
	ContentType string `json:"content_type"`
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue(PathKey)

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			web.RespondRequestEntityTooLarge(w, err, message.InvalidInput, nil)
			return
		}
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	contentType := r.Header.Get(web.HeaderContentType)
	if contentType == "" {
		contentType = storage.DefaultContentType
	}

	if err := h.store.PutObject(r.Context(), h.bucket, key, data, contentType); err != nil {
		h.fail(w, err)
		return
	}

	slog.Info("File uploaded.", "bucket", h.bucket, "key", key, "size", len(data))
	msg := message.UploadSuccess
	web.RespondCreated(w, &msg, &UploadResponse{
		Key:         key,
		Size:        len(data),
		ContentType: contentType,
	})
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue(PathKey)

	obj, err := h.store.GetObject(r.Context(), h.bucket, key)
	if err != nil {
		h.fail(w, err)
		return
	}

	w.Header().Set(web.HeaderContentType, obj.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(obj.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(obj.Content); err != nil {
		slog.Error("Failed to write object.", "key", key, "reason", err)
	}
}

type ListResponse struct {
	Objects []storage.ObjectInfo `json:"objects"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get(QueryPrefix)

	objects, err := h.store.ListObjects(r.Context(), h.bucket, prefix)
	if err != nil {
		h.fail(w, err)
		return
	}

	if objects == nil {
		objects = []storage.ObjectInfo{}
	}
	web.RespondOK(w, nil, &ListResponse{Objects: objects})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue(PathKey)

	if err := h.store.DeleteObject(r.Context(), h.bucket, key); err != nil {
		h.fail(w, err)
		return
	}

	msg := message.DeleteSuccess
	web.RespondOK[struct{}](w, &msg, nil)
}

func (h *Handler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	folder := r.PathValue(PathFolder)

	if err := h.store.DeleteFolder(r.Context(), h.bucket, folder); err != nil {
		h.fail(w, err)
		return
	}

	slog.Info("Folder deleted.", "bucket", h.bucket, "folder", folder)
	msg := message.DeleteSuccess
	web.RespondOK[struct{}](w, &msg, nil)
}

type LinkResponse struct {
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expires_in"`
}

func (h *Handler) Link(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue(PathKey)

	ttl := h.linkTTL
	if raw := r.URL.Query().Get(QueryExpiresIn); raw != "" {
		secs, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || secs <= 0 || secs > maxExpiresIn {
			web.RespondBadRequest(w, fmt.Errorf("%w: %q", errInvalidExpiry, raw), message.InvalidInput, map[string]string{
				QueryExpiresIn: fmt.Sprintf("must be between 1 and %d seconds", maxExpiresIn),
			})
			return
		}
		ttl = time.Duration(secs) * time.Second
	}

	url, err := h.store.GenerateDownloadLink(r.Context(), h.bucket, key, ttl)
	if err != nil {
		h.fail(w, err)
		return
	}

	web.RespondOK(w, nil, &LinkResponse{
		URL:       url,
		ExpiresIn: int64(ttl / time.Second),
	})
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrEmptyKey), errors.Is(err, storage.ErrEmptyFolder):
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
	case errors.Is(err, storage.ErrNotFound):
		web.RespondNotFound(w, err, message.NotFound, nil)
	case errorx.IsContextError(err):
		web.RespondRequestTimeout(w, err, message.RequestTimeout, nil)
	default:
		web.RespondInternalServerError(w, err)
	}
}
