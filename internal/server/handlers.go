package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "risecli/internal/errors"
	"risecli/internal/validation"
)

// listResponse is the body of GET /list
type listResponse struct {
	Files []string `json:"files"`
}

// handleList returns the names of the dataset archives in the data directory.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	archives, err := s.discovery.FindDatasetArchives(".")
	if err != nil {
		s.logger.ErrorContext(r.Context(), "failed to list datasets", "error", err)
		render.Render(w, r, apierrors.ErrFileSystem)
		return
	}

	names := make([]string, 0, len(archives))
	for _, archive := range archives {
		names = append(names, archive.Name)
	}

	render.JSON(w, r, listResponse{Files: names})
}

// handleDownload streams a dataset archive as an attachment.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := validation.DatasetID(id); err != nil {
		render.Render(w, r, apierrors.ErrInvalidDatasetID)
		return
	}

	name := validation.NormalizeDatasetID(id)
	path := filepath.Join(s.dataDir, name)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			render.Render(w, r, apierrors.DatasetNotFoundWithID(id))
			return
		}
		s.logger.ErrorContext(r.Context(), "failed to stat dataset", "error", err, "path", path)
		render.Render(w, r, apierrors.ErrFileSystem)
		return
	}

	file, err := os.Open(path)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "failed to open dataset", "error", err, "path", path)
		render.Render(w, r, apierrors.ErrFileSystem)
		return
	}
	defer file.Close()

	s.logger.InfoContext(r.Context(), "serving dataset",
		slog.String("dataset_id", id),
		slog.Int64("size", info.Size()))

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size(), 10))
	http.ServeContent(w, r, name, info.ModTime(), file)
}
