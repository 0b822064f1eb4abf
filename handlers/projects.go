package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
	"vitrine/database"
	"vitrine/models"
	"vitrine/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectStore is the record-store surface the project handlers need.
// *database.DB implements it.
type ProjectStore interface {
	CreateProject(ctx context.Context, p models.NewProject) (*models.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, u models.ProjectUpdate) (*models.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

func ListProjects(store ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := store.ListProjects(c.Request.Context())
		if err != nil {
			log.Printf("ListProjects: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch projects"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "projects": projects})
	}
}

func GetProject(store ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid project ID"})
			return
		}

		project, err := store.GetProject(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "project not found"})
				return
			}
			log.Printf("GetProject: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch project"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
	}
}

// CreateProject validates the multipart form, uploads the image, and
// persists the record. An upload whose record write fails is deleted
// again so the asset store never holds orphans for failed creates.
func CreateProject(store ProjectStore, assets storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		title := strings.TrimSpace(c.PostForm("title"))
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "title is required"})
			return
		}

		link, err := parseLink(c.PostForm("link"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "please provide a valid URL"})
			return
		}

		category, err := parseCategory(c.PostForm("category"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		var date time.Time
		if raw := c.PostForm("date"); raw != "" {
			date, err = parseDate(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid date"})
				return
			}
		}

		data, contentType, err := readImageFile(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "image is required"})
			return
		}

		asset, err := assets.Upload(ctx, data, contentType)
		if err != nil {
			status, message := uploadError(err)
			c.JSON(status, gin.H{"success": false, "message": message})
			return
		}

		project, err := store.CreateProject(ctx, models.NewProject{
			Title:    title,
			ImageURL: asset.URL,
			ImageKey: asset.Key,
			Date:     date,
			Link:     link,
			Category: category,
		})
		if err != nil {
			// Best-effort compensation: the record write failed, so
			// reclaim the object we just uploaded.
			if delErr := assets.Delete(ctx, asset.Key); delErr != nil {
				log.Printf("CreateProject: failed to clean up orphaned upload %s: %v", asset.Key, delErr)
			}
			log.Printf("CreateProject: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to create project"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "project": project})
	}
}

// UpdateProject applies a partial update. When a new image is
// supplied, the old object is deleted only after the record durably
// references the new one; a failed record write deletes the new
// upload and leaves the old image untouched.
func UpdateProject(store ProjectStore, assets storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid project ID"})
			return
		}

		existing, err := store.GetProject(ctx, id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "project not found"})
				return
			}
			log.Printf("UpdateProject: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to update project"})
			return
		}

		var update models.ProjectUpdate

		if raw, ok := c.GetPostForm("title"); ok {
			title := strings.TrimSpace(raw)
			if title == "" {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "title is required"})
				return
			}
			update.Title = &title
		}

		if raw, ok := c.GetPostForm("link"); ok {
			if strings.TrimSpace(raw) == "" {
				// Submitting an empty link removes it from the record.
				update.UnsetLink = true
			} else {
				link, err := parseLink(raw)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "please provide a valid URL"})
					return
				}
				update.Link = link
			}
		}

		if raw := c.PostForm("category"); raw != "" {
			category, err := parseCategory(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			update.Category = category
		}

		if raw := c.PostForm("date"); raw != "" {
			date, err := parseDate(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid date"})
				return
			}
			update.Date = &date
		}

		var newAsset *storage.Asset
		if data, contentType, err := readImageFile(c); err == nil {
			newAsset, err = assets.Upload(ctx, data, contentType)
			if err != nil {
				status, message := uploadError(err)
				c.JSON(status, gin.H{"success": false, "message": message})
				return
			}
			update.ImageURL = &newAsset.URL
			update.ImageKey = &newAsset.Key
		}

		project, err := store.UpdateProject(ctx, id, update)
		if err != nil {
			if newAsset != nil {
				if delErr := assets.Delete(ctx, newAsset.Key); delErr != nil {
					log.Printf("UpdateProject: failed to clean up orphaned upload %s: %v", newAsset.Key, delErr)
				}
			}
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "project not found"})
				return
			}
			log.Printf("UpdateProject: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to update project"})
			return
		}

		// The record now references the new object, so the old one can go.
		if newAsset != nil && existing.ImageKey != newAsset.Key {
			if delErr := assets.Delete(ctx, existing.ImageKey); delErr != nil {
				log.Printf("UpdateProject: failed to delete replaced image %s: %v", existing.ImageKey, delErr)
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
	}
}

// DeleteProject removes the record and its image. A failed image
// delete is logged and does not block record removal, so records
// never become un-deletable.
func DeleteProject(store ProjectStore, assets storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid project ID"})
			return
		}

		project, err := store.GetProject(ctx, id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "project not found"})
				return
			}
			log.Printf("DeleteProject: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to delete project"})
			return
		}

		if delErr := assets.Delete(ctx, project.ImageKey); delErr != nil {
			log.Printf("DeleteProject: failed to delete image %s, proceeding: %v", project.ImageKey, delErr)
		}

		if err := store.DeleteProject(ctx, id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "project not found"})
				return
			}
			log.Printf("DeleteProject: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to delete project"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "project deleted successfully"})
	}
}

// Helper functions

// readImageFile pulls the "image" multipart field into memory along
// with its declared content type.
func readImageFile(c *gin.Context) ([]byte, string, error) {
	header, err := c.FormFile("image")
	if err != nil {
		return nil, "", err
	}

	file, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	return data, header.Header.Get("Content-Type"), nil
}

// parseLink validates an optional absolute URL. Empty input means no
// link; whitespace is trimmed first.
func parseLink(raw string) (*string, error) {
	link := strings.TrimSpace(raw)
	if link == "" {
		return nil, nil
	}

	u, err := url.Parse(link)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("invalid link: %q", link)
	}

	return &link, nil
}

func parseCategory(raw string) (*string, error) {
	category := strings.TrimSpace(raw)
	if category == "" {
		return nil, nil
	}

	if !models.ValidCategory(category) {
		return nil, fmt.Errorf("category must be one of: %s", strings.Join(models.Categories, ", "))
	}

	return &category, nil
}

// parseDate accepts RFC3339 or a bare calendar date.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// uploadError maps asset store rejections to client errors;
// everything else is an upstream failure.
func uploadError(err error) (int, string) {
	switch {
	case errors.Is(err, storage.ErrUnsupportedMediaType):
		return http.StatusBadRequest, "only jpeg, png, webp and gif images are allowed"
	case errors.Is(err, storage.ErrPayloadTooLarge):
		return http.StatusBadRequest, "image is too large"
	default:
		log.Printf("upload failed: %v", err)
		return http.StatusInternalServerError, "failed to upload image"
	}
}
