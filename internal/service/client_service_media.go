package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mh-apps/aora-client/internal/adapter"
	"github.com/mh-apps/aora-client/internal/logger"
	"github.com/mh-apps/aora-client/models"
)

// Preview transformation applied to uploaded thumbnails.
const (
	previewWidth   = 2000
	previewHeight  = 2000
	previewGravity = "top"
	previewQuality = 100
)

type clientMediaService struct {
	adapter           adapter.BackendAdapter
	videoCollectionID string
	logger            *logger.Logger
}

func NewClientMediaService(backend adapter.BackendAdapter, videoCollectionID string, logger *logger.Logger) ClientMediaService {
	return &clientMediaService{
		adapter:           backend,
		videoCollectionID: videoCollectionID,
		logger:            logger,
	}
}

func (s *clientMediaService) UploadFile(ctx context.Context, asset models.Asset, kind FileKind) (string, error) {
	// Both checks run before any network traffic.
	if kind != FileKindVideo && kind != FileKindImage {
		return "", fmt.Errorf("%w: unsupported file kind %q", ErrUpload, kind)
	}
	if asset.Empty() {
		return "", fmt.Errorf("%w: asset carries no payload", ErrUpload)
	}

	file, err := s.adapter.CreateFile(ctx, uuid.NewString(), asset)
	if err != nil {
		return "", fmt.Errorf("%w: upload %q: %v", ErrUpload, asset.Name, err)
	}

	var fileURL string
	switch kind {
	case FileKindVideo:
		fileURL = s.adapter.FileViewURL(file.ID)
	case FileKindImage:
		fileURL = s.adapter.FilePreviewURL(file.ID, previewWidth, previewHeight, previewGravity, previewQuality)
	}

	if fileURL == "" {
		return "", fmt.Errorf("%w: unresolved URL for file %s", ErrUpload, file.ID)
	}

	return fileURL, nil
}

func (s *clientMediaService) CreateVideoPost(ctx context.Context, form models.VideoPostForm) (models.Post, error) {
	var thumbnailURL, videoURL string

	// Both uploads run concurrently; if either fails the group context is
	// cancelled and no post document is ever created.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		url, err := s.UploadFile(gctx, form.Thumbnail, FileKindImage)
		if err != nil {
			return err
		}
		thumbnailURL = url
		return nil
	})
	g.Go(func() error {
		url, err := s.UploadFile(gctx, form.Video, FileKindVideo)
		if err != nil {
			return err
		}
		videoURL = url
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.Post{}, err
	}

	doc, err := s.adapter.CreateDocument(ctx, s.videoCollectionID, uuid.NewString(), map[string]any{
		"title":     form.Title,
		"thumbnail": thumbnailURL,
		"video":     videoURL,
		"prompt":    form.Prompt,
		"creator":   form.CreatorID,
	})
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: create post document: %v", ErrUpload, err)
	}

	return models.PostFromDocument(doc), nil
}
