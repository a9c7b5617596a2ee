package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"folio/internal/core/domain"
	"folio/internal/core/ports"
	"folio/pkg/vault"
)

// ProjectService owns the in-memory document and orchestrates every
// mutation against it. All operations are all-or-nothing: the final
// save is the single point of durability, and a failed save rolls the
// in-memory document back to its previous state.
//
// The store supports one writer at a time. Every mutate-then-save
// sequence runs under one mutex; callers doing slow file copies must
// finish them before entering (see MediaService).
type ProjectService struct {
	mu    sync.RWMutex
	doc   *domain.Document
	store ports.DocumentStore
	vault *vault.Vault
}

// NewProjectService wraps an explicitly owned document. The document
// instance is constructed at startup via store.Load and torn down with
// the process; there is no hidden global.
func NewProjectService(doc *domain.Document, store ports.DocumentStore, v *vault.Vault) *ProjectService {
	return &ProjectService{doc: doc, store: store, vault: v}
}

// AddRequest carries the caller supplied fields for a new project.
type AddRequest struct {
	Title            string
	Category         string
	Description      string
	ShortDescription string
	Tags             []string
	Featured         bool
	Status           domain.Status
}

// Add creates a project at the end of the ordering. Status defaults to
// draft when omitted.
func (s *ProjectService) Add(ctx context.Context, req AddRequest) (*domain.Project, error) {
	if err := domain.ValidateTitle(req.Title); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = domain.StatusDraft
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.doc.Clone()

	now := time.Now()
	id := domain.NewProjectID(len(s.doc.Projects), now)
	for s.indexOf(id) >= 0 {
		id += "x"
	}

	project := domain.Project{
		ID:               id,
		Title:            req.Title,
		Category:         req.Category,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Tags:             append([]string{}, req.Tags...),
		Images:           []domain.MediaAsset{},
		Videos:           []domain.MediaAsset{},
		Featured:         req.Featured,
		Status:           status,
		Order:            len(s.doc.Projects),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	s.doc.Projects = append(s.doc.Projects, project)
	if err := s.commit(ctx, snapshot); err != nil {
		return nil, err
	}
	out := project.Clone()
	return &out, nil
}

// UpdateRequest carries optional replacement fields; nil means "leave
// unchanged". Project id, created_at, images and videos are protected
// and never touched by Update regardless of caller input.
type UpdateRequest struct {
	Title            *string
	Category         *string
	Description      *string
	ShortDescription *string
	Tags             *[]string
	Featured         *bool
	Status           *domain.Status
	Order            *int
}

// Update merges the supplied fields over an existing project.
func (s *ProjectService) Update(ctx context.Context, id string, req UpdateRequest) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrProjectNotFound, id)
	}
	snapshot := s.doc.Clone()

	p := &s.doc.Projects[i]
	if req.Title != nil {
		if err := domain.ValidateTitle(*req.Title); err != nil {
			return nil, err
		}
		p.Title = *req.Title
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.ShortDescription != nil {
		p.ShortDescription = *req.ShortDescription
	}
	if req.Tags != nil {
		p.Tags = append([]string{}, (*req.Tags)...)
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Order != nil {
		p.Order = *req.Order
	}
	p.UpdatedAt = time.Now()

	if err := s.commit(ctx, snapshot); err != nil {
		return nil, err
	}
	out := s.doc.Projects[i].Clone()
	return &out, nil
}

// Delete removes a project and cascades over its media: every owned
// file and thumbnail is deleted from managed storage (best-effort,
// individual failures don't abort), then the record is dropped and the
// document saved once.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrProjectNotFound, id)
	}
	snapshot := s.doc.Clone()

	p := s.doc.Projects[i]
	for _, asset := range p.Images {
		s.removeAssetFiles(asset)
	}
	for _, asset := range p.Videos {
		s.removeAssetFiles(asset)
	}

	s.doc.Projects = append(s.doc.Projects[:i], s.doc.Projects[i+1:]...)
	return s.commit(ctx, snapshot)
}

// removeAssetFiles deletes an asset's file and thumbnail from managed
// storage. Missing files are fine: the record is authoritative.
func (s *ProjectService) removeAssetFiles(asset domain.MediaAsset) {
	if asset.Path != "" {
		os.Remove(s.vault.Abs(asset.Path))
	}
	if asset.ThumbnailPath != "" {
		os.Remove(s.vault.Abs(asset.ThumbnailPath))
	}
}

// Reorder assigns each listed project the order value of its position
// in ids. Unknown ids are silently ignored; projects not listed keep
// their previous order. Persists once.
func (s *ProjectService) Reorder(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.doc.Clone()
	changed := false
	for pos, id := range ids {
		if i := s.indexOf(id); i >= 0 {
			s.doc.Projects[i].Order = pos
			s.doc.Projects[i].UpdatedAt = time.Now()
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.commit(ctx, snapshot)
}

// ListFilter selects projects by status and/or category. Zero values
// mean "no filter".
type ListFilter struct {
	Status   domain.Status
	Category string
}

// List returns matching projects sorted ascending by order. Ties keep
// the document's insertion order (stable sort).
func (s *ProjectService) List(ctx context.Context, filter ListFilter) []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Project
	for _, p := range s.doc.Projects {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, p.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// Get returns a copy of the project with the given id.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrProjectNotFound, id)
	}
	out := s.doc.Projects[i].Clone()
	return &out, nil
}

// Categories returns the document's category list.
func (s *ProjectService) Categories(ctx context.Context) []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Category(nil), s.doc.Categories...)
}

// Settings returns the document's singleton settings.
func (s *ProjectService) Settings(ctx context.Context) domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.doc.Settings
	st.AllowedImageFormats = append([]string(nil), s.doc.Settings.AllowedImageFormats...)
	st.AllowedVideoFormats = append([]string(nil), s.doc.Settings.AllowedVideoFormats...)
	return st
}

// AttachAsset appends a persisted asset descriptor to the owning
// project's images or videos sequence (append preserves upload order)
// and saves the document. Called by MediaService after the file copy
// succeeded, so no slow I/O happens under the lock here.
func (s *ProjectService) AttachAsset(ctx context.Context, projectID string, kind domain.MediaKind, asset domain.MediaAsset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(projectID)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrProjectNotFound, projectID)
	}
	snapshot := s.doc.Clone()

	p := &s.doc.Projects[i]
	if kind == domain.KindVideo {
		p.Videos = append(p.Videos, asset)
	} else {
		p.Images = append(p.Images, asset)
	}
	p.UpdatedAt = time.Now()

	return s.commit(ctx, snapshot)
}

// DetachAsset removes the asset with the given stored path from the
// project and saves. The removed descriptor is returned so the caller
// can clean up the underlying files.
func (s *ProjectService) DetachAsset(ctx context.Context, projectID, assetPath string) (*domain.MediaAsset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(projectID)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrProjectNotFound, projectID)
	}
	snapshot := s.doc.Clone()

	p := &s.doc.Projects[i]
	for _, seq := range []*[]domain.MediaAsset{&p.Images, &p.Videos} {
		for j, asset := range *seq {
			if asset.Path != assetPath {
				continue
			}
			removed := asset
			*seq = append((*seq)[:j], (*seq)[j+1:]...)
			p.UpdatedAt = time.Now()
			if err := s.commit(ctx, snapshot); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, assetPath)
}

// Export returns a structured snapshot of the entire document, used
// for backup and migration.
func (s *ProjectService) Export(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to export document: %w", err)
	}
	return data, nil
}

// Import overlays the supplied snapshot onto the current document:
// top-level keys present in the input replace their counterparts
// wholesale, keys absent from the input are kept. Never a per-project
// merge.
func (s *ProjectService) Import(ctx context.Context, data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse import data: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.doc.Clone()

	if msg, ok := raw["projects"]; ok {
		var projects []domain.Project
		if err := json.Unmarshal(msg, &projects); err != nil {
			s.doc = snapshot
			return fmt.Errorf("failed to parse imported projects: %w", err)
		}
		s.doc.Projects = projects
	}
	if msg, ok := raw["categories"]; ok {
		var categories []domain.Category
		if err := json.Unmarshal(msg, &categories); err != nil {
			s.doc = snapshot
			return fmt.Errorf("failed to parse imported categories: %w", err)
		}
		s.doc.Categories = categories
	}
	if msg, ok := raw["settings"]; ok {
		var settings domain.Settings
		if err := json.Unmarshal(msg, &settings); err != nil {
			s.doc = snapshot
			return fmt.Errorf("failed to parse imported settings: %w", err)
		}
		s.doc.Settings = settings
	}

	return s.commit(ctx, snapshot)
}

// indexOf returns the position of a project id, or -1. Caller holds
// the lock.
func (s *ProjectService) indexOf(id string) int {
	for i := range s.doc.Projects {
		if s.doc.Projects[i].ID == id {
			return i
		}
	}
	return -1
}

// commit saves the document. On failure the pre-mutation snapshot is
// restored so the change is never observable as committed. Caller
// holds the write lock.
func (s *ProjectService) commit(ctx context.Context, snapshot *domain.Document) error {
	if err := s.store.Save(ctx, s.doc); err != nil {
		s.doc = snapshot
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}
