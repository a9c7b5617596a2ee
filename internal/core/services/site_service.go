package services

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"folio/internal/core/domain"
)

// cardTemplate renders one portfolio card in the markup the public
// site's carousel consumes.
const cardTemplate = `<div class="portfolio-card" data-category="{{.Category}}">
    <div class="card-image">
        <img src="{{.MainImage}}" alt="{{.Title}}" loading="lazy" />
        <div class="card-overlay">
            <div class="overlay-content">
                <div class="project-number">{{.Number}}</div>
                <h3 class="project-title">{{.Title}}</h3>
                <p class="project-category">{{.CategoryUpper}}</p>
                <p class="project-description">{{.ShortDescription}}</p>
                <div class="project-tags">
                    {{range .Tags}}<span class="tag">{{.}}</span>
                    {{end}}</div>
                <a href="portfolio.html" class="project-link">VER PORTFÓLIO →</a>
            </div>
        </div>
    </div>
</div>`

type card struct {
	Category         string
	CategoryUpper    string
	MainImage        string
	Number           string
	Title            string
	ShortDescription string
	Tags             []string
}

// SiteService renders the published part of the document into the
// static HTML snippet the portfolio page embeds.
type SiteService struct {
	projects *ProjectService
	tmpl     *template.Template
}

// NewSiteService creates a site renderer over the project service.
func NewSiteService(projects *ProjectService) *SiteService {
	return &SiteService{
		projects: projects,
		tmpl:     template.Must(template.New("card").Parse(cardTemplate)),
	}
}

// Render produces the HTML for all published projects in display
// order.
func (s *SiteService) Render(ctx context.Context) (string, error) {
	published := s.projects.List(ctx, ListFilter{Status: domain.StatusPublished})

	var parts []string
	for i, p := range published {
		mainImage := ""
		if len(p.Images) > 0 {
			mainImage = p.Images[0].Path
		}

		c := card{
			Category:         p.Category,
			CategoryUpper:    strings.ToUpper(p.Category),
			MainImage:        mainImage,
			Number:           fmt.Sprintf("%02d", i+1),
			Title:            p.Title,
			ShortDescription: p.ShortDescription,
			Tags:             p.Tags,
		}

		var b strings.Builder
		if err := s.tmpl.Execute(&b, c); err != nil {
			return "", fmt.Errorf("failed to render project %s: %w", p.ID, err)
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n"), nil
}
