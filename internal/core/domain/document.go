package domain

// Document is the single root aggregate persisted on disk. It is owned
// by exactly one DocumentStore and replaced wholesale on every save.
type Document struct {
	Projects   []Project  `json:"projects"`
	Categories []Category `json:"categories"`
	Settings   Settings   `json:"settings"`
}

// Category groups projects on the public site. Categories carry no
// cascade semantics: a category may be referenced by zero projects.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // "#rrggbb"
}

// Settings is the singleton upload policy stored inside the document.
type Settings struct {
	AutoGenerateThumbnails bool     `json:"auto_generate_thumbnails"`
	MaxFileSizeMB          float64  `json:"max_file_size_mb"`
	AllowedImageFormats    []string `json:"allowed_image_formats"`
	AllowedVideoFormats    []string `json:"allowed_video_formats"`
}

// DefaultDocument returns the seed document used when no store file
// exists yet.
func DefaultDocument() *Document {
	return &Document{
		Projects: []Project{},
		Categories: []Category{
			{ID: "web-design", Name: "Web Design", Color: "#ea532e"},
			{ID: "branding", Name: "Branding", Color: "#0096ff"},
			{ID: "e-commerce", Name: "E-commerce", Color: "#00ff88"},
			{ID: "sistemas", Name: "Sistemas", Color: "#ff6b35"},
			{ID: "ui-ux", Name: "UI/UX", Color: "#8b5cf6"},
			{ID: "motion", Name: "Motion", Color: "#f59e0b"},
		},
		Settings: DefaultSettings(),
	}
}

// DefaultSettings returns the upload policy applied to fresh documents.
func DefaultSettings() Settings {
	return Settings{
		AutoGenerateThumbnails: true,
		MaxFileSizeMB:          50,
		AllowedImageFormats:    []string{"jpg", "jpeg", "png", "webp", "gif"},
		AllowedVideoFormats:    []string{"mp4", "webm", "mov", "avi"},
	}
}

// Clone returns a deep copy of the document. Repository operations
// snapshot before mutating so a failed save can be rolled back.
func (d *Document) Clone() *Document {
	out := &Document{
		Projects:   make([]Project, len(d.Projects)),
		Categories: append([]Category(nil), d.Categories...),
		Settings:   d.Settings,
	}
	out.Settings.AllowedImageFormats = append([]string(nil), d.Settings.AllowedImageFormats...)
	out.Settings.AllowedVideoFormats = append([]string(nil), d.Settings.AllowedVideoFormats...)
	for i := range d.Projects {
		out.Projects[i] = d.Projects[i].Clone()
	}
	return out
}
