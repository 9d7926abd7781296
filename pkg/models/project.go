package models

import (
	"encoding/json"
	"portfolio/pkg/constants"
	"time"
)

// Project a model representation for showcase projects
type Project struct {
	ID            uint64    `json:"id,omitempty"`
	Title         string    `json:"title" faker:"sentence"`
	Description   string    `json:"description" faker:"paragraph"`
	ImageFileName string    `json:"imageFileName,omitempty" faker:"-"`
	Image         string    `json:"image,omitempty" faker:"-"`
	DateCreated   time.Time `json:"dateCreated,omitempty" faker:"-"`
}

// DisplayImage returns the stored image name, or the placeholder when none is stored.
func DisplayImage(imageFileName string) string {
	if imageFileName == "" {
		return constants.PlaceholderImage
	}
	return imageFileName
}

// ToJSON returns content of the project as JSON
func (projectModel *Project) ToJSON() ([]byte, error) {
	return json.Marshal(projectModel)
}

// FromJSON extracts content of a JSON object into the project
func (projectModel *Project) FromJSON(body []byte) error {
	return json.Unmarshal(body, projectModel)
}
