package model

// Container is a physical storage location (fridge, freezer, shelf).
// Containers form a tree via ParentContainerID; cycles are not prevented
// at this layer.
type Container struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	ParentContainerID string `json:"parent_container_id,omitempty"`
	Description       string `json:"description,omitempty"`
	PhotoURL          string `json:"photo_url,omitempty"`
	Color             string `json:"color,omitempty"`
	CreatedAt         string `json:"created_at,omitempty"`
	UpdatedAt         string `json:"updated_at,omitempty"`
}
