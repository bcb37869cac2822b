package models

// Project represents a user-owned project in the database.
type Project struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	UserID      int64  `db:"user_id" json:"-"`
}

// CreateProjectRequest defines the payload for creating a project.
type CreateProjectRequest struct {
	ProjectName string `json:"projectName"`
}

// ModifyProjectRequest defines the payload for updating or deleting a
// project. Nil pointer fields were absent from the payload and leave the
// stored value untouched.
type ModifyProjectRequest struct {
	ProjectID   int64   `json:"projectID"`
	ProjectName *string `json:"projectName"`
	Description *string `json:"description"`
}
