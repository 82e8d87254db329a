package dto

import (
	"time"

	"notewell/model"
	"notewell/usecase"
)

type CreateFolderRequest struct {
	Name     string `json:"name" binding:"required"`
	ParentID string `json:"parent_id"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
}

type UpdateFolderRequest struct {
	Name     *string `json:"name"`
	ParentID *string `json:"parent_id"`
	Icon     *string `json:"icon"`
	Color    *string `json:"color"`
}

type FolderOrderEntry struct {
	FolderID string `json:"folder_id" binding:"required"`
	Order    int    `json:"order"`
}

type ReorderFoldersRequest struct {
	Folders []FolderOrderEntry `json:"folders" binding:"required,min=1"`
}

type FolderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parent_id,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	Color     string    `json:"color,omitempty"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FolderTreeNode is a folder with its nested children.
type FolderTreeNode struct {
	FolderResponse
	Children []FolderTreeNode `json:"children"`
}

func ToFolderResponse(folder *model.Folder) FolderResponse {
	return FolderResponse{
		ID:        folder.ID,
		Name:      folder.Name,
		ParentID:  folder.ParentID,
		Icon:      folder.Icon,
		Color:     folder.Color,
		Order:     folder.Order,
		CreatedAt: folder.CreatedAt,
		UpdatedAt: folder.UpdatedAt,
	}
}

func ToFolderResponses(folders []*model.Folder) []FolderResponse {
	responses := make([]FolderResponse, len(folders))
	for i, folder := range folders {
		responses[i] = ToFolderResponse(folder)
	}
	return responses
}

func ToFolderTree(nodes []*usecase.FolderNode) []FolderTreeNode {
	tree := make([]FolderTreeNode, len(nodes))
	for i, node := range nodes {
		tree[i] = FolderTreeNode{
			FolderResponse: ToFolderResponse(node.Folder),
			Children:       ToFolderTree(node.Children),
		}
	}
	return tree
}
