package usecase

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"notewell/model"
	"notewell/repository"
	"notewell/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const MaxFolderNameLength = 50

type FoldersService struct {
	FoldersRepo *repository.FoldersRepo
	NotesRepo   *repository.NotesRepo
}

// FolderNode is a folder with its nested children, derived from the
// flat parent-pointer list.
type FolderNode struct {
	*model.Folder
	Children []*FolderNode `json:"children"`
}

type CreateFolderInput struct {
	Name     string
	ParentID string
	Icon     string
	Color    string
}

type FolderOrderUpdate struct {
	FolderID string
	Order    int
}

func validateFolderName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", utils.ValidationError("folder name is required")
	}
	if utf8.RuneCountInString(name) > MaxFolderNameLength {
		return "", utils.ValidationError("folder name exceeds maximum length")
	}
	return name, nil
}

// CreateFolder inserts a folder. Names are unique per (owner, parent)
// case-insensitively; the new folder takes the next order slot among
// its siblings.
func (svc *FoldersService) CreateFolder(ctx context.Context, userID string, input CreateFolderInput) (*model.Folder, error) {
	name, err := validateFolderName(input.Name)
	if err != nil {
		return nil, err
	}
	if !utils.ValidHexColor(input.Color) {
		return nil, utils.ValidationError("color must be a hex string like #rrggbb")
	}

	if input.ParentID != "" {
		if _, err := svc.FoldersRepo.GetFolder(ctx, input.ParentID, userID); err != nil {
			if err == repository.ErrNotFound {
				return nil, utils.ValidationError("parent folder does not exist")
			}
			return nil, utils.InternalErrorf("failed to verify parent folder", err)
		}
	}

	existing, err := svc.FoldersRepo.FindByName(ctx, userID, input.ParentID, name)
	if err != nil {
		return nil, utils.InternalErrorf("failed to check folder name", err)
	}
	if existing != nil {
		return nil, utils.ConflictError("a folder with that name already exists here")
	}

	order, err := svc.FoldersRepo.NextSiblingOrder(ctx, userID, input.ParentID)
	if err != nil {
		return nil, utils.InternalErrorf("failed to compute folder order", err)
	}

	now := time.Now()
	folder := &model.Folder{
		ID:        utils.GenerateID(),
		UserID:    userID,
		Name:      name,
		ParentID:  input.ParentID,
		Icon:      input.Icon,
		Color:     input.Color,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := svc.FoldersRepo.CreateFolder(ctx, folder); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.ConflictError("a folder with that name already exists here")
		}
		return nil, utils.InternalErrorf("failed to create folder", err)
	}
	return folder, nil
}

func (svc *FoldersService) ListFolders(ctx context.Context, userID string) ([]*model.Folder, error) {
	folders, err := svc.FoldersRepo.GetUserFolders(ctx, userID)
	if err != nil {
		return nil, utils.InternalErrorf("failed to list folders", err)
	}
	if folders == nil {
		folders = []*model.Folder{}
	}
	return folders, nil
}

// BuildFolderTree nests folders under their parents. Folders whose
// parent is missing from the list surface as roots rather than being
// dropped. Siblings are ordered by their order value, then name.
func BuildFolderTree(folders []*model.Folder) []*FolderNode {
	nodes := make(map[string]*FolderNode, len(folders))
	for _, folder := range folders {
		nodes[folder.ID] = &FolderNode{Folder: folder, Children: []*FolderNode{}}
	}

	var roots []*FolderNode
	for _, folder := range folders {
		node := nodes[folder.ID]
		if folder.ParentID == "" {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[folder.ParentID]
		if !ok || folder.ParentID == folder.ID {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	var sortSiblings func(nodes []*FolderNode)
	sortSiblings = func(nodes []*FolderNode) {
		sort.SliceStable(nodes, func(i, j int) bool {
			if nodes[i].Order != nodes[j].Order {
				return nodes[i].Order < nodes[j].Order
			}
			return nodes[i].Name < nodes[j].Name
		})
		for _, node := range nodes {
			sortSiblings(node.Children)
		}
	}
	sortSiblings(roots)

	if roots == nil {
		roots = []*FolderNode{}
	}
	return roots
}

func (svc *FoldersService) GetFolderTree(ctx context.Context, userID string) ([]*FolderNode, error) {
	folders, err := svc.ListFolders(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildFolderTree(folders), nil
}

func (svc *FoldersService) UpdateFolder(ctx context.Context, folderID, userID string, name, parentID, icon, color *string) (*model.Folder, error) {
	current, err := svc.FoldersRepo.GetFolder(ctx, folderID, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("folder not found")
		}
		return nil, utils.InternalErrorf("failed to fetch folder", err)
	}

	fields := bson.M{}
	targetParent := current.ParentID

	if parentID != nil {
		if *parentID == folderID {
			return nil, utils.ValidationError("a folder cannot be its own parent")
		}
		if *parentID != "" {
			if _, err := svc.FoldersRepo.GetFolder(ctx, *parentID, userID); err != nil {
				if err == repository.ErrNotFound {
					return nil, utils.ValidationError("parent folder does not exist")
				}
				return nil, utils.InternalErrorf("failed to verify parent folder", err)
			}
		}
		targetParent = *parentID
		fields["parent_id"] = *parentID
	}
	if name != nil {
		normalized, err := validateFolderName(*name)
		if err != nil {
			return nil, err
		}
		existing, err := svc.FoldersRepo.FindByName(ctx, userID, targetParent, normalized)
		if err != nil {
			return nil, utils.InternalErrorf("failed to check folder name", err)
		}
		if existing != nil && existing.ID != folderID {
			return nil, utils.ConflictError("a folder with that name already exists here")
		}
		fields["name"] = normalized
	}
	if icon != nil {
		fields["icon"] = *icon
	}
	if color != nil {
		if !utils.ValidHexColor(*color) {
			return nil, utils.ValidationError("color must be a hex string like #rrggbb")
		}
		fields["color"] = *color
	}
	if len(fields) == 0 {
		return nil, utils.ValidationError("no fields to update")
	}

	err = svc.FoldersRepo.UpdateFolder(ctx, folderID, userID, fields)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("folder not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.ConflictError("a folder with that name already exists here")
		}
		return nil, utils.InternalErrorf("failed to update folder", err)
	}

	folder, err := svc.FoldersRepo.GetFolder(ctx, folderID, userID)
	if err != nil {
		return nil, utils.InternalErrorf("failed to fetch folder", err)
	}
	return folder, nil
}

// DeleteFolder removes an empty-of-subfolders folder. Notes inside it
// move to reassignTo, or out of any folder when reassignTo is empty.
func (svc *FoldersService) DeleteFolder(ctx context.Context, folderID, userID, reassignTo string) error {
	if _, err := svc.FoldersRepo.GetFolder(ctx, folderID, userID); err != nil {
		if err == repository.ErrNotFound {
			return utils.NotFoundError("folder not found")
		}
		return utils.InternalErrorf("failed to fetch folder", err)
	}

	hasChildren, err := svc.FoldersRepo.HasChildren(ctx, userID, folderID)
	if err != nil {
		return utils.InternalErrorf("failed to check subfolders", err)
	}
	if hasChildren {
		return utils.ConflictError("folder has subfolders")
	}

	if reassignTo != "" {
		if reassignTo == folderID {
			return utils.ValidationError("cannot reassign notes to the folder being deleted")
		}
		if _, err := svc.FoldersRepo.GetFolder(ctx, reassignTo, userID); err != nil {
			if err == repository.ErrNotFound {
				return utils.ValidationError("target folder does not exist")
			}
			return utils.InternalErrorf("failed to verify target folder", err)
		}
	}

	if err := svc.NotesRepo.ReassignFolder(ctx, userID, folderID, reassignTo); err != nil {
		return utils.InternalErrorf("failed to reassign notes", err)
	}

	if err := svc.FoldersRepo.DeleteFolder(ctx, folderID, userID); err != nil {
		if err == repository.ErrNotFound {
			return utils.NotFoundError("folder not found")
		}
		return utils.InternalErrorf("failed to delete folder", err)
	}
	return nil
}

// ReorderFolders applies each order update independently. A failure on
// one record does not roll back the others; the first error is
// reported after the remaining updates have been attempted.
func (svc *FoldersService) ReorderFolders(ctx context.Context, userID string, updates []FolderOrderUpdate) (int, error) {
	if len(updates) == 0 {
		return 0, utils.ValidationError("no folder order updates supplied")
	}

	applied := 0
	var firstErr error
	for _, update := range updates {
		err := svc.FoldersRepo.UpdateFolder(ctx, update.FolderID, userID,
			bson.M{"order": update.Order})
		if err != nil {
			if firstErr == nil {
				if err == repository.ErrNotFound {
					firstErr = utils.NotFoundError("folder not found: " + update.FolderID)
				} else {
					firstErr = utils.InternalErrorf("failed to reorder folder", err)
				}
			}
			continue
		}
		applied++
	}
	return applied, firstErr
}
