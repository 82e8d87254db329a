package usecase

import (
	"testing"

	"notewell/model"
)

func folder(id, parentID, name string, order int) *model.Folder {
	return &model.Folder{ID: id, ParentID: parentID, Name: name, Order: order}
}

func TestBuildFolderTreeNesting(t *testing.T) {
	folders := []*model.Folder{
		folder("root", "", "Work", 0),
		folder("child-a", "root", "Projects", 0),
		folder("child-b", "root", "Archive", 1),
		folder("grandchild", "child-a", "2026", 0),
	}

	tree := BuildFolderTree(folders)

	if len(tree) != 1 {
		t.Fatalf("expected 1 root, got %d", len(tree))
	}
	root := tree[0]
	if root.ID != "root" || len(root.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.Children))
	}
	if root.Children[0].ID != "child-a" {
		t.Errorf("children not ordered by order value: %v", root.Children[0].ID)
	}
	if len(root.Children[0].Children) != 1 || root.Children[0].Children[0].ID != "grandchild" {
		t.Error("grandchild not nested under its parent")
	}
}

func TestBuildFolderTreeOrphanSurfacesAsRoot(t *testing.T) {
	folders := []*model.Folder{
		folder("a", "missing-parent", "Orphan", 0),
		folder("b", "", "Root", 0),
	}

	tree := BuildFolderTree(folders)

	if len(tree) != 2 {
		t.Fatalf("orphan should surface as root, got %d roots", len(tree))
	}
}

func TestBuildFolderTreeSelfParent(t *testing.T) {
	folders := []*model.Folder{
		folder("loop", "loop", "Self", 0),
	}

	tree := BuildFolderTree(folders)
	if len(tree) != 1 || tree[0].ID != "loop" {
		t.Fatalf("self-parented folder should be a root, got %v", tree)
	}
}

func TestBuildFolderTreeSiblingOrdering(t *testing.T) {
	folders := []*model.Folder{
		folder("c", "", "Charlie", 2),
		folder("a", "", "Alpha", 1),
		folder("b2", "", "Bravo", 1),
	}

	tree := BuildFolderTree(folders)

	if len(tree) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(tree))
	}
	// Order value first, name breaks the tie.
	if tree[0].Name != "Alpha" || tree[1].Name != "Bravo" || tree[2].Name != "Charlie" {
		t.Errorf("siblings out of order: %s, %s, %s", tree[0].Name, tree[1].Name, tree[2].Name)
	}
}

func TestBuildFolderTreeEmpty(t *testing.T) {
	tree := BuildFolderTree(nil)
	if tree == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(tree) != 0 {
		t.Fatalf("expected no roots, got %d", len(tree))
	}
}
