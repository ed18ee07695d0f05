package services

import (
	"errors"
	"testing"
)

func TestCategoryWithProductsCannotBeDeleted(t *testing.T) {
	err := EnsureCategoryDeletable(4)
	if err == nil {
		t.Fatal("a referenced category must not be deletable")
	}
	var inUse *CategoryInUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("want CategoryInUseError, got %T", err)
	}
	if inUse.Count != 4 {
		t.Errorf("count = %d, want 4", inUse.Count)
	}
	if got, want := err.Error(), "Category has 4 products and cannot be deleted"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestEmptyCategoryIsDeletable(t *testing.T) {
	if err := EnsureCategoryDeletable(0); err != nil {
		t.Errorf("unreferenced category should be deletable, got %v", err)
	}
}
