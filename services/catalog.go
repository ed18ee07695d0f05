package services

import "fmt"

// CategoryInUseError refuses deletion of a category that products still
// reference. There is no foreign-key constraint; this check is the guard.
type CategoryInUseError struct {
	Count int64
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("Category has %d products and cannot be deleted", e.Count)
}

// EnsureCategoryDeletable returns a CategoryInUseError while any products
// reference the category.
func EnsureCategoryDeletable(productCount int64) error {
	if productCount > 0 {
		return &CategoryInUseError{Count: productCount}
	}
	return nil
}
