package relations

import "errors"

var (
	ErrInvalidCategoryIDs = errors.New("some of the provided category ids are invalid")
	ErrInvalidMaterialIDs = errors.New("some of the provided material ids are invalid")
	ErrSelfRecommendation = errors.New("a material cannot recommend itself")

	ErrCategoryNotFound  = errors.New("category not found")
	ErrSelfSuccession    = errors.New("a category cannot replace itself")
	ErrAlreadySuperseded = errors.New("category is already part of a succession")
)
