package svcconfig

import (
	"fmt"

	"github.com/routekit/svcconfig/pkg/tree"
)

// expandNames converts one "name" array into fully qualified call paths, in
// document order.
func expandNames(list *tree.Node) ([]string, error) {
	paths := make([]string, 0, len(list.Children))
	for i, name := range list.Children {
		path, err := methodPath(name)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", fieldName, i, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// methodPath synthesizes "/service/method" for one name object, with "*"
// standing in for an absent method. "service" is required and, like
// "method", may appear at most once; every field of a name object must be a
// named string.
func methodPath(name *tree.Node) (string, error) {
	if name.Kind != tree.Object {
		return "", fmt.Errorf("want object, got %s: %w", name.Kind, ErrWrongType)
	}
	var (
		service, method         string
		haveService, haveMethod bool
	)
	for _, field := range name.Children {
		if !field.HasKey {
			return "", fmt.Errorf("name field: %w", ErrMissingKey)
		}
		if field.Kind != tree.String {
			return "", fmt.Errorf("%s: want string, got %s: %w",
				field.Key, field.Kind, ErrWrongType)
		}
		switch field.Key {
		case fieldService:
			if haveService {
				return "", fmt.Errorf("%s: %w", fieldService, ErrDuplicateField)
			}
			service, haveService = field.Value, true
		case fieldMethod:
			if haveMethod {
				return "", fmt.Errorf("%s: %w", fieldMethod, ErrDuplicateField)
			}
			method, haveMethod = field.Value, true
		}
	}
	if !haveService {
		return "", fmt.Errorf("%s: %w", fieldService, ErrMissingRequiredField)
	}
	if !haveMethod {
		method = "*"
	}
	return "/" + service + "/" + method, nil
}
