package repositories

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// aggregate runs pipeline against coll and decodes every result document.
// An empty result is returned as an empty, non-nil slice.
func aggregate[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode %s results: %w", coll.Name(), err)
	}
	return results, nil
}

// distinctStrings returns the distinct string values of field, sorted.
// Non-string values are skipped.
func distinctStrings(ctx context.Context, coll *mongo.Collection, field string) ([]string, error) {
	values, err := coll.Distinct(ctx, field, bson.D{})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out, nil
}
