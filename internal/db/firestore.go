package db

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection layout.
const (
	usersCollection  = "users"
	savesCollection  = "saves"
	eventsCollection = "events"
	postsCollection  = "posts"

	createdAtField = "createdAt"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// isNotFound reports whether err is a Firestore NotFound status.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// toUpdates converts a field map into Firestore updates in a stable order.
func toUpdates(fields map[string]any) []firestore.Update {
	paths := make([]string, 0, len(fields))
	for path := range fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	updates := make([]firestore.Update, 0, len(paths))
	for _, path := range paths {
		updates = append(updates, firestore.Update{Path: path, Value: fields[path]})
	}
	return updates
}

// getDoc fetches and decodes one document, translating NotFound to ErrNotFound.
func getDoc[T any](ctx context.Context, ref *firestore.DocumentRef, setID func(*T, string)) (*T, error) {
	snap, err := ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%s: %w", ref.Path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s: %w", ref.Path, err)
	}

	var out T
	if err := snap.DataTo(&out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", ref.Path, err)
	}
	setID(&out, snap.Ref.ID)
	return &out, nil
}

// collectDocs drains a query iterator into decoded documents.
func collectDocs[T any](iter *firestore.DocumentIterator, setID func(*T, string)) ([]*T, error) {
	defer iter.Stop()

	out := make([]*T, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate documents: %w", err)
		}

		var item T
		if err := doc.DataTo(&item); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", doc.Ref.Path, err)
		}
		setID(&item, doc.Ref.ID)
		out = append(out, &item)
	}
	return out, nil
}

// updateDoc applies a partial update; a missing document yields ErrNotFound.
func updateDoc(ctx context.Context, ref *firestore.DocumentRef, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	if _, err := ref.Update(ctx, toUpdates(fields)); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%s: %w", ref.Path, ErrNotFound)
		}
		return fmt.Errorf("failed to update %s: %w", ref.Path, err)
	}
	return nil
}

func deleteDoc(ctx context.Context, ref *firestore.DocumentRef) error {
	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete %s: %w", ref.Path, err)
	}
	return nil
}
