package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore backs the Store interface with Google Cloud Firestore. Its
// RunTransaction already retries on write conflict, which is what the
// enrollment path relies on.
type Firestore struct {
	client *firestore.Client
}

func NewFirestore(ctx context.Context, projectID string) (*Firestore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &Firestore{client: client}, nil
}

func (f *Firestore) Close() error {
	return f.client.Close()
}

func (f *Firestore) Get(ctx context.Context, collection, id string) (map[string]interface{}, error) {
	snap, err := f.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return snap.Data(), nil
}

func (f *Firestore) Add(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
	ref, _, err := f.client.Collection(collection).Add(ctx, resolveSentinels(fields))
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (f *Firestore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	_, err := f.client.Collection(collection).Doc(id).Set(ctx, resolveSentinels(fields), firestore.MergeAll)
	return err
}

func (f *Firestore) Delete(ctx context.Context, collection, id string) error {
	_, err := f.client.Collection(collection).Doc(id).Delete(ctx)
	return err
}

func (f *Firestore) Query(ctx context.Context, collection, orderBy string, desc bool, limit int) ([]Document, error) {
	dir := firestore.Asc
	if desc {
		dir = firestore.Desc
	}
	iter := f.client.Collection(collection).OrderBy(orderBy, dir).Limit(limit).Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Fields: snap.Data()})
	}
	return docs, nil
}

func (f *Firestore) RunTransaction(ctx context.Context, fn func(tx Tx) error) error {
	return f.client.RunTransaction(ctx, func(ctx context.Context, t *firestore.Transaction) error {
		return fn(&firestoreTx{client: f.client, t: t})
	})
}

// resolveSentinels swaps our timestamp sentinel for Firestore's.
func resolveSentinels(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if _, ok := v.(serverTimestamp); ok {
			out[k] = firestore.ServerTimestamp
			continue
		}
		out[k] = v
	}
	return out
}

type firestoreTx struct {
	client *firestore.Client
	t      *firestore.Transaction
}

func (tx *firestoreTx) Get(collection, id string) (map[string]interface{}, error) {
	snap, err := tx.t.Get(tx.client.Collection(collection).Doc(id))
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return snap.Data(), nil
}

func (tx *firestoreTx) Update(collection, id string, fields map[string]interface{}) error {
	return tx.t.Set(tx.client.Collection(collection).Doc(id), resolveSentinels(fields), firestore.MergeAll)
}
